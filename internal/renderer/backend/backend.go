// Package backend provides the terminal abstraction the renderer draws to.
package backend

import (
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt wakes the event loop; Data carries the payload.
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// MouseButton identifies the pressed mouse button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheel
)

// Event is a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Data is set for EventInterrupt.
	Data any
}

// KeyEvent wraps a key press as a backend event.
func KeyEvent(k key.Event) Event {
	return Event{Type: EventKey, Key: k}
}

// ClickEvent returns a left-button mouse press at (x, y).
func ClickEvent(x, y int) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseButton: MouseLeft}
}

// InterruptEvent returns an interrupt carrying data.
func InterruptEvent(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// Backend is a display surface with an input queue.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases the backend and restores the terminal.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangle with cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear blanks the screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// PollEvent blocks for the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event.
	PostEvent(event Event)

	// EnableMouse turns on mouse reporting.
	EnableMouse()

	// DisableMouse turns off mouse reporting.
	DisableMouse()

	// Beep rings the terminal bell.
	Beep()
}
