package app

import (
	"github.com/dshills/keycalc/internal/calc"
)

// engineCalculator exposes the engine to Lua scripts. Presses made here
// are recorded like user input but do not trigger result hooks.
type engineCalculator struct {
	app *Application
}

func (c *engineCalculator) Press(label string) (string, error) {
	ev, err := calc.ParseLabel(label)
	if err != nil {
		return "", err
	}
	return c.app.apply(ev), nil
}

func (c *engineCalculator) Input(seq string) (string, error) {
	events, err := calc.ParseSequence(seq)
	if err != nil {
		return "", err
	}
	display := c.app.engine.Display()
	for _, ev := range events {
		display = c.app.apply(ev)
	}
	return display, nil
}

func (c *engineCalculator) Display() string {
	return c.app.engine.Display()
}

func (c *engineCalculator) Expression() string {
	return c.app.engine.Expression()
}
