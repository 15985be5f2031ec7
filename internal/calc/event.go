package calc

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an input event.
type Kind uint8

const (
	// KindNone is the zero Kind. Events of this kind are ignored.
	KindNone Kind = iota
	KindDigit
	KindDecimal
	KindOperator
	KindCalculate
	KindClear
	KindAllClear
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindDecimal:
		return "decimal"
	case KindOperator:
		return "operator"
	case KindCalculate:
		return "calculate"
	case KindClear:
		return "clear"
	case KindAllClear:
		return "all-clear"
	default:
		return "none"
	}
}

// Event is a single button press.
// Digit is set for KindDigit and Op for KindOperator; other kinds carry no data.
type Event struct {
	Kind  Kind
	Digit rune
	Op    Operator
}

// Digit returns a digit event for d, which should be in '0'..'9'.
func Digit(d rune) Event {
	return Event{Kind: KindDigit, Digit: d}
}

// Decimal returns a decimal point event.
func Decimal() Event {
	return Event{Kind: KindDecimal}
}

// Operate returns an operator event.
func Operate(op Operator) Event {
	return Event{Kind: KindOperator, Op: op}
}

// Calculate returns an equals event.
func Calculate() Event {
	return Event{Kind: KindCalculate}
}

// Clear returns a clear-entry (C) event.
func Clear() Event {
	return Event{Kind: KindClear}
}

// AllClear returns an all-clear (AC) event.
func AllClear() Event {
	return Event{Kind: KindAllClear}
}

// Valid reports whether the event carries a usable payload.
func (e Event) Valid() bool {
	switch e.Kind {
	case KindDigit:
		return e.Digit >= '0' && e.Digit <= '9'
	case KindOperator:
		return e.Op.Valid()
	case KindDecimal, KindCalculate, KindClear, KindAllClear:
		return true
	default:
		return false
	}
}

// String returns the button label that produces the event.
func (e Event) String() string {
	switch e.Kind {
	case KindDigit:
		return string(e.Digit)
	case KindDecimal:
		return "."
	case KindOperator:
		return e.Op.String()
	case KindCalculate:
		return "="
	case KindClear:
		return "C"
	case KindAllClear:
		return "AC"
	default:
		return ""
	}
}

// Labels lists the on-screen buttons in grid order: four rows of four,
// followed by the clear row.
var Labels = []string{
	"7", "8", "9", "÷",
	"4", "5", "6", "×",
	"1", "2", "3", "−",
	"0", ".", "=", "+",
	"AC", "C",
}

// ParseLabel converts a button label to an event.
// Labels are matched case-insensitively for "C" and "AC"; operators also
// accept their ASCII forms.
func ParseLabel(label string) (Event, error) {
	label = strings.TrimSpace(label)
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return Digit(rune(label[0])), nil
	}

	switch strings.ToUpper(label) {
	case ".", ",":
		return Decimal(), nil
	case "=":
		return Calculate(), nil
	case "C":
		return Clear(), nil
	case "AC":
		return AllClear(), nil
	}

	if op, err := ParseOperator(label); err == nil {
		return Operate(op), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
}

// ParseSequence converts a compact key string such as "12+34=" into events.
// Whitespace is skipped, "AC" is recognized as one token, and every other
// character must be a single-character label.
func ParseSequence(s string) ([]Event, error) {
	var events []Event
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		if (r == 'A' || r == 'a') && i+1 < len(runes) && (runes[i+1] == 'C' || runes[i+1] == 'c') {
			events = append(events, AllClear())
			i++
			continue
		}
		ev, err := ParseLabel(string(r))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}
