package calc

import "fmt"

// Phase is the engine's position in its state machine.
type Phase uint8

const (
	// PhaseEntering is the initial phase: an operand is being typed and no
	// operation is pending.
	PhaseEntering Phase = iota

	// PhasePendingOp means a left operand and operator await a right operand.
	PhasePendingOp

	// PhaseError is entered when an evaluation fails. Only AllClear leaves it.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhasePendingOp:
		return "pending"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Pending is a stored left operand and operator.
type Pending struct {
	Left float64
	Op   Operator
}

// String returns the pending operation as shown on the expression line.
func (p Pending) String() string {
	return fmt.Sprintf("%s %s", FormatNumber(p.Left), p.Op)
}

// State is a read-only snapshot of the engine.
type State struct {
	// Buffer is the operand text. It is never empty; in the error phase it
	// is "0" while the display shows the error text.
	Buffer string

	// Pending is the operation awaiting a right operand, or nil.
	Pending *Pending

	// Fresh reports whether the next digit replaces the buffer.
	Fresh bool

	Phase Phase
}

// Entry is one completed evaluation on the history tape.
type Entry struct {
	Left   float64
	Op     Operator
	Right  float64
	Result float64
}

// String renders the entry as "left op right = result".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(e.Left), e.Op, FormatNumber(e.Right), FormatNumber(e.Result))
}

// Step describes the effect of one applied event. Observers receive it
// after the engine has been updated.
type Step struct {
	Event   Event
	From    Phase
	To      Phase
	Display string

	// Err is set when the event caused a failed evaluation.
	Err error
}
