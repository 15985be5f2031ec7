// Package calc provides the calculator expression engine for keycalc.
//
// The engine is a small state machine driven by button presses. It owns the
// operand being typed, an optional pending operation, and a flag telling it
// whether the next digit starts a new operand. It has no knowledge of any
// user interface: callers feed it events and render the string it returns.
//
// # Basic Usage
//
//	e := calc.New()
//	e.Apply(calc.Digit('1'))
//	e.Apply(calc.Operate(calc.OpDivide))
//	e.Apply(calc.Digit('4'))
//	display := e.Apply(calc.Calculate()) // "0.25"
//
// Button labels can be converted with ParseLabel:
//
//	ev, err := calc.ParseLabel("×")
//
// # Evaluation
//
// Operators are evaluated strictly left to right with no precedence.
// Pressing an operator while another one is pending evaluates the pending
// operation first, so "3 + 4 ×" shows 7 before the multiplication.
//
// # Errors
//
// Apply never returns an error. A failed evaluation (division by zero or a
// non-finite result) moves the engine into the error phase, where it shows
// the error text and ignores everything except AllClear. The cause is
// available from Err:
//
//   - ErrDivisionByZero: the right operand of a division was zero
//   - ErrOverflow: the result was not a finite number
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. It is meant to be owned by the
// goroutine that processes input events.
package calc
