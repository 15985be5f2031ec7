package calc

import "errors"

// Errors captured by the engine when an evaluation fails.
var (
	// ErrDivisionByZero indicates the right operand of a division was zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow indicates an evaluation produced an infinite or NaN result.
	ErrOverflow = errors.New("result out of range")

	// ErrUnknownLabel indicates a button label that maps to no event.
	ErrUnknownLabel = errors.New("unknown button label")

	// ErrUnknownOperator indicates a symbol that is not an arithmetic operator.
	ErrUnknownOperator = errors.New("unknown operator")
)
