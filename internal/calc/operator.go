package calc

import (
	"fmt"
	"math"
)

// Operator is a binary arithmetic operator, identified by its button symbol.
type Operator rune

// Supported operators.
const (
	OpDivide   Operator = '÷'
	OpMultiply Operator = '×'
	OpSubtract Operator = '−'
	OpAdd      Operator = '+'
)

// ParseOperator converts a symbol to an Operator.
// Besides the button symbols it accepts the ASCII forms / * x and -.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "÷", "/":
		return OpDivide, nil
	case "×", "*", "x", "X":
		return OpMultiply, nil
	case "−", "-":
		return OpSubtract, nil
	case "+":
		return OpAdd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Valid reports whether o is one of the supported operators.
func (o Operator) Valid() bool {
	switch o {
	case OpDivide, OpMultiply, OpSubtract, OpAdd:
		return true
	default:
		return false
	}
}

// String returns the button symbol.
func (o Operator) String() string {
	if !o.Valid() {
		return "?"
	}
	return string(rune(o))
}

// Eval computes left o right.
// Division by zero returns ErrDivisionByZero; a result that is not finite
// returns ErrOverflow.
func (o Operator) Eval(left, right float64) (float64, error) {
	var result float64
	switch o {
	case OpAdd:
		result = left + right
	case OpSubtract:
		result = left - right
	case OpMultiply:
		result = left * right
	case OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		result = left / right
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, rune(o))
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrOverflow
	}
	return result, nil
}
