package lua

import (
	"errors"
	"fmt"
)

// Errors for Lua host operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrUnknownMacro is returned by RunMacro for an unregistered name.
	ErrUnknownMacro = errors.New("unknown macro")
)

// ScriptError wraps a failure inside a Lua script.
type ScriptError struct {
	// Script is the chunk name, usually the file path.
	Script string
	// Op is what the host was doing: "load", "macro", "on_result".
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	if e.Script == "" {
		return fmt.Sprintf("lua %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("lua %s %s: %v", e.Op, e.Script, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
