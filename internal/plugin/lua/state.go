package lua

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultExecutionTimeout bounds each call into Lua.
const DefaultExecutionTimeout = 2 * time.Second

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; a State must be used from a
// single goroutine.
type State struct {
	L       *lua.LState
	timeout time.Duration
	closed  bool
}

// newState creates a sandboxed Lua state.
func newState(timeout time.Duration) *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(L)
	restrict(L)

	if timeout <= 0 {
		timeout = DefaultExecutionTimeout
	}
	return &State{L: L, timeout: timeout}
}

// openSafeLibraries opens only the libraries scripts may use.
// io, os, debug, package and coroutine stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// run executes fn with a deadline and panic recovery.
func (s *State) run(ctx context.Context, fn func() error) (err error) {
	if s.closed {
		return ErrStateClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	err = fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %s", ErrExecutionTimeout, s.timeout)
	}
	return err
}

// doString compiles and runs a chunk.
func (s *State) doString(ctx context.Context, name, code string) error {
	return s.run(ctx, func() error {
		fn, err := s.L.Load(stringReader(code), name)
		if err != nil {
			return err
		}
		s.L.Push(fn)
		return s.L.PCall(0, lua.MultRet, nil)
	})
}

// call invokes fn with args and discards results.
func (s *State) call(ctx context.Context, fn *lua.LFunction, args ...lua.LValue) error {
	return s.run(ctx, func() error {
		return s.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	})
}

// close releases the Lua state.
func (s *State) close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
