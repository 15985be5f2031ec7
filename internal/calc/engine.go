package calc

import (
	"fmt"
	"strings"
)

// Engine is the calculator expression engine.
// It accumulates button presses into an operand buffer, holds at most one
// pending operation, and evaluates it on request.
type Engine struct {
	buffer     string
	fresh      bool
	pending    Pending
	hasPending bool
	phase      Phase
	err        error
	expression string // expression line shown after a calculation

	history []Entry

	// Configuration
	errorText    string
	maxDigits    int
	historyLimit int
	observers    []func(Step)
}

// New creates an engine in its initial state: buffer "0", nothing pending.
func New(opts ...Option) *Engine {
	e := &Engine{
		errorText:    DefaultErrorText,
		historyLimit: DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset()
	return e
}

// reset restores the initial state. The history tape is kept.
func (e *Engine) reset() {
	e.buffer = "0"
	e.fresh = false
	e.pending = Pending{}
	e.hasPending = false
	e.phase = PhaseEntering
	e.err = nil
	e.expression = ""
}

// Apply processes one event and returns the text to display.
// Invalid events leave the engine unchanged.
func (e *Engine) Apply(ev Event) string {
	from := e.phase
	var stepErr error

	if ev.Valid() {
		stepErr = e.apply(ev)
	}

	display := e.Display()
	if len(e.observers) > 0 {
		step := Step{Event: ev, From: from, To: e.phase, Display: display, Err: stepErr}
		for _, fn := range e.observers {
			fn(step)
		}
	}
	return display
}

func (e *Engine) apply(ev Event) error {
	if e.phase == PhaseError {
		if ev.Kind == KindAllClear {
			e.reset()
		}
		return nil
	}

	switch ev.Kind {
	case KindDigit:
		e.expression = ""
		e.inputDigit(ev.Digit)
	case KindDecimal:
		e.expression = ""
		e.inputDecimal()
	case KindOperator:
		e.expression = ""
		return e.inputOperator(ev.Op)
	case KindCalculate:
		return e.calculate()
	case KindClear:
		e.expression = ""
		e.buffer = "0"
		e.fresh = true
	case KindAllClear:
		e.reset()
	}
	return nil
}

func (e *Engine) inputDigit(d rune) {
	if e.fresh {
		e.buffer = string(d)
		e.fresh = false
		return
	}
	if e.buffer == "0" {
		// Leading zero suppression; "0" followed by "0" stays "0".
		e.buffer = string(d)
		return
	}
	if e.maxDigits > 0 && countDigits(e.buffer) >= e.maxDigits {
		return
	}
	e.buffer += string(d)
}

func (e *Engine) inputDecimal() {
	if e.fresh {
		e.buffer = "0."
		e.fresh = false
		return
	}
	if !strings.Contains(e.buffer, ".") {
		e.buffer += "."
	}
}

func (e *Engine) inputOperator(op Operator) error {
	if e.hasPending {
		// Chained entry: the pending operation takes the buffer as its
		// right operand before op is stored.
		_, result, err := e.evaluate()
		if err != nil {
			return e.fail(err)
		}
		e.pending = Pending{Left: result, Op: op}
	} else {
		left, err := parseOperand(e.buffer)
		if err != nil {
			return e.fail(fmt.Errorf("parsing operand %q: %w", e.buffer, err))
		}
		e.pending = Pending{Left: left, Op: op}
		e.hasPending = true
	}

	e.buffer = "0"
	e.fresh = true
	e.phase = PhasePendingOp
	return nil
}

func (e *Engine) calculate() error {
	if !e.hasPending {
		return nil
	}

	left, op := e.pending.Left, e.pending.Op
	right, result, err := e.evaluate()
	if err != nil {
		return e.fail(err)
	}

	e.expression = fmt.Sprintf("%s %s %s =", FormatNumber(left), op, FormatNumber(right))
	e.buffer = FormatNumber(result)
	e.pending = Pending{}
	e.hasPending = false
	e.fresh = true
	e.phase = PhaseEntering
	return nil
}

// evaluate applies the pending operation to the buffer and records the
// result on the tape.
func (e *Engine) evaluate() (right, result float64, err error) {
	right, err = parseOperand(e.buffer)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing operand %q: %w", e.buffer, err)
	}
	result, err = e.pending.Op.Eval(e.pending.Left, right)
	if err != nil {
		return right, 0, err
	}
	e.record(Entry{Left: e.pending.Left, Op: e.pending.Op, Right: right, Result: result})
	return right, result, nil
}

// fail moves the engine into the error phase.
func (e *Engine) fail(err error) error {
	e.err = err
	e.pending = Pending{}
	e.hasPending = false
	e.buffer = "0"
	e.fresh = true
	e.expression = ""
	e.phase = PhaseError
	return err
}

func (e *Engine) record(entry Entry) {
	if e.historyLimit == 0 {
		return
	}
	e.history = append(e.history, entry)
	if over := len(e.history) - e.historyLimit; over > 0 {
		e.history = append(e.history[:0], e.history[over:]...)
	}
}

// Display returns the text to render for the current state.
func (e *Engine) Display() string {
	if e.phase == PhaseError {
		return e.errorText
	}
	if e.buffer == "" {
		return "0"
	}
	return e.buffer
}

// Expression returns the secondary display line: the pending operation
// ("12 +"), the calculation just completed ("12 + 5 ="), or "".
func (e *Engine) Expression() string {
	if e.hasPending {
		return e.pending.String()
	}
	return e.expression
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Err returns the failure that put the engine in the error phase, or nil.
func (e *Engine) Err() error {
	return e.err
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	s := State{
		Buffer: e.buffer,
		Fresh:  e.fresh,
		Phase:  e.phase,
	}
	if e.hasPending {
		p := e.pending
		s.Pending = &p
	}
	return s
}

// History returns a copy of the tape, oldest first.
func (e *Engine) History() []Entry {
	if len(e.history) == 0 {
		return nil
	}
	out := make([]Entry, len(e.history))
	copy(out, e.history)
	return out
}

// ClearHistory empties the tape.
func (e *Engine) ClearHistory() {
	e.history = nil
}

// ApplyAll applies events in order and returns the final display.
func (e *Engine) ApplyAll(events ...Event) string {
	display := e.Display()
	for _, ev := range events {
		display = e.Apply(ev)
	}
	return display
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
