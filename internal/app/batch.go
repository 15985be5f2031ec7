package app

import (
	"fmt"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/keycalc/internal/calc"
)

// Eval applies button labels in order without a terminal and returns the
// final display. Unknown labels stop evaluation with an *OperationError.
func (app *Application) Eval(labels []string) (string, error) {
	for _, label := range labels {
		ev, err := calc.ParseLabel(label)
		if err != nil {
			return app.engine.Display(), NewOperationError("eval", label, err)
		}
		app.apply(ev)
		app.notifyResult()
	}
	return app.engine.Display(), nil
}

// EvalString applies a compact sequence such as "12+34=".
func (app *Application) EvalString(seq string) (string, error) {
	events, err := calc.ParseSequence(seq)
	if err != nil {
		return app.engine.Display(), NewOperationError("eval", seq, err)
	}
	for _, ev := range events {
		app.apply(ev)
		app.notifyResult()
	}
	return app.engine.Display(), nil
}

// Report renders the session as indented JSON.
func (app *Application) Report() ([]byte, error) {
	doc := []byte(`{}`)
	set := func(path string, value any) error {
		var err error
		doc, err = sjson.SetBytes(doc, path, value)
		if err != nil {
			return fmt.Errorf("report %s: %w", path, err)
		}
		return nil
	}

	e := app.engine
	fields := []struct {
		path  string
		value any
	}{
		{"session", app.session},
		{"display", e.Display()},
		{"expression", e.Expression()},
		{"phase", e.Phase().String()},
		{"inputs", inputsOrEmpty(app.inputs)},
	}
	for _, f := range fields {
		if err := set(f.path, f.value); err != nil {
			return nil, err
		}
	}
	if err := e.Err(); err != nil {
		if err := set("error", err.Error()); err != nil {
			return nil, err
		}
	}

	if err := set("history", []any{}); err != nil {
		return nil, err
	}
	for _, entry := range e.History() {
		item := map[string]any{
			"left":   entry.Left,
			"op":     entry.Op.String(),
			"right":  entry.Right,
			"result": entry.Result,
			"text":   entry.String(),
		}
		if err := set("history.-1", item); err != nil {
			return nil, err
		}
	}

	return pretty.Pretty(doc), nil
}

func inputsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
