package app

import (
	"context"
	"errors"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/renderer"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

// quitSignal is posted as interrupt data when Shutdown is called.
type quitSignal struct{}

// eventLoop processes backend events until quit.
func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()
		err := app.handleEvent(ev)
		if errors.Is(err, ErrQuit) {
			app.logger.Info("quit", "inputs", len(app.inputs))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventMouse:
		return app.handleMouse(ev)
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
		app.draw()
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Data)
	}
	return nil
}

func (app *Application) handleKey(ev backend.Event) error {
	action, ok := app.keymap.Lookup(ev.Key)
	if !ok {
		app.logger.Debug("unbound key", "key", ev.Key.String())
		return nil
	}

	switch action.Kind {
	case keymap.ActionQuit:
		return ErrQuit
	case keymap.ActionPress:
		app.press(action.Event)
	case keymap.ActionMacro:
		app.runMacro(action.Macro)
	}
	return nil
}

func (app *Application) handleMouse(ev backend.Event) error {
	if ev.MouseButton != backend.MouseLeft {
		return nil
	}
	label := app.renderer.HitTest(ev.MouseX, ev.MouseY)
	if label == "" {
		return nil
	}
	cev, err := calc.ParseLabel(label)
	if err != nil {
		return NewOperationError("click", label, err)
	}
	app.press(cev)
	return nil
}

func (app *Application) handleInterrupt(data any) error {
	switch v := data.(type) {
	case quitSignal:
		return ErrQuit
	case *config.Config:
		app.applyConfig(v)
	}
	return nil
}

// press applies a user event, runs result hooks and redraws.
func (app *Application) press(ev calc.Event) {
	app.apply(ev)
	app.pressed = ev.String()
	app.notifyResult()
	app.draw()
}

// apply feeds one event to the engine and records it.
func (app *Application) apply(ev calc.Event) string {
	app.inputs = append(app.inputs, ev.String())
	return app.engine.Apply(ev)
}

// notifyResult passes a finished calculation to the script hooks.
func (app *Application) notifyResult() {
	if !app.pendingResult || app.scripting {
		return
	}
	app.pendingResult = false

	app.scripting = true
	defer func() {
		app.scripting = false
		app.pendingResult = false
	}()

	if err := app.plugins.NotifyResult(context.Background(), app.engine.Display()); err != nil {
		app.logger.Warn("result hook failed", "error", err)
	}
}

func (app *Application) runMacro(name string) {
	app.scripting = true
	err := app.plugins.RunMacro(context.Background(), name)
	app.scripting = false
	app.pendingResult = false

	if err != nil {
		app.logger.Warn("macro failed", "macro", name, "error", err)
		if app.backend != nil {
			app.backend.Beep()
		}
	}
	app.pressed = ""
	app.draw()
}

// applyConfig makes a reloaded configuration active. Engine limits and
// scripts keep their startup values.
func (app *Application) applyConfig(cfg *config.Config) {
	log := app.logger.WithComponent("config")

	km, err := app.buildKeymap(cfg)
	if err != nil {
		log.Warn("reload rejected", "error", err)
		return
	}
	theme, err := renderer.ThemeFromConfig(cfg.Theme)
	if err != nil {
		log.Warn("reload rejected", "error", err)
		return
	}

	if app.opts.LogLevel == "" {
		app.logger.SetLevel(cfg.Logging.Level)
	} else {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.keymap = km
	if app.backend != nil {
		if cfg.Display.Mouse {
			app.backend.EnableMouse()
		} else {
			app.backend.DisableMouse()
		}
	}
	if app.renderer != nil {
		app.renderer.SetTheme(theme)
		app.renderer.SetShowExpression(cfg.Display.ShowExpression)
	}
	cfg.Display.ErrorText = app.config.Display.ErrorText
	cfg.Display.MaxDigits = app.config.Display.MaxDigits
	cfg.Display.HistoryLimit = app.config.Display.HistoryLimit
	cfg.Plugins = app.config.Plugins
	app.config = cfg

	log.Info("reloaded", "bindings", km.Len())
	app.draw()
}

// draw renders the current engine state.
func (app *Application) draw() {
	if app.renderer == nil {
		return
	}
	app.renderer.Draw(renderer.View{
		Display:    app.engine.Display(),
		Expression: app.engine.Expression(),
		Pressed:    app.pressed,
	})
}

// startWatcher begins live reload when enabled.
func (app *Application) startWatcher(ctx context.Context) {
	if !app.opts.Watch || app.opts.ConfigPath == "" {
		return
	}
	log := app.logger.WithComponent("watcher")

	w, err := config.NewWatcher(app.opts.ConfigPath,
		func(cfg *config.Config) {
			app.backend.PostEvent(backend.InterruptEvent(cfg))
		},
		config.WithEnvPrefix(config.EnvPrefix),
		config.WithErrorHandler(func(err error) {
			log.Warn("reload failed", "error", err)
		}),
	)
	if err != nil {
		log.Warn("watch disabled", "error", err)
		return
	}
	app.watcher = w

	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("watcher stopped", "error", err)
		}
	}()
	log.Debug("watching", "path", w.Path())
}
