package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/plugin/lua"
)

// Binding sources, most specific last.
const (
	sourceConfig = "config"
	sourceScript = "script"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config: defaults, file, environment, command line.
	cfg, err := config.LoadAll(app.opts.ConfigPath, config.EnvPrefix)
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return NewComponentError("logger", "open", err)
	}
	app.logger.Debug("config loaded", "settings", cfg.String())

	// 3. Engine
	app.engine = app.newEngine()

	// 4. Plugins, before the keymap so script bindings can be merged.
	if err := app.initPlugins(); err != nil {
		return NewComponentError("plugins", "load", err)
	}

	// 5. Keymap
	km, err := app.buildKeymap(cfg)
	if err != nil {
		return NewComponentError("keymap", "load", err)
	}
	app.keymap = km

	return nil
}

func (app *Application) initLogger() error {
	out := app.opts.LogOutput
	noColor := false
	if path := app.config.Logging.File; path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
		noColor = true
	}
	if out == nil {
		out = os.Stderr
	}
	if out == io.Discard {
		app.logger = NullLogger()
	} else {
		app.logger = NewLogger(LoggerConfig{
			Level:   app.config.Logging.Level,
			Output:  out,
			NoColor: noColor,
		})
	}
	app.logger = app.logger.With("session", app.session)
	return nil
}

func (app *Application) newEngine() *calc.Engine {
	d := app.config.Display
	log := app.logger.WithComponent("engine")

	return calc.New(
		calc.WithErrorText(d.ErrorText),
		calc.WithMaxDigits(d.MaxDigits),
		calc.WithHistoryLimit(d.HistoryLimit),
		calc.WithObserver(func(step calc.Step) {
			if step.Err != nil {
				log.Warn("evaluation failed", "event", step.Event.String(), "error", step.Err)
			} else {
				log.Debug("step", "event", step.Event.String(),
					"from", step.From.String(), "to", step.To.String(), "display", step.Display)
			}
			if step.Err == nil && step.Event.Kind == calc.KindCalculate && step.From == calc.PhasePendingOp {
				app.pendingResult = true
			}
		}),
	)
}

func (app *Application) initPlugins() error {
	log := app.logger.WithComponent("plugins")
	app.plugins = lua.NewHost(&engineCalculator{app: app},
		lua.WithTimeout(app.config.PluginTimeout()),
		lua.WithLogger(log.Logger),
	)

	app.scripting = true
	defer func() { app.scripting = false }()

	var errs []error
	for _, path := range app.config.Plugins.Scripts {
		if err := app.plugins.Load(context.Background(), path); err != nil {
			errs = append(errs, err)
			continue
		}
		log.Info("script loaded", "path", path)
	}
	return errors.Join(errs...)
}

// buildKeymap layers the defaults, configured overrides and script
// bindings.
func (app *Application) buildKeymap(cfg *config.Config) (*keymap.Keymap, error) {
	km := keymap.Default()
	if err := km.Load(cfg.Keymap, sourceConfig); err != nil {
		return nil, err
	}
	if app.plugins != nil {
		for _, b := range app.plugins.Bindings() {
			km.BindEvent(b.Key, keymap.Action{Kind: keymap.ActionMacro, Macro: b.Macro}, sourceScript)
		}
	}

	// Configured macro targets must name a registered macro.
	for _, b := range km.Bindings() {
		if b.Action.Kind == keymap.ActionMacro && !app.plugins.HasMacro(b.Action.Macro) {
			return nil, fmt.Errorf("binding %s: %w: %s", b.Keys, lua.ErrUnknownMacro, b.Action.Macro)
		}
	}
	return km, nil
}
