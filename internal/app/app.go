// Package app wires the calculator together: configuration, logging, the
// expression engine, key bindings, Lua scripts and the terminal UI.
package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/plugin/lua"
	"github.com/dshills/keycalc/internal/renderer"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

// Application is the central coordinator for all keycalc components.
type Application struct {
	mu sync.Mutex

	config  *config.Config
	logger  *Logger
	logFile io.Closer
	session string

	engine  *calc.Engine
	keymap  *keymap.Keymap
	plugins *lua.Host

	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *config.Watcher
	pressed  string

	// inputs records every applied label for the session report.
	inputs []string
	// scripting is set while Lua code runs, so presses made by scripts
	// do not re-enter the result hooks.
	scripting bool
	// pendingResult carries a finished calculation from the engine
	// observer to the caller of Apply.
	pendingResult bool

	running     atomic.Bool
	done        chan struct{}
	closed      bool
	cleanupOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives logs when no log file is configured.
	// Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch enables live reload of ConfigPath.
	Watch bool
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.NewString(),
		done:    make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and drives the event loop until the user
// quits or Shutdown is called. A normal quit returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer b.Shutdown()

	if app.config.Display.Mouse {
		b.EnableMouse()
	}

	theme, err := renderer.ThemeFromConfig(app.config.Theme)
	if err != nil {
		app.logger.Warn("invalid theme, using defaults", "error", err)
	}
	app.renderer = renderer.New(b, theme, renderer.WithExpression(app.config.Display.ShowExpression))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app.startWatcher(ctx)

	go func() {
		select {
		case <-app.done:
			b.PostEvent(backend.InterruptEvent(quitSignal{}))
		case <-ctx.Done():
		}
	}()

	app.logger.Info("started", "config", app.opts.ConfigPath)
	app.draw()
	return app.eventLoop()
}

// Shutdown stops the event loop. Resources are released once the loop
// has exited, or immediately when it is not running. It is safe to call
// more than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	if !app.closed {
		app.closed = true
		close(app.done)
	}
	app.mu.Unlock()

	if !app.running.Load() {
		app.cleanupOnce.Do(app.cleanup)
	}
}

func (app *Application) cleanup() {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	if app.plugins != nil {
		_ = app.plugins.Close()
	}
	app.logger.Debug("shutdown", "inputs", len(app.inputs))
	app.closeLog()
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns true if the event loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Engine returns the expression engine.
func (app *Application) Engine() *calc.Engine {
	return app.engine
}

// Keymap returns the active key bindings.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// Plugins returns the Lua host.
func (app *Application) Plugins() *lua.Host {
	return app.plugins
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SessionID returns the unique identifier of this run.
func (app *Application) SessionID() string {
	return app.session
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}
