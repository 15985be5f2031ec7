package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload is attempted. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the configuration loaded after a change.
type ReloadFunc func(cfg *Config)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the reload debounce interval.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithEnvPrefix applies environment overrides to every reload.
func WithEnvPrefix(prefix string) WatcherOption {
	return func(w *Watcher) {
		w.envPrefix = prefix
	}
}

// WithErrorHandler sets the callback for reload and watch errors.
// Without one, errors are dropped and the previous configuration stays
// in effect.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher reloads a configuration file when it changes on disk.
//
// The directory containing the file is watched rather than the file
// itself so that atomic saves (write temp file, rename over) are seen.
type Watcher struct {
	mu sync.Mutex

	path      string
	envPrefix string
	debounce  time.Duration
	onChange  ReloadFunc
	onError   func(error)

	fsw    *fsnotify.Watcher
	closed bool
}

// NewWatcher creates a watcher for path. The file need not exist yet, but
// its directory must.
func NewWatcher(path string, onChange ReloadFunc, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:     absPath,
		debounce: DefaultDebounce,
		onChange: onChange,
		fsw:      fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run processes file events until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.mu.Unlock()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.reportError(fmt.Errorf("watching %s: %w", w.path, err))

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	var (
		cfg *Config
		err error
	)
	if w.envPrefix != "" {
		cfg, err = LoadAll(w.path, w.envPrefix)
	} else {
		cfg, err = Load(w.path)
		if err == nil {
			err = cfg.Validate()
		}
	}
	if err != nil {
		w.reportError(err)
		return
	}
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}

// Close stops watching. Run returns once the event channels close.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fsw.Close()
}
