package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "keycalc.toml", "[display]\nmax_digits = 4\n")

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { reloaded <- cfg },
		WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the event loop a moment to start.
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[display]\nmax_digits = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Display.MaxDigits != 7 {
			t.Errorf("MaxDigits = %d, want 7", cfg.Display.MaxDigits)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestWatcher_InvalidReloadReportsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "keycalc.toml", "")

	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(*Config) { t.Error("onChange called for invalid config") },
		WithDebounce(20*time.Millisecond),
		WithErrorHandler(func(err error) { errs <- err }))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[display]\nmax_digits = -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "keycalc.toml", "")

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) { reloaded <- cfg },
		WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	writeFile(t, dir, "other.toml", "x = 1")

	select {
	case <-reloaded:
		t.Fatal("reload triggered by unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_RunAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycalc.toml")
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Run(context.Background()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Run() after Close error = %v, want ErrWatcherClosed", err)
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "keycalc.toml")
	if _, err := NewWatcher(path, nil); err == nil {
		t.Error("NewWatcher() error = nil, want error for missing directory")
	}
}
