// Package main is the entry point for the keycalc terminal calculator.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/keycalc/internal/app"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds flags that do not belong to app.Options.
type cliOptions struct {
	app.Options

	expr   string
	labels []string
	json   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.batch() {
		return runBatch(opts)
	}

	// The terminal owns the screen; logs go to the configured file only.
	opts.LogOutput = io.Discard

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func (o cliOptions) batch() bool {
	return o.expr != "" || len(o.labels) > 0
}

// runBatch evaluates input without a terminal and prints the result.
func runBatch(opts cliOptions) int {
	opts.LogOutput = os.Stderr

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	var display string
	if opts.expr != "" {
		display, err = application.EvalString(opts.expr)
	} else {
		display, err = application.Eval(opts.labels)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.json {
		report, err := application.Report()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(string(report))
		return 0
	}

	fmt.Println(display)
	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file when it changes")
	flag.StringVar(&opts.expr, "e", "", "Evaluate a key sequence such as \"12+34=\" and exit")
	flag.BoolVar(&opts.json, "json", false, "Print a JSON session report in batch mode")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keycalc - terminal calculator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keycalc [options] [labels...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keycalc                     Open the calculator\n")
		fmt.Fprintf(os.Stderr, "  keycalc -e '12+34='         Print 46\n")
		fmt.Fprintf(os.Stderr, "  keycalc 7 × 6 =             Press buttons by label\n")
		fmt.Fprintf(os.Stderr, "  keycalc -json -e '1÷0='     Print the session as JSON\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keycalc %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// Remaining arguments are button labels
	opts.labels = flag.Args()

	if opts.ConfigPath == "" {
		opts.ConfigPath = defaultConfigPath()
	}

	return opts
}

// defaultConfigPath returns the per-user config file, if it exists.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, "keycalc", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
