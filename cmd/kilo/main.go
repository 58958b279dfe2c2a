// Package main is the entry point for the kilo editor.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/kilo/internal/app"
	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "0.0.1"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	configPath string
	overrides  config.Overrides
	filename   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: kilo must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Apply(opts.overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, logFile, err := app.OpenLogFile(cfg.LogFile(), app.ParseLogLevel(cfg.Log.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logFile.Close()
	if cfg.Source != "" {
		logger.Info("configuration loaded from %s", cfg.Source)
	}

	editor, err := app.New(app.Options{
		Config:   cfg,
		Logger:   logger,
		Filename: opts.filename,
		Version:  version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer editor.Close()

	tty, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := editor.SetBackend(tty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Raw mode turns Ctrl-C into a key, so only outside signals get here.
	// Put the terminal back before dying.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-signals
		tty.Shutdown()
		logger.Warn("terminated by %v", sig)
		os.Exit(1)
	}()

	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.overrides.LogFile, "log-file", "", "Write diagnostics to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kilo - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kilo [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-S save, Ctrl-Q quit, Ctrl-F find\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("kilo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.filename = flag.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: kilo opens at most one file")
		flag.Usage()
		os.Exit(1)
	}

	return opts
}
