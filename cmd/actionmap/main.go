// Package main is the entry point for the actionmap inspector.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/actionmap/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, checkMode := parseFlags()

	// Check mode validates the profile and exits without a terminal UI.
	if checkMode {
		problems, err := app.Check(opts, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if problems > 0 {
			return 1
		}
		return 0
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Close()

	// Handle signals for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		cancel()
	}()

	// Run the application
	if err := application.Run(ctx); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var checkMode bool
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ProfilePath, "profile", "", "Path to action profile XML")
	flag.StringVar(&opts.ProfilePath, "p", "", "Path to action profile XML (shorthand)")
	flag.StringVar(&opts.LayoutName, "layout", "", "Joystick layout name")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&checkMode, "check", false, "Validate the profile and report collisions, then exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Actionmap - live input action binding inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: actionmap [options] [profile.xml]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  actionmap                        Inspect the configured profile\n")
		fmt.Fprintf(os.Stderr, "  actionmap game.xml               Inspect a profile file\n")
		fmt.Fprintf(os.Stderr, "  actionmap -layout xbox game.xml  Inspect with the xbox layout\n")
		fmt.Fprintf(os.Stderr, "  actionmap -check game.xml        Validate a profile and exit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Actionmap %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level when given; empty defers to the config file.
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	// A single positional argument names the profile to inspect.
	if args := flag.Args(); len(args) > 0 && opts.ProfilePath == "" {
		opts.ProfilePath = args[0]
	}

	return opts, checkMode
}
