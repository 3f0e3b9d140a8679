// Command functools runs scenarios against the functools helpers and prints
// each outcome.
//
// Usage:
//
//	functools                      Run the built-in demo suite
//	functools -f suite.yaml        Run scenarios from a file
//	functools --only dict --json   Run matching scenarios, print JSON
//
// Environment variables FUNCTOOLS_FILE, FUNCTOOLS_ONLY, FUNCTOOLS_JSON,
// FUNCTOOLS_NO_COLOR, FUNCTOOLS_STRICT and FUNCTOOLS_LOG_LEVEL provide
// defaults for the matching flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/hasbyte1/go-functools/internal/config"
	"github.com/hasbyte1/go-functools/internal/scenario"
	"github.com/hasbyte1/go-functools/internal/ui"
)

// Version information (set via ldflags during build)
var version = "dev"

// Exit codes.
const (
	exitOK       = 0
	exitConfig   = 1
	exitFailures = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, environ)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "functools %s\n", version)
		return exitOK
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	suite := scenario.Default()
	if cfg.File != "" {
		if suite, err = scenario.LoadFile(cfg.File); err != nil {
			logger.Error("load scenarios", "file", cfg.File, "err", err)
			return exitConfig
		}
	}
	logger.Debug("running scenarios", "count", len(suite.Scenarios), "only", cfg.Only)

	outcomes := scenario.RunAll(suite, cfg.Only)
	for _, o := range outcomes {
		if o.Err != nil {
			logger.Debug("scenario failed", "name", o.Name, "kind", o.ErrorKind, "err", o.Err)
		}
	}

	p := ui.NewPrinter(stdout)
	if cfg.JSON {
		if err := p.JSON(outcomes); err != nil {
			logger.Error("write output", "err", err)
			return exitConfig
		}
	} else {
		ui.InitColors(cfg.NoColor)
		title := "functools demo"
		if cfg.File != "" {
			title = cfg.File
		}
		p.Header(title)
		for _, o := range outcomes {
			p.Outcome(o)
		}
		p.Summary(outcomes)
	}

	if cfg.Strict && ui.Failed(outcomes) > 0 {
		return exitFailures
	}
	return exitOK
}
