// Package config resolves the CLI configuration from the environment and
// command-line flags. Flags win over environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	flag "github.com/spf13/pflag"
)

// Config holds the resolved CLI settings.
type Config struct {
	// File is the scenario file to run; empty runs the built-in suite.
	File string `env:"FUNCTOOLS_FILE"`
	// Only restricts the run to scenarios whose name contains it.
	Only string `env:"FUNCTOOLS_ONLY"`
	// JSON switches output to a JSON array of outcomes.
	JSON bool `env:"FUNCTOOLS_JSON"`
	// NoColor disables terminal colors.
	NoColor bool `env:"FUNCTOOLS_NO_COLOR"`
	// Strict makes the CLI exit non-zero when any scenario failed.
	Strict bool `env:"FUNCTOOLS_STRICT"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"FUNCTOOLS_LOG_LEVEL" envDefault:"warn"`

	// ShowVersion is set by --version only.
	ShowVersion bool
}

// Load builds a Config from environ (KEY=VALUE pairs, as os.Environ returns)
// and args (without the program name).
func Load(args, environ []string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: toMap(environ)}); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	fs := flag.NewFlagSet("functools", flag.ContinueOnError)
	fs.StringVarP(&cfg.File, "file", "f", cfg.File, "Scenario file to run (default: built-in demo suite)")
	fs.StringVar(&cfg.Only, "only", cfg.Only, "Run only scenarios whose name contains this text")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Print outcomes as JSON")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Exit with a non-zero status if any scenario failed")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("config: unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func toMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
