package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/catalystneuro/ndx-anatomical-localization/i18n"
	"github.com/catalystneuro/ndx-anatomical-localization/store"
)

// Config is read from the environment.
type Config struct {
	// Lang selects issue messages: en or ja.
	Lang     string     `env:"ANATLOC_LANG" envDefault:"en"`
	LogLevel slog.Level `env:"ANATLOC_LOG_LEVEL" envDefault:"info"`
	// Format is used when writing to stdout.
	Format string `env:"ANATLOC_FORMAT" envDefault:"json"`
}

// ParseEnv loads Config from the process environment.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnvFrom loads Config from the given variables instead of the process
// environment.
func ParseEnvFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) format() (store.Format, error) { return store.ParseFormat(c.Format) }

// apply installs the language and returns a logger writing to w.
func (c Config) apply(w io.Writer) *slog.Logger {
	i18n.SetLanguage(c.Lang)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
