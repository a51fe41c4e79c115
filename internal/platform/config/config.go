package config

import (
	"fmt"
	"strings"

	apperrors "excalc/internal/platform/errors"
)

const (
	DefaultLabelWidth       = 30
	DefaultBarLabelWidth    = 15
	DefaultCaloriesPerBlock = 100
)

// Options carries the raw command-line switches before validation.
type Options struct {
	Plain             bool
	TreadmillQuestion bool
	OptionsListing    bool
	LogLevel          string
	LogFormat         string
}

type Config struct {
	Escapes           bool
	TreadmillQuestion bool
	OptionsListing    bool
	LabelWidth        int
	BarLabelWidth     int
	CaloriesPerBlock  float64
	LogLevel          string
	LogFormat         string
}

func DefaultOptions() Options {
	return Options{
		TreadmillQuestion: true,
		OptionsListing:    true,
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

func New(opts Options) (Config, error) {
	level := strings.ToLower(strings.TrimSpace(opts.LogLevel))
	if level == "" {
		level = "warn"
	}
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("log level %q: %w", opts.LogLevel, apperrors.ErrInvalidInput)
	}
	format := strings.ToLower(strings.TrimSpace(opts.LogFormat))
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		return Config{}, fmt.Errorf("log format %q: %w", opts.LogFormat, apperrors.ErrInvalidInput)
	}
	cfg := Config{
		Escapes:           !opts.Plain,
		TreadmillQuestion: opts.TreadmillQuestion,
		OptionsListing:    opts.OptionsListing,
		LabelWidth:        DefaultLabelWidth,
		BarLabelWidth:     DefaultBarLabelWidth,
		CaloriesPerBlock:  DefaultCaloriesPerBlock,
		LogLevel:          level,
		LogFormat:         format,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LabelWidth <= 0 || c.BarLabelWidth <= 0 {
		return fmt.Errorf("label widths must be positive: %w", apperrors.ErrInvalidInput)
	}
	if c.CaloriesPerBlock <= 0 {
		return fmt.Errorf("calories per block must be positive: %w", apperrors.ErrInvalidInput)
	}
	return nil
}
