package config_test

import (
	"errors"
	"testing"

	"excalc/internal/platform/config"
	apperrors "excalc/internal/platform/errors"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(config.DefaultOptions())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if !cfg.Escapes || !cfg.TreadmillQuestion || !cfg.OptionsListing {
		t.Fatalf("expected escapes, treadmill question and options listing enabled, got %+v", cfg)
	}
	if cfg.LabelWidth != 30 || cfg.BarLabelWidth != 15 || cfg.CaloriesPerBlock != 100 {
		t.Fatalf("unexpected widths %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Fatalf("unexpected log settings %q %q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestNewPlainDisablesEscapes(t *testing.T) {
	t.Parallel()
	opts := config.DefaultOptions()
	opts.Plain = true
	opts.TreadmillQuestion = false
	opts.LogLevel = " DEBUG "
	cfg, err := config.New(opts)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Escapes || cfg.TreadmillQuestion {
		t.Fatalf("expected escapes and treadmill question disabled, got %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.LogLevel)
	}
}

func TestNewRejectsUnknownLogSettings(t *testing.T) {
	t.Parallel()
	opts := config.DefaultOptions()
	opts.LogLevel = "verbose"
	if _, err := config.New(opts); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for level, got %v", err)
	}
	opts = config.DefaultOptions()
	opts.LogFormat = "xml"
	if _, err := config.New(opts); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for format, got %v", err)
	}
}

func TestValidateRejectsNonPositiveWidths(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(config.DefaultOptions())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	cfg.LabelWidth = 0
	if err := cfg.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	cfg.LabelWidth = 30
	cfg.CaloriesPerBlock = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative calories per block must fail")
	}
}
