package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles column patterns.
func Validate(cfg *Config) error {
	if err := validateChar("delimiter", cfg.Delimiter); err != nil {
		return err
	}
	if err := validateChar("quote", cfg.Quote); err != nil {
		return err
	}
	if cfg.Delimiter == cfg.Quote {
		return errors.New("delimiter and quote must differ")
	}
	if cfg.HeaderLines < 0 {
		return errors.New("header_lines: must not be negative")
	}

	for i := range cfg.Columns {
		if err := validateColumn(&cfg.Columns[i]); err != nil {
			name := cfg.Columns[i].Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return fmt.Errorf("columns[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateChar(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s: is required", name)
	}
	if utf8.RuneCountInString(value) != 1 {
		return fmt.Errorf("%s: must be a single character, got %q", name, value)
	}
	return nil
}

func validateColumn(col *ColumnConfig) error {
	switch col.Type {
	case "", ColumnString, ColumnEcho:
	case ColumnNumber:
		if col.Pattern != "" {
			re, err := regexp.Compile(col.Pattern)
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}
			col.compiledPattern = re
		}
	case ColumnDate:
	default:
		return fmt.Errorf("unknown type %q (use number, string, date or echo)", col.Type)
	}

	if col.Type != ColumnNumber && col.Pattern != "" {
		return fmt.Errorf("pattern is only valid for number columns")
	}
	if col.Type != ColumnDate && (col.InputLayout != "" || col.OutputLayout != "") {
		return fmt.Errorf("layouts are only valid for date columns")
	}

	return nil
}
