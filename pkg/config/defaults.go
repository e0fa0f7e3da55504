package config

// DefaultConfig returns the configuration used when no file is given:
// comma-delimited, double-quoted, one header line, incorrect lines
// skipped.
func DefaultConfig() *Config {
	return &Config{
		Delimiter:          ",",
		Quote:              `"`,
		HeaderLines:        1,
		SkipIncorrectLines: true,
	}
}
