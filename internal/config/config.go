// Package config holds the YAML configuration of the ezvec command-line tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ezvec/matrix"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the configuration file.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Numeric NumericConfig `yaml:"numeric"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, stack traces on warn
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, yaml
}

// NumericConfig maps onto matrix options.
type NumericConfig struct {
	ValidateNaNInf bool `yaml:"validate_nan_inf"`
	SingularCheck  bool `yaml:"singular_check"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Numeric: NumericConfig{
			ValidateNaNInf: matrix.DefaultValidateNaNInf,
			SingularCheck:  matrix.DefaultSingularCheck,
		},
	}
}

// Load loads configuration from a YAML file layered over Default.
// A missing file yields the defaults; an empty path does too.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("logging.level %q (valid: %v): %w", c.Logging.Level, ValidLevels, ErrInvalid)
	}

	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format %q (valid: %s, %s): %w", c.Output.Format, FormatText, FormatYAML, ErrInvalid)
	}

	return nil
}

// MatrixOptions translates the numeric section into matrix options.
func (c *Config) MatrixOptions() []matrix.Option {
	opts := make([]matrix.Option, 0, 2)
	if c.Numeric.ValidateNaNInf {
		opts = append(opts, matrix.WithValidateNaNInf())
	} else {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}
	if c.Numeric.SingularCheck {
		opts = append(opts, matrix.WithSingularCheck())
	} else {
		opts = append(opts, matrix.WithoutSingularCheck())
	}

	return opts
}
