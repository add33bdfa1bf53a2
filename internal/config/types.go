// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OutputText prints styled, human-readable output.
	OutputText OutputFormat = "text"
	// OutputJSON prints JSON.
	OutputJSON OutputFormat = "json"
	// OutputYAML prints YAML.
	OutputYAML OutputFormat = "yaml"
	// OutputTOML prints TOML.
	OutputTOML OutputFormat = "toml"

	// LogDebug logs every channel write.
	LogDebug LogLevel = "debug"
	// LogInfo logs informational messages.
	LogInfo LogLevel = "info"
	// LogWarn logs warnings and errors only.
	LogWarn LogLevel = "warn"
	// LogError logs errors only.
	LogError LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type (
	// Config holds the qutekit CLI configuration.
	Config struct {
		UI     UIConfig     `json:"ui" mapstructure:"ui"`
		Output OutputConfig `json:"output" mapstructure:"output"`
		Log    LogConfig    `json:"log" mapstructure:"log"`
	}

	// UIConfig controls terminal presentation.
	UIConfig struct {
		// Verbose shows full error chains and debug logs.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the glamour style used for issue pages.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}

	// OutputConfig controls how `qutekit context` prints.
	OutputConfig struct {
		Format OutputFormat `json:"format" mapstructure:"format"`
	}

	// LogConfig controls the stderr logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputFormat is the serialization used for structured output.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// LogLevel is the minimum level the CLI logger emits.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Output: OutputConfig{Format: OutputText},
		Log:    LogConfig{Level: LogWarn},
	}
}

// Validate checks every typed field and joins all failures.
func (c *Config) Validate() error {
	return errors.Join(
		c.UI.ColorScheme.Validate(),
		c.Output.Format.Validate(),
		c.Log.Level.Validate(),
	)
}

// Validate returns an error if the ColorScheme is not recognized.
func (s ColorScheme) Validate() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Validate returns an error if the OutputFormat is not recognized.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputText, OutputJSON, OutputYAML, OutputTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, yaml, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Validate returns an error if the LogLevel is not recognized.
func (l LogLevel) Validate() error {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return nil
	default:
		return &InvalidLogLevelError{Value: l}
	}
}

// Error implements the error interface.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns ErrInvalidLogLevel for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }
