// Package meta implements the engine orchestrator that selects an execution
// strategy per pattern.
//
// The meta-engine coordinates:
//   - Literal analysis: required substrings and exact literal sets
//   - Prefilter: cheap literal checks that reject most non-matching texts
//   - NFA (PikeVM): the full-string simulator that decides everything else
//
// Strategy selection is based on:
//   - Whether the pattern accepts every string (empty pattern)
//   - Whether the pattern is a finite set of literal strings
//   - Prefilter availability (good literals enable fast rejection)
package meta

import (
	"errors"
	"fmt"

	"github.com/matpuk/rex/syntax"
)

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls meta-engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Always run the PikeVM
//	engine, err := meta.CompileWithConfig(`\d+px`, config)
type Config struct {
	// Classes resolves escaped class letters such as \d, and unescaped '.'.
	// nil selects syntax.DefaultClasses().
	Classes syntax.ClassTable

	// EnablePrefilter enables literal-based rejection before the PikeVM runs.
	// Default: true
	EnablePrefilter bool

	// EnableLiteralMatch lets patterns that accept only a finite set of
	// literal strings (e.g. "foo|bar") skip the PikeVM entirely.
	// Default: true
	EnableLiteralMatch bool

	// MaxLiterals limits the number of literals extracted for prefiltering.
	// Default: 64
	MaxLiterals int

	// MinLiteralLen is the minimum length for prefilter literals.
	// Shorter literals may have too many false positives.
	// Default: 1
	MinLiteralLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Classes:            nil,
		EnablePrefilter:    true,
		EnableLiteralMatch: true,
		MaxLiterals:        64,
		MinLiteralLen:      1,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges (checked only when literal analysis is enabled):
//   - MinLiteralLen: 1 to 64
//   - MaxLiterals: 1 to 1,000
//
// Every entry in Classes must have a non-nil predicate.
func (c Config) Validate() error {
	if c.EnablePrefilter || c.EnableLiteralMatch {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
	}

	for _, letter := range c.Classes.Letters() {
		if c.Classes[letter] == nil {
			return &ConfigError{
				Field:   "Classes",
				Message: fmt.Sprintf("class %q has no predicate", letter),
			}
		}
	}

	return nil
}

// classes returns the effective class table
func (c Config) classes() syntax.ClassTable {
	if c.Classes == nil {
		return syntax.DefaultClasses()
	}
	return c.Classes
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
