package interpreter

import (
	"fmt"
	"log/slog"
)

type Config struct {
	// Strict makes assignment to an undeclared name an error instead of
	// creating a function-level binding.
	Strict bool `yaml:"strict"`

	// MaxIterations bounds the steps of a single loop. Zero means unbounded.
	MaxIterations int `yaml:"max_iterations"`

	// MaxCallDepth bounds nested function calls. Zero means unbounded.
	MaxCallDepth int `yaml:"max_call_depth"`
}

func DefaultConfig() Config {
	return Config{
		MaxCallDepth: 1024,
	}
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}

	if c.MaxCallDepth < 0 {
		return fmt.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth)
	}

	if c.MaxCallDepth == 0 {
		logger.Warn("call depth is unbounded; deep recursion will exhaust the Go stack")
	}

	return nil
}
