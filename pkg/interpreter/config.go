package interpreter

import (
	"fmt"
	"log/slog"
)

type Config struct {
	// MaxChain bounds how many nodes a single total may visit. Zero means no
	// bound.
	MaxChain int
}

func (c *Config) Validate(logger *slog.Logger) error {
	if c.MaxChain < 0 {
		return fmt.Errorf("max chain must not be negative, got %d", c.MaxChain)
	}

	if c.MaxChain == 0 {
		logger.Debug("chain length is unbounded")
	}

	return nil
}
