package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRules(); err != nil {
		return err
	}
	if err := c.validateWordlist(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRules() error {
	if c.Rules.MinLetters < 2 {
		return fmt.Errorf("rules.min_letters must be at least 2, got %d", c.Rules.MinLetters)
	}
	if c.Rules.MinGroupSize < 1 {
		return fmt.Errorf("rules.min_group_size must be at least 1, got %d", c.Rules.MinGroupSize)
	}
	return nil
}

func (c *Config) validateWordlist() error {
	if c.Wordlist.Path == "" && len(c.Wordlist.SystemPaths) == 0 {
		return errors.New("wordlist.system_paths must not be empty when wordlist.path is unset")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
