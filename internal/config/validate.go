package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
)

var (
	lineNumberings = []string{"compact", "source"}
	outputFormats  = []string{"table", "markdown", "csv", "html", "json"}
	outputStyles   = []string{"rounded", "light", "ascii"}
	colorModes     = []string{"auto", "always", "never"}
	logLevels      = []string{"debug", "info", "warn", "warning", "error"}
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateInput() error {
	return oneOf("input.line_numbering", c.Input.LineNumbering, lineNumberings)
}

func (c *Config) validateOutput() error {
	if err := oneOf("output.format", c.Output.Format, outputFormats); err != nil {
		return err
	}
	if err := oneOf("output.style", c.Output.Style, outputStyles); err != nil {
		return err
	}
	return oneOf("output.color", c.Output.Color, colorModes)
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind must be host:port: %w", err)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("server.max_body_bytes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	return oneOf("logging.level", c.Logging.Level, logLevels)
}

func oneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s must be one of %v (got %q)", key, allowed, value)
}
