package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	c.normalizeInput()
	c.normalizeOutput()
	c.normalizeServer()
	return c.normalizeLogging()
}

// applyEnv lets RTCALC_* variables override file values.
func (c *Config) applyEnv() {
	if value, ok := lookupEnv("RTCALC_LOG_LEVEL"); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv("RTCALC_LOG_FORMAT"); ok {
		c.Logging.Format = value
	}
	if value, ok := lookupEnv("RTCALC_API_BIND"); ok {
		c.Server.Bind = value
	}
	if value, ok := lookupEnv("RTCALC_API_TOKEN"); ok {
		c.Server.APIToken = value
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (c *Config) normalizeInput() {
	c.Input.LineNumbering = strings.ToLower(strings.TrimSpace(c.Input.LineNumbering))
	if c.Input.LineNumbering == "" {
		c.Input.LineNumbering = defaultLineNumbering
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Style = strings.ToLower(strings.TrimSpace(c.Output.Style))
	if c.Output.Style == "" {
		c.Output.Style = defaultOutputStyle
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultOutputColor
	}
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	c.Server.APIToken = strings.TrimSpace(c.Server.APIToken)
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
