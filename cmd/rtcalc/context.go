package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"rtcalc/internal/config"
	"rtcalc/internal/logging"
	"rtcalc/internal/pacenote"
	"rtcalc/internal/pipeline"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newRunner builds the logger and pipeline runner for one command invocation.
// numbering overrides the configured line numbering when non-empty.
func (c *commandContext) newRunner(numbering string, observer pipeline.Observer) (*pipeline.Runner, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	if strings.TrimSpace(numbering) == "" {
		numbering = cfg.Input.LineNumbering
	}
	mode, err := pacenote.ParseNumbering(numbering)
	if err != nil {
		return nil, nil, err
	}
	runner := pipeline.New(pipeline.Options{
		Numbering: mode,
		Logger:    logger,
		Observer:  observer,
	})
	return runner, logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// firstNonEmpty returns the flag value when set, otherwise the configured one.
func firstNonEmpty(flagValue, configured string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	return configured
}
