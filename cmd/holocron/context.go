package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"holocron/internal/charcache"
	"holocron/internal/config"
	"holocron/internal/logging"
	"holocron/internal/lookup"
	"holocron/internal/swapi"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	cacheFileFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, cacheFileFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		cacheFileFlag: cacheFileFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			if err := cfg.SetLogLevel(level); err != nil {
				c.configErr = err
				return
			}
		}
		if cacheFile := flagValue(c.cacheFileFlag); cacheFile != "" {
			if err := cfg.SetCachePath(cacheFile); err != nil {
				c.configErr = err
				return
			}
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// lookupService wires the cache store, API client, and logger for one invocation.
func (c *commandContext) lookupService(cmd *cobra.Command) (*lookup.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}

	store, err := charcache.Open(cfg.Cache.Path, cfg.Cache.Backend, logger)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	client, err := swapi.New(cfg.API.BaseURL, swapi.WithTimeout(cfg.APITimeout()))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	out := cmd.OutOrStdout()
	return lookup.NewService(store, client, out,
		lookup.WithLogger(logger),
		lookup.WithColor(shouldColorize(out)),
	), nil
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
