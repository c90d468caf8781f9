package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"hansard/internal/config"
	"hansard/internal/legislature"
	"hansard/internal/logging"
	"hansard/internal/roster"
	"hansard/internal/runstore"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the process logger from config. Log output goes to stderr so
// CSV written to stdout stays clean.
func (c *commandContext) logger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.log, c.loggerErr = logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: os.Stderr,
		})
	})
	return c.log, c.loggerErr
}

// sessions loads the legislature date ranges, preferring a configured dataset
// over the built-in one.
func (c *commandContext) sessions() (*legislature.Service, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Paths.LegislaturesPath != "" {
		return legislature.LoadFile(cfg.Paths.LegislaturesPath)
	}
	return legislature.Default()
}

// rosterMembers loads the roster CSV, letting a command-level flag override
// the configured path.
func (c *commandContext) rosterMembers(flagPath string) ([]roster.Member, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(flagPath)
	if path == "" {
		path = cfg.Paths.RosterPath
	}
	if path == "" {
		return nil, fmt.Errorf("no roster configured: set paths.roster_path or pass --roster")
	}
	return roster.LoadCSV(path)
}

func (c *commandContext) openStore() (*runstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return runstore.Open(cfg.Paths.StorePath)
}
