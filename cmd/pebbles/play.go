package main

import (
	"context"
	"fmt"

	"github.com/lox/pebbles/cmd/pebbles/shared"
	"github.com/lox/pebbles/internal/client"
	"github.com/lox/pebbles/internal/tui"
)

// PlayCmd opens the terminal UI against a running host
type PlayCmd struct {
	Config   string `short:"c" default:"pebbles-client.hcl" help:"Path to HCL configuration file"`
	Server   string `short:"s" help:"Host URL (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadClientConfig(c.Config, c.Server)
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file
	logger, closer, err := shared.SetupFileLogger(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("Starting pebbles client", "server", cfg.Server.URL, "config", c.Config)

	ctx := shared.SetupSignalHandler(logger)
	conn := client.New(cfg.Server.URL, logger)
	dialCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := conn.Connect(dialCtx); err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	return tui.Run(ctx, conn, logger, cfg.RequestTimeout())
}

func loadClientConfig(path, serverURL string) (*client.Config, error) {
	cfg, err := client.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	return cfg, nil
}
