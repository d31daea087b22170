package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/pebbles/cmd/pebbles/shared"
	"github.com/lox/pebbles/internal/beacon"
	"github.com/lox/pebbles/internal/host"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/server"
	"github.com/lox/pebbles/internal/store"
	"golang.org/x/sync/errgroup"
)

// ServerCmd runs the host
type ServerCmd struct {
	Config    string `short:"c" default:"pebbles.hcl" help:"Path to HCL configuration file"`
	Addr      string `short:"a" help:"Server address, host:port (overrides config)"`
	LogLevel  string `short:"l" help:"Log level (overrides config)"`
	StateFile string `help:"Persist the game to this file (overrides config)"`
	Seed      *int64 `help:"Deterministic first-player seed instead of the keyed beacon"`
	AutoInit  bool   `help:"Create the configured game at startup if none was restored"`
}

func (c *ServerCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if c.StateFile != "" {
		cfg.Server.StateFile = c.StateFile
	}
	if c.AutoInit {
		cfg.Game.AutoInit = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	addr := cfg.GetServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	logger, err := shared.SetupLogger(os.Stderr, cfg.Server.LogLevel)
	if err != nil {
		return err
	}

	random, err := c.randomSource(cfg, logger)
	if err != nil {
		return err
	}

	var slot store.Store = store.NewMemory()
	if cfg.Server.StateFile != "" {
		slot = store.NewFile(cfg.Server.StateFile)
	}

	rt := host.NewRuntime(pebbles.NewEngine(random), logger,
		host.WithStore(slot),
		host.WithBudget(cfg.Budget()))

	ctx := shared.SetupSignalHandler(logger)
	restored, err := rt.Restore(ctx)
	if err != nil {
		return err
	}

	logger.Info("Starting pebbles host",
		"addr", addr,
		"state_file", cfg.Server.StateFile,
		"budget", cfg.Budget(),
		"restored", restored)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return rt.Run(ctx) })

	if cfg.Game.AutoInit && !restored {
		if err := autoInit(ctx, rt, cfg, logger); err != nil {
			cancel()
			return errors.Join(err, g.Wait())
		}
	}

	srv := server.NewServer(addr, rt, logger)
	g.Go(func() error { return srv.Serve(ctx) })
	return g.Wait()
}

// randomSource picks the seeded source when requested, otherwise a beacon
// keyed from config or a fresh key.
func (c *ServerCmd) randomSource(cfg *server.Config, logger *log.Logger) (pebbles.RandomSource, error) {
	if c.Seed != nil {
		logger.Info("Using deterministic seed", "seed", *c.Seed)
		return beacon.NewSeeded(*c.Seed), nil
	}

	var key []byte
	var err error
	if cfg.Server.BeaconKey != "" {
		key, err = beacon.KeyFromHex(cfg.Server.BeaconKey)
	} else {
		key, err = beacon.GenerateKey()
	}
	if err != nil {
		return nil, err
	}
	b, err := beacon.New(key)
	if err != nil {
		return nil, err
	}
	logger.Info("Beacon ready", "commitment", hex.EncodeToString(b.Commitment()))
	return b, nil
}

func autoInit(ctx context.Context, rt *host.Runtime, cfg *server.Config, logger *log.Logger) error {
	game, err := cfg.GameConfig()
	if err != nil {
		return err
	}
	reply, err := rt.Send(ctx, host.InitRequest(game))
	if err != nil {
		return fmt.Errorf("auto init: %w", err)
	}
	logger.Info("Game created",
		"message_id", reply.MessageID,
		"pebbles", game.PebblesCount,
		"max_per_turn", game.MaxPebblesPerTurn,
		"difficulty", game.Difficulty,
		"events", len(reply.Events))
	return nil
}
