package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/pebbles/internal/client"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/lox/pebbles/internal/protocol"
)

// StateCmd prints the host's current snapshot
type StateCmd struct {
	Config string `short:"c" default:"pebbles-client.hcl" help:"Path to HCL configuration file"`
	Server string `short:"s" help:"Host URL (overrides config)"`
	JSON   bool   `help:"Print the snapshot as JSON"`
}

func (c *StateCmd) Run() error {
	cfg, err := loadClientConfig(c.Config, c.Server)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout())
	defer cancel()

	s, err := client.FetchState(ctx, cfg.Server.URL)
	if errors.Is(err, pebbles.ErrNoActiveGame) {
		fmt.Println("No active game")
		return nil
	}
	if err != nil {
		return err
	}
	return printState(os.Stdout, s, c.JSON)
}

func printState(w io.Writer, s pebbles.GameState, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(protocol.NewState("", s))
	}

	winner := "none"
	if s.Winner != nil {
		winner = s.Winner.String()
	}
	_, err := fmt.Fprintf(w, "Pebbles:      %d of %d remaining\nMax per turn: %d\nDifficulty:   %s\nFirst player: %s\nWinner:       %s\n",
		s.PebblesRemaining, s.PebblesCount, s.MaxPebblesPerTurn, s.Difficulty, s.FirstPlayer, winner)
	return err
}
