package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIParses(t *testing.T) {
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"server", "--addr", "127.0.0.1:9999", "--seed", "7", "--auto-init"})
	require.NoError(t, err)
	assert.Equal(t, "server", ctx.Command())
	assert.Equal(t, "127.0.0.1:9999", cli.Server.Addr)
	require.NotNil(t, cli.Server.Seed)
	assert.Equal(t, int64(7), *cli.Server.Seed)
	assert.True(t, cli.Server.AutoInit)
	assert.Equal(t, "pebbles.hcl", cli.Server.Config)

	ctx, err = parser.Parse([]string{"state", "--server", "http://example.com:8080", "--json"})
	require.NoError(t, err)
	assert.Equal(t, "state", ctx.Command())
	assert.True(t, cli.State.JSON)
}

func TestPrintState(t *testing.T) {
	w := pebbles.Program
	s := pebbles.GameState{
		PebblesCount: 10, MaxPebblesPerTurn: 3, PebblesRemaining: 0,
		Difficulty: pebbles.Hard, FirstPlayer: pebbles.User, Winner: &w,
	}

	var buf bytes.Buffer
	require.NoError(t, printState(&buf, s, false))
	assert.Contains(t, buf.String(), "0 of 10 remaining")
	assert.Contains(t, buf.String(), "Winner:       program")

	buf.Reset()
	require.NoError(t, printState(&buf, s, true))
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "program", out["winner"])
	assert.Equal(t, "hard", out["difficulty"])
}
