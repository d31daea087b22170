package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/pebbles/internal/client"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// localGame plays against an in-process engine
type localGame struct {
	engine *pebbles.Engine
	n      int
}

func newLocalGame(first uint32) *localGame {
	return &localGame{engine: pebbles.NewEngine(pebbles.RandomFunc(func([]byte) (uint32, error) { return first, nil }))}
}

func (g *localGame) id() pebbles.MessageID {
	g.n++
	return pebbles.MessageID(fmt.Sprintf("m-%d", g.n))
}

func (g *localGame) Init(_ context.Context, cfg pebbles.Config) (client.Result, error) {
	id := g.id()
	events, err := g.engine.Init(id, cfg)
	return client.Result{MessageID: string(id), Events: events}, err
}

func (g *localGame) Do(_ context.Context, a pebbles.Action) (client.Result, error) {
	id := g.id()
	events, err := g.engine.Handle(id, a)
	return client.Result{MessageID: string(id), Events: events}, err
}

func (g *localGame) State(context.Context) (pebbles.GameState, error) {
	return g.engine.State()
}

func newTestModel(game Game) *Model {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	return NewModel(game, logger, time.Second)
}

// enter runs a line of input through the model the way Bubble Tea would,
// including the refresh that follows every reply.
func enter(t *testing.T, m *Model, input string) {
	t.Helper()
	cmd := m.submit(input)
	if cmd == nil {
		return
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); ok {
		return
	}
	_, _ = m.Update(msg)
	if _, ok := msg.(resultMsg); ok {
		_, _ = m.Update(m.refresh()())
	}
}

func TestModelPlaysAGame(t *testing.T) {
	m := newTestModel(newLocalGame(0))

	_, _ = m.Update(m.refresh()())
	assert.Nil(t, m.State())
	assert.Contains(t, strings.Join(m.Log(), "\n"), "No game yet")

	enter(t, m, "new 5 2")
	require.NotNil(t, m.State())
	assert.Equal(t, uint32(5), m.State().PebblesRemaining)
	assert.Equal(t, pebbles.User, m.State().FirstPlayer)

	enter(t, m, "2")
	assert.Equal(t, uint32(2), m.State().PebblesRemaining)
	logText := strings.Join(m.Log(), "\n")
	assert.Contains(t, logText, "You take 2")
	assert.Contains(t, logText, "Program takes 1")

	enter(t, m, "take 2")
	require.True(t, m.State().IsOver())
	assert.Equal(t, pebbles.User, *m.State().Winner)
	assert.Contains(t, strings.Join(m.Log(), "\n"), "You win!")

	enter(t, m, "1")
	assert.Contains(t, strings.Join(m.Log(), "\n"), "Rejected: ")
}

func TestModelRestartReusesSettings(t *testing.T) {
	m := newTestModel(newLocalGame(1))

	enter(t, m, "new 6 3 hard")
	require.NotNil(t, m.State())
	assert.Equal(t, uint32(5), m.State().PebblesRemaining, "program opened with one pebble")

	enter(t, m, "giveup")
	assert.Equal(t, pebbles.Program, *m.State().Winner)
	assert.Contains(t, strings.Join(m.Log(), "\n"), "Program wins")

	enter(t, m, "restart")
	require.NotNil(t, m.State())
	assert.Nil(t, m.State().Winner)
	assert.Equal(t, uint32(6), m.State().PebblesCount)
	assert.Equal(t, pebbles.Hard, m.State().Difficulty)
}

func TestModelRejectsBadInput(t *testing.T) {
	m := newTestModel(newLocalGame(0))

	assert.Nil(t, m.submit("raise 10"))
	assert.Nil(t, m.submit("restart"))
	assert.Nil(t, m.submit(""))
	assert.Len(t, m.Log(), 3)

	assert.Nil(t, m.submit("help"))
	assert.Len(t, m.Log(), 3+len(helpLines))
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(newLocalGame(0))
	cmd := m.submit("quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelBusy(t *testing.T) {
	m := newTestModel(newLocalGame(0))
	require.NotNil(t, m.submit("new 5 1"))
	assert.Nil(t, m.submit("1"), "one request at a time")
	assert.Contains(t, m.Log()[len(m.Log())-1], "Still waiting")
}

func TestModelView(t *testing.T) {
	m := newTestModel(newLocalGame(0))
	assert.Equal(t, "Loading...", m.View())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "No active game")

	enter(t, m, "new 75 4")
	view := m.View()
	assert.Contains(t, view, "Pebbles: 75/75")
	assert.Contains(t, view, "+15 more")
	assert.Contains(t, view, "Your turn: take 1 to 4")
}

func TestParseCommand(t *testing.T) {
	current := &pebbles.GameState{PebblesCount: 9, MaxPebblesPerTurn: 2, Difficulty: pebbles.Hard}

	tests := []struct {
		input string
		want  Command
	}{
		{"3", Command{Kind: CmdAction, Action: pebbles.Turn{Count: 3}}},
		{"take 1", Command{Kind: CmdAction, Action: pebbles.Turn{Count: 1}}},
		{"T 0", Command{Kind: CmdAction, Action: pebbles.Turn{Count: 0}}},
		{"new 15 3", Command{Kind: CmdNew, Config: pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3}}},
		{"init 7 2 hard", Command{Kind: CmdNew, Config: pebbles.Config{PebblesCount: 7, MaxPebblesPerTurn: 2, Difficulty: pebbles.Hard}}},
		{"restart", Command{Kind: CmdAction, Action: pebbles.Restart{Difficulty: pebbles.Hard, PebblesCount: 9, MaxPebblesPerTurn: 2}}},
		{"restart 0 5 easy", Command{Kind: CmdAction, Action: pebbles.Restart{PebblesCount: 0, MaxPebblesPerTurn: 5}}},
		{"give-up", Command{Kind: CmdAction, Action: pebbles.GiveUp{}}},
		{"state", Command{Kind: CmdState}},
		{"?", Command{Kind: CmdHelp}},
		{"exit", Command{Kind: CmdQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCommand(tt.input, current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrUsage},
		{"fold", ErrUnknownCommand},
		{"take", ErrUsage},
		{"take -1", ErrUsage},
		{"new 15", ErrUsage},
		{"new 15 3 brutal", ErrUsage},
		{"restart", ErrUsage},
		{"99999999999", ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCommand(tt.input, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
