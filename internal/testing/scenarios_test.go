package testing

import (
	"testing"

	"github.com/lox/pebbles/internal/pebbles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerPtr(p pebbles.Player) *pebbles.Player { return &p }

func TestGameScenarios(t *testing.T) {
	scenarios := []TestScenario{
		{
			Name:              "user takes three, program answers with one",
			Config:            pebbles.Config{PebblesCount: 15, MaxPebblesPerTurn: 3},
			First:             pebbles.User,
			Commands:          []string{"3"},
			ExpectedEvents:    [][]pebbles.Event{{pebbles.CounterTurn(1)}},
			ExpectedRemaining: 11,
		},
		{
			Name:              "single pebble goes to the user and ends the game",
			Config:            pebbles.Config{PebblesCount: 1, MaxPebblesPerTurn: 1},
			First:             pebbles.User,
			Commands:          []string{"take 1"},
			ExpectedEvents:    [][]pebbles.Event{{pebbles.Won(pebbles.User)}},
			ExpectedRemaining: 0,
			ExpectedWinner:    playerPtr(pebbles.User),
		},
		{
			Name:              "program opens and wins the race to zero",
			Config:            pebbles.Config{PebblesCount: 3, MaxPebblesPerTurn: 1, Difficulty: pebbles.Hard},
			First:             pebbles.Program,
			Commands:          []string{"1"},
			ExpectedEvents:    [][]pebbles.Event{{pebbles.CounterTurn(1), pebbles.Won(pebbles.Program)}},
			ExpectedRemaining: 0,
			ExpectedWinner:    playerPtr(pebbles.Program),
		},
		{
			Name:              "giving up hands the game to the program",
			Config:            pebbles.Config{PebblesCount: 10, MaxPebblesPerTurn: 2},
			First:             pebbles.User,
			Commands:          []string{"2", "giveup"},
			ExpectedEvents:    [][]pebbles.Event{{pebbles.CounterTurn(1)}, {pebbles.Won(pebbles.Program)}},
			ExpectedRemaining: 7,
			ExpectedWinner:    playerPtr(pebbles.Program),
		},
		{
			Name:              "restart after a finished game",
			Config:            pebbles.Config{PebblesCount: 2, MaxPebblesPerTurn: 2},
			First:             pebbles.User,
			Commands:          []string{"2", "restart 8 3 hard", "state"},
			ExpectedEvents:    [][]pebbles.Event{{pebbles.Won(pebbles.User)}, {}},
			ExpectedRemaining: 8,
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestRejectedMovesLeaveGameUntouched(t *testing.T) {
	srv := StartTestServer(t, ServerOptions{Random: FirstPlayer(pebbles.User)})
	c := ConnectTestClient(t, srv.URL)

	_, err := c.Execute("3")
	assert.ErrorIs(t, err, pebbles.ErrNotInitialized)
	assert.Nil(t, c.State())

	_, err = c.Execute("new 15 3")
	require.NoError(t, err)

	for _, move := range []string{"5", "0", "take 4"} {
		_, err = c.Execute(move)
		assert.ErrorIs(t, err, pebbles.ErrInvalidMove, move)
		assert.Equal(t, uint32(15), c.State().PebblesRemaining)
	}

	_, err = c.Execute("new 10 2")
	assert.ErrorIs(t, err, pebbles.ErrAlreadyInitialized)
	assert.Equal(t, uint32(15), c.State().PebblesCount)
}

func TestGameOverRejectsFurtherTurns(t *testing.T) {
	srv := StartTestServer(t, ServerOptions{Random: FirstPlayer(pebbles.User)})
	c := ConnectTestClient(t, srv.URL)

	c.MustExecute("new 1 1")
	res := c.MustExecute("1")
	require.Equal(t, []pebbles.Event{pebbles.Won(pebbles.User)}, res.Events)

	_, err := c.Execute("1")
	assert.ErrorIs(t, err, pebbles.ErrGameOver)
	assert.Equal(t, pebbles.User, *c.State().Winner, "the recorded winner is never overwritten")

	res = c.MustExecute("giveup")
	assert.Equal(t, []pebbles.Event{pebbles.Won(pebbles.Program)}, res.Events)
}

func TestTwoClientsShareTheSlot(t *testing.T) {
	srv := StartTestServer(t, ServerOptions{Random: FirstPlayer(pebbles.User)})
	a := ConnectTestClient(t, srv.URL)
	b := ConnectTestClient(t, srv.URL)

	a.MustExecute("new 20 4")
	b.MustExecute("4")
	a.MustExecute("state")
	assert.Equal(t, uint32(15), a.State().PebblesRemaining)
}
