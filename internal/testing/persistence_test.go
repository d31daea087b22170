package testing

import (
	"path/filepath"
	"testing"

	"github.com/lox/pebbles/internal/beacon"
	"github.com/lox/pebbles/internal/pebbles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSurvivesHostRestart(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "game.state")

	first := StartTestServer(t, ServerOptions{Random: FirstPlayer(pebbles.User), StateFile: stateFile})
	assert.False(t, first.Restored)
	c := ConnectTestClient(t, first.URL)
	c.MustExecute("new 12 3 hard")
	c.MustExecute("2")
	before := *c.State()
	first.Stop()

	second := StartTestServer(t, ServerOptions{Random: FirstPlayer(pebbles.Program), StateFile: stateFile})
	require.True(t, second.Restored)
	c = ConnectTestClient(t, second.URL)
	c.MustExecute("state")
	assert.Equal(t, before, *c.State())

	_, err := c.Execute("new 5 1")
	assert.ErrorIs(t, err, pebbles.ErrAlreadyInitialized)

	res := c.MustExecute("1")
	assert.Equal(t, []pebbles.Event{pebbles.CounterTurn(1)}, res.Events)
	assert.Equal(t, uint32(7), c.State().PebblesRemaining)
}

func TestFirstPlayerIsVerifiable(t *testing.T) {
	key, err := beacon.GenerateKey()
	require.NoError(t, err)
	b, err := beacon.New(key)
	require.NoError(t, err)

	srv := StartTestServer(t, ServerOptions{Random: b})
	c := ConnectTestClient(t, srv.URL)
	res := c.MustExecute("new 9 2")
	require.NotEmpty(t, res.MessageID)

	// Anyone holding the revealed key can recompute the draw for the init message.
	proof, err := b.Proof([]byte(res.MessageID))
	require.NoError(t, err)
	require.True(t, beacon.Verify(key, b.Commitment(), []byte(res.MessageID), proof))

	want := pebbles.User
	if beacon.Value(proof)%2 == 1 {
		want = pebbles.Program
	}
	assert.Equal(t, want, c.State().FirstPlayer)
}
