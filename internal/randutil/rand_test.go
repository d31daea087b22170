package randutil

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestDeriveSalted(t *testing.T) {
	first := Derive(7, []byte("message-a")).Uint32()
	assert.Equal(t, first, Derive(7, []byte("message-a")).Uint32())

	seen := map[uint64]string{}
	for _, salt := range []string{"", "a", "b", "message-a", "message-b", "0123456789abcdef"} {
		v := Derive(7, []byte(salt)).Uint64()
		prev, dup := seen[v]
		require.False(t, dup, "salt %q collides with %q", salt, prev)
		seen[v] = salt
	}
}

func TestReader(t *testing.T) {
	buf := make([]byte, 13)
	n, err := io.ReadFull(Reader(New(3)), buf)
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	again := make([]byte, 13)
	_, err = io.ReadFull(Reader(New(3)), again)
	require.NoError(t, err)
	assert.Equal(t, buf, again)
}
