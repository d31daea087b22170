package msgid

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lox/pebbles/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id, err := New()
	require.NoError(t, err)
	assert.Len(t, id, Length)
	assert.NoError(t, Validate(id))

	u, err := Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), u.Version())
	assert.Equal(t, uuid.RFC4122, u.Variant())
}

func TestNewUniqueAndSorted(t *testing.T) {
	g := NewGenerator(randutil.Reader(randutil.New(9)))

	prev := ""
	seen := make(map[string]bool)
	for range 200 {
		id, err := g.New()
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		require.Greater(t, id, prev, "ids must sort by creation")
		prev = id
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for _, u := range []uuid.UUID{
		uuid.Nil,
		uuid.Max,
		uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057"),
	} {
		id := Encode(u)
		require.NoError(t, Validate(id), u.String())
		got, err := Parse(id)
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}

	assert.Equal(t, strings.Repeat("0", Length), Encode(uuid.Nil))
	assert.Equal(t, "7"+strings.Repeat("z", Length-1), Encode(uuid.Max))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid ID", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "invalid character", id: "01h5n0et5q6mt3v7ms1234abci", wantErr: true},
		{name: "uppercase not allowed", id: "01H5N0ET5Q6MT3V7MS1234ABCD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			assert.Equal(t, tt.wantErr, err != nil, "Validate(%q) = %v", tt.id, err)
		})
	}
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, alphabet, 32)
	seen := make(map[rune]bool)
	for _, c := range alphabet {
		assert.False(t, seen[c], "duplicate character %c", c)
		seen[c] = true
	}
	for _, c := range "ilou" {
		assert.NotContains(t, alphabet, string(c))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("no entropy") }

func TestGeneratorEntropyFailure(t *testing.T) {
	_, err := NewGenerator(failingReader{}).New()
	assert.ErrorContains(t, err, "no entropy")
}
