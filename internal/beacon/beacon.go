// Package beacon provides the random values the host hands to the game.
//
// A Beacon answers each request with a keyed BLAKE2b-256 digest of the salt
// (the id of the triggering message). The value cannot be computed in advance
// without the key, and once the key is revealed anyone holding the published
// commitment can check every draw with Verify.
package beacon

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lox/pebbles/internal/randutil"
	"golang.org/x/crypto/blake2b"
)

// KeySize is the length of keys produced by GenerateKey.
const KeySize = 32

// ErrInvalidKey is returned for empty or oversized keys.
var ErrInvalidKey = errors.New("invalid beacon key")

// Beacon is a keyed random source. It is safe for concurrent use.
type Beacon struct {
	key []byte
}

// New returns a beacon for key, which must be 1..64 bytes.
func New(key []byte) (*Beacon, error) {
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}
	return &Beacon{key: append([]byte(nil), key...)}, nil
}

// GenerateKey returns a fresh random key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate beacon key: %w", err)
	}
	return key, nil
}

// KeyFromHex decodes a hex-encoded key.
func KeyFromHex(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(key) == 0 || len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(key))
	}
	return key, nil
}

// Proof returns the full digest for salt. Its first four bytes, read little
// endian, are the value returned by Random.
func (b *Beacon) Proof(salt []byte) ([]byte, error) {
	h, err := blake2b.New256(b.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	h.Write(salt)
	return h.Sum(nil), nil
}

// Random returns the beacon value for salt.
func (b *Beacon) Random(salt []byte) (uint32, error) {
	proof, err := b.Proof(salt)
	if err != nil {
		return 0, err
	}
	return Value(proof), nil
}

// Commitment is the unkeyed digest of the key, published before any draw.
func (b *Beacon) Commitment() []byte {
	sum := blake2b.Sum256(b.key)
	return sum[:]
}

// Value extracts the 32-bit draw from a proof.
func Value(proof []byte) uint32 {
	return binary.LittleEndian.Uint32(proof[:4])
}

// Verify checks a revealed key against its commitment and the proof it
// produced for salt.
func Verify(key, commitment, salt, proof []byte) bool {
	sum := blake2b.Sum256(key)
	if subtle.ConstantTimeCompare(sum[:], commitment) != 1 {
		return false
	}
	b, err := New(key)
	if err != nil {
		return false
	}
	want, err := b.Proof(salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, proof) == 1
}

// Seeded is a reproducible random source for local games and tests. Each salt
// gets its own stream derived from the seed.
type Seeded struct {
	seed int64
}

// NewSeeded returns a Seeded source.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{seed: seed}
}

func (s *Seeded) Random(salt []byte) (uint32, error) {
	return randutil.Derive(s.seed, salt).Uint32(), nil
}
