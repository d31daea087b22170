// Package msgid mints the identifiers the host assigns to every inbound message.
//
// An id is a UUIDv7 rendered as 26 characters of Crockford base32, so ids sort
// by creation time and are safe to log and to use as a random-beacon salt.
package msgid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded id.
const Length = 26

// Generator mints ids from a source of random bytes.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a generator reading entropy from r, or crypto/rand when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// New mints an id with crypto/rand entropy.
func New() (string, error) {
	return NewGenerator(nil).New()
}

// New mints an id.
func (g *Generator) New() (string, error) {
	u, err := uuid.NewV7FromReader(g.rand)
	if err != nil {
		return "", fmt.Errorf("generate message id: %w", err)
	}
	return Encode(u), nil
}

// Encode renders u as 26 base32 characters. The leading character carries only
// the top three bits, so it is always 0-7.
func Encode(u uuid.UUID) string {
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])

	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Parse decodes an id produced by Encode.
func Parse(id string) (uuid.UUID, error) {
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}
	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}

	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u, nil
}

// Validate checks that id is 26 characters of the base32 alphabet and fits in 128 bits.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("message id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("message id first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
