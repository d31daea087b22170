package randutil

import (
	"encoding/binary"
	"io"
	rand "math/rand/v2"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// All call sites derive the two 64-bit PCG seeds the same way, so a seed
// always reproduces the same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns a generator for the stream identified by seed and salt.
// Different salts under the same seed give independent sequences.
func Derive(seed int64, salt []byte) *rand.Rand {
	u := mix(uint64(seed))
	for len(salt) >= 8 {
		u = mix(u ^ binary.LittleEndian.Uint64(salt))
		salt = salt[8:]
	}
	if len(salt) > 0 {
		var tail [8]byte
		copy(tail[:], salt)
		u = mix(u ^ binary.LittleEndian.Uint64(tail[:]) ^ uint64(len(salt)))
	}
	return New(int64(u))
}

// Reader adapts r to an io.Reader producing its output as bytes.
func Reader(r *rand.Rand) io.Reader {
	return &reader{r: r}
}

type reader struct {
	r *rand.Rand
}

func (rd *reader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], rd.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
