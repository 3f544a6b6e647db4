// Package hasher implements the seeded rolling hash applied to every token.
package hasher

import "unicode/utf16"

// DefaultSeed is the initial state of the rolling hash.
const DefaultSeed uint64 = 5381

// Hasher is a DJB2-style rolling hash over the UTF-16 code units of a token.
// Arithmetic wraps modulo 2^64.
type Hasher struct {
	seed uint64
}

// New creates a hasher starting from seed.
func New(seed uint64) Hasher {
	return Hasher{seed: seed}
}

// Default returns a hasher seeded with DefaultSeed.
func Default() Hasher {
	return Hasher{seed: DefaultSeed}
}

// Seed returns the configured seed.
func (h Hasher) Seed() uint64 {
	return h.seed
}

// Hash returns the 64-bit hash of token. The empty token hashes to 0.
func (h Hasher) Hash(token string) uint64 {
	if token == "" {
		return 0
	}
	v := h.seed
	for _, c := range utf16.Encode([]rune(token)) {
		v = (v*33 + v) + uint64(c)
	}
	return v
}
