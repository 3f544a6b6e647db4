// Package fingerprint aggregates weighted token hashes into a SimHash.
//
// Every distinct token votes on each of the 64 bit positions with its
// occurrence count: +w where its hash bit is set, -w where it is clear.
// A position ends up set only if its vote total is strictly positive, so
// ties resolve to 0. Position 0 is the most significant bit.
package fingerprint

import (
	"github.com/baditaflorin/go_simhash_similarity/internal/core/hasher"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/tokenizer"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// BitLength is the width of a fingerprint.
const BitLength = 64

// Builder computes fingerprints from token sequences.
type Builder struct {
	hasher ports.TokenHasher
}

// NewBuilder creates a builder that hashes tokens with h.
func NewBuilder(h ports.TokenHasher) *Builder {
	if h == nil {
		h = hasher.Default()
	}
	return &Builder{hasher: h}
}

// Build returns the SimHash of tokens, or 0 when there are none.
func (b *Builder) Build(tokens []string) uint64 {
	if len(tokens) == 0 {
		return 0
	}
	return b.BuildWeighted(tokenizer.Weights(tokens))
}

// BuildWeighted returns the SimHash of an already counted token bag.
func (b *Builder) BuildWeighted(weights map[string]int) uint64 {
	if len(weights) == 0 {
		return 0
	}

	var votes [BitLength]int64
	for token, weight := range weights {
		h := b.hasher.Hash(token)
		w := int64(weight)
		for p := 0; p < BitLength; p++ {
			if (h>>(BitLength-1-p))&1 == 1 {
				votes[p] += w
			} else {
				votes[p] -= w
			}
		}
	}

	var fp uint64
	for p := 0; p < BitLength; p++ {
		if votes[p] > 0 {
			fp |= 1 << (BitLength - 1 - p)
		}
	}
	return fp
}
