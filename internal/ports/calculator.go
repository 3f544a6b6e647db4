package ports

import (
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

// SimilarityCalculator defines the interface for comparing two texts.
type SimilarityCalculator interface {
	Compare(textA, textB string) domain.Result
}

// Fingerprinter reduces a text to its 64-bit SimHash.
type Fingerprinter interface {
	Fingerprint(text string) uint64
}
