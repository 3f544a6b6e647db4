// Package simhashsimilarity estimates how similar two documents are from
// their 64-bit SimHash fingerprints.
//
// Texts are split into lowercase runs of CJK ideographs and ASCII letters
// and digits. Each distinct token votes on the 64 fingerprint bits with its
// occurrence count, and two fingerprints are compared by Hamming distance:
//
//	similarity = 1 - popcount(a XOR b) / 64
//
// The similarity is then bucketed into one of four verdicts. For options
// such as custom thresholds or file loading, see package pkg/simhash.
package simhashsimilarity

import (
	"sync"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
)

// Result is the outcome of a comparison.
type Result = domain.Result

var defaultCalculator = sync.OnceValue(func() *simhash.Calculator {
	calc, err := simhash.NewCalculator(simhash.DefaultConfig(), logger.NewNopLogger())
	if err != nil {
		panic(err)
	}
	return calc
})

// Compare scores textA against textB with the default configuration.
func Compare(textA, textB string) Result {
	return defaultCalculator().Compare(textA, textB)
}

// Fingerprint returns the 64-bit SimHash of text with the default configuration.
func Fingerprint(text string) uint64 {
	return defaultCalculator().Fingerprint(text)
}
