package scorer

import (
	"errors"
	"math/bits"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/fingerprint"
)

// Thresholds are the inclusive lower bounds of the verdict bands.
type Thresholds struct {
	High     float64 `yaml:"high" json:"high"`
	Moderate float64 `yaml:"moderate" json:"moderate"`
	Light    float64 `yaml:"light" json:"light"`
}

// DefaultThresholds returns the standard 0.80 / 0.50 / 0.30 bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:     0.8,
		Moderate: 0.5,
		Light:    0.3,
	}
}

// Validate checks if the thresholds are valid.
func (t Thresholds) Validate() error {
	if t.High < 0 || t.High > 1 || t.Moderate < 0 || t.Moderate > 1 || t.Light < 0 || t.Light > 1 {
		return errors.New("thresholds must be between 0 and 1")
	}
	if !(t.High > t.Moderate && t.Moderate > t.Light) {
		return errors.New("thresholds must be strictly descending: high > moderate > light")
	}
	return nil
}

// Classify maps a similarity ratio to its verdict band.
func (t Thresholds) Classify(similarity float64) domain.Verdict {
	switch {
	case similarity >= t.High:
		return domain.HighlySimilar
	case similarity >= t.Moderate:
		return domain.ModeratelySimilar
	case similarity >= t.Light:
		return domain.LightlySimilar
	default:
		return domain.LowSimilarity
	}
}

// Scorer compares fingerprints by Hamming distance.
type Scorer struct {
	thresholds Thresholds
}

// New creates a scorer with the given verdict thresholds.
func New(thresholds Thresholds) (*Scorer, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{thresholds: thresholds}, nil
}

// Default returns a scorer using DefaultThresholds.
func Default() *Scorer {
	return &Scorer{thresholds: DefaultThresholds()}
}

// Distance is the number of differing bits between a and b.
func Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Ratio converts a Hamming distance into a similarity in [0,1].
func Ratio(distance int) float64 {
	return 1.0 - float64(distance)/float64(fingerprint.BitLength)
}

// Score compares two fingerprints.
func (s *Scorer) Score(a, b uint64) domain.Result {
	diff := Distance(a, b)
	similarity := Ratio(diff)
	return domain.Result{
		Name:            "simhash_similarity",
		DifferenceScore: diff,
		Similarity:      similarity,
		Verdict:         s.thresholds.Classify(similarity),
		FingerprintA:    a,
		FingerprintB:    b,
	}
}
