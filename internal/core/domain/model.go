package domain

import "time"

// Verdict is a qualitative similarity band. Higher values mean more similar.
type Verdict int

const (
	LowSimilarity Verdict = iota
	LightlySimilar
	ModeratelySimilar
	HighlySimilar
)

// String returns the short machine-friendly name of the verdict.
func (v Verdict) String() string {
	switch v {
	case HighlySimilar:
		return "highly_similar"
	case ModeratelySimilar:
		return "moderately_similar"
	case LightlySimilar:
		return "lightly_similar"
	default:
		return "low_similarity"
	}
}

// Description returns the human-readable verdict used in reports.
func (v Verdict) Description() string {
	switch v {
	case HighlySimilar:
		return "highly similar / possible plagiarism"
	case ModeratelySimilar:
		return "moderately similar / warrants review"
	case LightlySimilar:
		return "lightly similar / possible paraphrase"
	default:
		return "low similarity / likely original"
	}
}

// MarshalText lets verdicts appear by name in JSON output.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Result holds the outcome of a SimHash comparison.
type Result struct {
	Name            string
	DifferenceScore int
	Similarity      float64
	Verdict         Verdict
	FingerprintA    uint64
	FingerprintB    uint64
	TokensA         int
	TokensB         int
	Details         map[string]interface{}
}

// Report is a single comparison run as handed to a reporter.
type Report struct {
	RunID      string
	SourcePath string
	TargetPath string
	Started    time.Time
	Finished   time.Time
	Result     Result
}

// Duration is the wall time spent between Started and Finished.
func (r Report) Duration() time.Duration {
	return r.Finished.Sub(r.Started)
}
