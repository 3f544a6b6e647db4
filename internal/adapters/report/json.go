package report

import (
	"encoding/json"
	"fmt"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// Record is the JSON shape of a report.
type Record struct {
	RunID           string         `json:"run_id"`
	Source          string         `json:"source"`
	Target          string         `json:"target"`
	Started         string         `json:"started"`
	Finished        string         `json:"finished"`
	DurationMillis  int64          `json:"duration_ms"`
	DifferenceScore int            `json:"difference_score"`
	Similarity      float64        `json:"similarity"`
	Verdict         domain.Verdict `json:"verdict"`
	Description     string         `json:"description"`
	FingerprintA    string         `json:"fingerprint_a"`
	FingerprintB    string         `json:"fingerprint_b"`
}

// NewRecord flattens r into its JSON shape.
func NewRecord(r domain.Report) Record {
	return Record{
		RunID:           r.RunID,
		Source:          r.SourcePath,
		Target:          r.TargetPath,
		Started:         r.Started.Format(TimeLayout),
		Finished:        r.Finished.Format(TimeLayout),
		DurationMillis:  r.Duration().Milliseconds(),
		DifferenceScore: r.Result.DifferenceScore,
		Similarity:      r.Result.Similarity,
		Verdict:         r.Result.Verdict,
		Description:     r.Result.Verdict.Description(),
		FingerprintA:    fmt.Sprintf("%016x", r.Result.FingerprintA),
		FingerprintB:    fmt.Sprintf("%016x", r.Result.FingerprintB),
	}
}

// JSONReporter appends one JSON object per line to a file.
type JSONReporter struct {
	path string
}

// NewJSONReporter creates a JSON-lines reporter appending to path.
func NewJSONReporter(path string) ports.Reporter {
	return &JSONReporter{path: path}
}

// Report appends r as a single JSON line.
func (j *JSONReporter) Report(r domain.Report) (err error) {
	line, err := json.Marshal(NewRecord(r))
	if err != nil {
		return domain.NewDocumentError("encode", j.path, domain.ErrUnexpected, err)
	}

	f, _, err := openAppend(j.path)
	if err != nil {
		return err
	}
	defer func() { err = closeFile(f, j.path, err) }()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return domain.NewDocumentError("write", j.path, domain.ErrIO, err)
	}
	return nil
}
