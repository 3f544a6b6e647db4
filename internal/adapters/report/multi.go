package report

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewFileReporter returns the file reporter for format.
func NewFileReporter(format, path string) (ports.Reporter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextReporter(path), nil
	case FormatJSON:
		return NewJSONReporter(path), nil
	default:
		return nil, fmt.Errorf("invalid output format: %s. Must be 'text' or 'json'", format)
	}
}

// Chain runs reporters in order and stops at the first failure, so a
// console summary listed after a file reporter is only printed once the
// file has been written.
type Chain []ports.Reporter

// Report implements ports.Reporter.
func (c Chain) Report(r domain.Report) error {
	for _, rep := range c {
		if err := rep.Report(r); err != nil {
			return err
		}
	}
	return nil
}
