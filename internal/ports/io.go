package ports

import (
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

// DocumentLoader returns the decoded text of a document.
type DocumentLoader interface {
	Load(path string) (string, error)
}

// Reporter publishes a finished comparison.
type Reporter interface {
	Report(report domain.Report) error
}
