// Package loader reads documents from disk and decodes them with an ordered
// list of candidate encodings. The first clean decode wins; this is a
// heuristic without a confidence score, and changing the order changes the
// text the tokenizer sees.
package loader

import (
	"errors"
	"io/fs"
	"os"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
)

type namedDecoder struct {
	name   string
	decode decoder
}

// Loader implements ports.DocumentLoader.
type Loader struct {
	decoders []namedDecoder
	logger   ports.Logger
}

// New creates a loader trying encodings in order. An empty list means DefaultEncodings.
func New(encodings []string, logger ports.Logger) (*Loader, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings()
	}
	decoders := make([]namedDecoder, 0, len(encodings))
	for _, name := range encodings {
		dec, err := lookup(name)
		if err != nil {
			return nil, err
		}
		decoders = append(decoders, namedDecoder{name: name, decode: dec})
	}
	return &Loader{decoders: decoders, logger: logger}, nil
}

// Load returns the decoded text of the file at path.
func (ld *Loader) Load(path string) (string, error) {
	text, _, err := ld.LoadWithEncoding(path)
	return text, err
}

// LoadWithEncoding is Load that also returns the name of the encoding used.
func (ld *Loader) LoadWithEncoding(path string) (string, string, error) {
	if err := checkFile(path); err != nil {
		ld.logger.Error("Document not accessible", "path", path, "error", err)
		return "", "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		ld.logger.Error("Failed to read document", "path", path, "error", err)
		return "", "", domain.NewDocumentError("read", path, domain.ErrIO, err)
	}

	text, name, err := ld.Decode(path, data)
	if err != nil {
		ld.logger.Error("Failed to decode document", "path", path, "bytes", len(data))
		return "", "", err
	}

	ld.logger.Debug("Loaded document",
		"path", path,
		"bytes", len(data),
		"encoding", name,
	)
	return text, name, nil
}

// Decode runs the candidate decoders over data in order. path is only used
// for error context.
func (ld *Loader) Decode(path string, data []byte) (string, string, error) {
	for _, d := range ld.decoders {
		if text, ok := d.decode(data); ok {
			return text, d.name, nil
		}
	}
	return "", "", domain.NewDocumentError("decode", path, domain.ErrUnsupportedEncoding, nil)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.NewDocumentError("open", path, domain.ErrMissingFile, err)
	case err != nil:
		return domain.NewDocumentError("stat", path, domain.ErrIO, err)
	case !info.Mode().IsRegular():
		return domain.NewDocumentError("open", path, domain.ErrMissingFile, errors.New("not a regular file"))
	}
	return nil
}
