package report

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
)

// openAppend opens path for appending, creating parent directories.
// existed reports whether the file was already there.
func openAppend(path string) (f *os.File, existed bool, err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, domain.NewDocumentError("mkdir", dir, domain.ErrIO, err)
		}
	}

	_, statErr := os.Stat(path)
	existed = statErr == nil
	if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, false, domain.NewDocumentError("stat", path, domain.ErrIO, statErr)
	}

	f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, false, domain.NewDocumentError("open", path, domain.ErrIO, err)
	}
	return f, existed, nil
}

func closeFile(f *os.File, path string, err error) error {
	if cerr := f.Close(); cerr != nil && err == nil {
		return domain.NewDocumentError("close", path, domain.ErrIO, cerr)
	}
	return err
}
