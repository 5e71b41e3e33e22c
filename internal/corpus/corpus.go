// Package corpus enumerates the transcript files of a CHILDES style corpus.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	transcriptExt = ".cha"
	// Italian translations shipped alongside some Dutch corpora.
	translationSuffix = "-ital.cha"
)

// ErrNotDirectory indicates the corpus root is not a directory.
var ErrNotDirectory = errors.New("corpus: root is not a directory")

// IsTranscript reports whether name is a transcript the miner should read.
func IsTranscript(name string) bool {
	return strings.HasSuffix(name, transcriptExt) && !strings.HasSuffix(name, translationSuffix)
}

// Files returns the transcript paths under root in lexical walk order.
// Unreadable subdirectories are reported through skipped and otherwise
// ignored; only a missing or unreadable root is an error.
func Files(root string, skipped func(path string, err error)) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if skipped != nil {
				skipped(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsTranscript(d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}

	return paths, nil
}
