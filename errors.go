package childes

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrNoLexicon indicates New was called without a lexicon.
	ErrNoLexicon = errors.New("childes: lexicon is required")

	// ErrRootNotFound indicates the corpus root does not exist.
	ErrRootNotFound = errors.New("childes: corpus root not found")

	// ErrNoTranscripts indicates the corpus root contains no .cha files.
	ErrNoTranscripts = errors.New("childes: no transcripts found")
)

// FileError records the failure of a single transcript.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
