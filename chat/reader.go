package chat

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single physical line. CHAT lines are short, but some
// corpora put whole dependent tiers on one line.
const maxLineSize = 1 << 20

const utf8BOM = "\ufeff"

// Transcript holds the records of one CHAT file. Records are stored without
// their line terminators; continuation lines are folded into the record they
// extend, separated by a single space.
type Transcript struct {
	Path       string
	Headers    []string
	Utterances []string
}

// Name returns the base file name of the transcript.
func (t *Transcript) Name() string {
	return filepath.Base(t.Path)
}

// ReaderOption configures Read and ReadFile.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report malformed line sequences
// (default: slog.Default()).
func WithLogger(l *slog.Logger) ReaderOption {
	return func(c *readerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// foldState remembers what the previous classified line was.
type foldState int

const (
	stateNone foldState = iota
	stateUtterance
	stateMetadata
	stateOther
)

// folder reassembles multi-line records. It is the explicit state machine the
// reader threads through the line sequence.
type folder struct {
	state  foldState
	tr     *Transcript
	logger *slog.Logger
	lineNo int
}

func (f *folder) feed(line string) {
	f.lineNo++
	switch Classify(line) {
	case Metadata:
		f.tr.Headers = append(f.tr.Headers, line)
		f.state = stateMetadata
	case Utterance:
		f.tr.Utterances = append(f.tr.Utterances, line)
		f.state = stateUtterance
	case Continuation:
		switch f.state {
		case stateUtterance:
			last := len(f.tr.Utterances) - 1
			f.tr.Utterances[last] = f.tr.Utterances[last] + " " + line
		case stateMetadata:
			last := len(f.tr.Headers) - 1
			f.tr.Headers[last] = f.tr.Headers[last] + " " + line
		case stateOther:
			// continuation of an ignored line (dependent tier); drop it
		default:
			f.logger.Warn("continuation line without a preceding record",
				"file", f.tr.Path,
				"line", f.lineNo,
				"text", line,
			)
		}
	default:
		f.state = stateOther
	}
}

// Read parses a transcript from r. path is recorded on the result and used in
// log messages only.
func Read(r io.Reader, path string, opts ...ReaderOption) (*Transcript, error) {
	cfg := readerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &folder{
		state:  stateNone,
		tr:     &Transcript{Path: path},
		logger: cfg.logger,
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	first := true
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, f.lineNo+1)
		}
		f.feed(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan transcript: %w", err)
	}

	return f.tr, nil
}

// ReadFile opens and parses the transcript at path.
func ReadFile(path string, opts ...ReaderOption) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer func() { _ = file.Close() }()

	tr, err := Read(file, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return tr, nil
}
