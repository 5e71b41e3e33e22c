package childes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jamesainslie/go-childes/annotation"
	"github.com/jamesainslie/go-childes/chat"
	"github.com/jamesainslie/go-childes/internal/corpus"
	"github.com/jamesainslie/go-childes/lexicon"
)

// Miner extracts word errors from the target child's utterances.
// It is safe for concurrent use.
type Miner struct {
	filter            *annotation.Filter
	workers           int
	requireTimestamps bool
	logger            *slog.Logger
}

// UtteranceResult is one target-speaker utterance after annotation mining.
type UtteranceResult struct {
	Speaker string
	// Original is the utterance record as read from the transcript.
	Original string
	// Wrong and Correct are Original with every kept triple replaced by its
	// wrong and correct form. Both equal Original when nothing was kept.
	Wrong   string
	Correct string
	Triples []annotation.Triple
	// Timestamp is nil when the utterance has no media alignment.
	Timestamp *chat.Timestamp
}

// FileResult holds the mined utterances of one transcript.
type FileResult struct {
	Path       string
	Name       string
	Target     string
	Utterances []UtteranceResult
}

// Patterns returns every kept triple of the file in discovery order.
func (f *FileResult) Patterns() []annotation.Triple {
	var triples []annotation.Triple
	for _, u := range f.Utterances {
		triples = append(triples, u.Triples...)
	}
	return triples
}

// New creates a Miner that judges wrong forms against lex.
func New(lex lexicon.Lexicon, opts ...Option) (*Miner, error) {
	if lex == nil {
		return nil, ErrNoLexicon
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var validatorOpts []lexicon.ValidatorOption
	if cfg.allowWords != nil {
		validatorOpts = append(validatorOpts, lexicon.WithAllowWords(cfg.allowWords))
	}

	return &Miner{
		filter:            annotation.NewFilter(lexicon.NewValidator(lex, validatorOpts...)),
		workers:           cfg.workers,
		requireTimestamps: cfg.requireTimestamps,
		logger:            cfg.logger,
	}, nil
}

// ProcessUtterance mines a single utterance record.
func (m *Miner) ProcessUtterance(utterance string) UtteranceResult {
	triples := m.filter.Apply(annotation.Extract(utterance))
	wrong, correct := annotation.Rewrite(utterance, triples)

	res := UtteranceResult{
		Speaker:  chat.SpeakerOf(utterance),
		Original: utterance,
		Wrong:    wrong,
		Correct:  correct,
		Triples:  triples,
	}
	if ts, ok := chat.ParseTimestamp(utterance); ok {
		res.Timestamp = &ts
	}
	return res
}

// ProcessTranscript mines the utterances of the transcript's target speaker.
// Utterances of other speakers never reach the extractors.
func (m *Miner) ProcessTranscript(tr *chat.Transcript) *FileResult {
	target := chat.TargetSpeaker(tr.Headers)
	res := &FileResult{
		Path:   tr.Path,
		Name:   tr.Name(),
		Target: target,
	}
	for _, utt := range tr.Utterances {
		if chat.SpeakerOf(utt) != target {
			continue
		}
		res.Utterances = append(res.Utterances, m.ProcessUtterance(utt))
	}
	return res
}

// ProcessFile reads and mines the transcript at path.
func (m *Miner) ProcessFile(path string) (*FileResult, error) {
	tr, err := chat.ReadFile(path, chat.WithLogger(m.logger))
	if err != nil {
		return nil, err
	}
	return m.ProcessTranscript(tr), nil
}

// Mine processes every transcript under root. Files are mined concurrently
// but results keep the directory walk order. A file that fails is recorded in
// Result.Failures; only an unusable root or a cancelled context make Mine
// return an error.
func (m *Miner) Mine(ctx context.Context, root string) (*Result, error) {
	start := time.Now()

	paths, err := corpus.Files(root, func(path string, err error) {
		m.logger.Warn("skipping unreadable directory", "path", path, "error", err)
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTranscripts, root)
	}

	m.logger.Info("mining corpus", "root", root, "files", len(paths), "workers", m.workers)

	files := make([]*FileResult, len(paths))
	failures := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fr, err := m.ProcessFile(path)
			if err != nil {
				m.logger.Error("transcript failed", "file", path, "error", err)
				failures[i] = err
				return nil
			}
			m.logger.Debug("transcript mined",
				"file", path,
				"target", fr.Target,
				"utterances", len(fr.Utterances),
				"patterns", len(fr.Patterns()),
			)
			files[i] = fr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Root: root, RequireTimestamps: m.requireTimestamps}
	for i := range paths {
		if failures[i] != nil {
			res.Failures = append(res.Failures, &FileError{Path: paths[i], Err: failures[i]})
			continue
		}
		res.Files = append(res.Files, files[i])
	}

	m.logger.Info("corpus mined",
		"root", root,
		"files", len(res.Files),
		"failures", len(res.Failures),
		"duration", time.Since(start),
	)

	return res, nil
}
