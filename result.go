package childes

import (
	"errors"
	"sort"

	"github.com/jamesainslie/go-childes/annotation"
	"github.com/jamesainslie/go-childes/chat"
)

// Result is the outcome of mining a corpus.
type Result struct {
	Root string
	// Files holds the successfully mined transcripts in walk order.
	Files    []*FileResult
	Failures []*FileError
	// RequireTimestamps drops utterances without media alignment from
	// Dataset rows.
	RequireTimestamps bool
}

// Err joins all per-file failures, or returns nil.
func (r *Result) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// PatternCount is one row of the frequency table.
type PatternCount struct {
	// Kind is the markup the pattern was first seen in.
	Kind      annotation.Kind
	Pattern   string
	Wrong     string
	Correct   string
	Frequency int
}

type patternKey struct {
	pattern, wrong, correct string
}

// Frequencies counts identical (pattern, wrong, correct) triples across the
// corpus. Rows are sorted by descending frequency; ties keep first-seen order.
func (r *Result) Frequencies() []PatternCount {
	index := make(map[patternKey]int)
	var counts []PatternCount

	for _, f := range r.Files {
		for _, t := range f.Patterns() {
			key := patternKey{t.Match, t.Wrong, t.Correct}
			if i, ok := index[key]; ok {
				counts[i].Frequency++
				continue
			}
			index[key] = len(counts)
			counts = append(counts, PatternCount{
				Kind:      t.Kind,
				Pattern:   t.Match,
				Wrong:     t.Wrong,
				Correct:   t.Correct,
				Frequency: 1,
			})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Frequency > counts[j].Frequency
	})
	return counts
}

// Variant selects which text of an utterance goes into a dataset.
type Variant int

const (
	Original Variant = iota
	Wrong
	Correct
)

func (v Variant) String() string {
	switch v {
	case Wrong:
		return "wrong"
	case Correct:
		return "correct"
	default:
		return "original"
	}
}

// DatasetRow is the per-file record consumed by dataset builders: the cleaned
// utterance texts of the target child and their [start_ms, end_ms] alignments.
// A nil timestamp marks an utterance without alignment.
type DatasetRow struct {
	Filename   string
	Utterances []string
	Timestamps [][]int
}

// Dataset returns one row per mined file with the selected variant of every
// target-speaker utterance.
func (r *Result) Dataset(v Variant) []DatasetRow {
	rows := make([]DatasetRow, 0, len(r.Files))
	for _, f := range r.Files {
		row := DatasetRow{
			Filename:   f.Name,
			Utterances: []string{},
			Timestamps: [][]int{},
		}
		for _, u := range f.Utterances {
			if u.Timestamp == nil && r.RequireTimestamps {
				continue
			}
			row.Utterances = append(row.Utterances, chat.CleanUtterance(u.text(v)))
			if u.Timestamp != nil {
				row.Timestamps = append(row.Timestamps, []int{u.Timestamp.Start, u.Timestamp.End})
			} else {
				row.Timestamps = append(row.Timestamps, nil)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (u UtteranceResult) text(v Variant) string {
	switch v {
	case Wrong:
		return u.Wrong
	case Correct:
		return u.Correct
	default:
		return u.Original
	}
}
