package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordList is an in-memory Lexicon. Entries and queries are NFC normalized so
// that decomposed accents ("e" + U+0301) match precomposed ones.
// A WordList is safe for concurrent reads once loaded.
type WordList struct {
	words    map[string]struct{}
	foldCase bool
}

// WordListOption configures a WordList.
type WordListOption func(*WordList)

// WithCaseFolding makes lookups case-insensitive.
func WithCaseFolding() WordListOption {
	return func(w *WordList) {
		w.foldCase = true
	}
}

// NewWordList builds a WordList from words.
func NewWordList(words []string, opts ...WordListOption) *WordList {
	w := &WordList{words: make(map[string]struct{}, len(words))}
	for _, opt := range opts {
		opt(w)
	}
	for _, word := range words {
		w.Add(word)
	}
	return w
}

// Load reads one word per line. Blank lines and lines starting with '#' are
// skipped; only the first tab-separated field of a line is used, so
// frequency lists load unchanged.
func Load(r io.Reader, opts ...WordListOption) (*WordList, error) {
	w := NewWordList(nil, opts...)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[:i]
		}
		w.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return w, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string, opts ...WordListOption) (*WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer func() { _ = file.Close() }()

	w, err := Load(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	return w, nil
}

// Add inserts word. It must not be called concurrently with KnownWord.
func (w *WordList) Add(word string) {
	key := w.key(word)
	if key == "" {
		return
	}
	w.words[key] = struct{}{}
}

// KnownWord implements Lexicon.
func (w *WordList) KnownWord(word string) bool {
	_, ok := w.words[w.key(word)]
	return ok
}

// Len returns the number of distinct entries.
func (w *WordList) Len() int {
	return len(w.words)
}

func (w *WordList) key(word string) string {
	word = norm.NFC.String(strings.TrimSpace(word))
	if w.foldCase {
		word = strings.ToLower(word)
	}
	return word
}
