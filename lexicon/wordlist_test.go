package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWordList_KnownWord(t *testing.T) {
	w := NewWordList([]string{"koekje", "café", "  slapen  "})

	tests := []struct {
		word string
		want bool
	}{
		{"koekje", true},
		{"slapen", true},
		{"café", true},
		{"cafe\u0301", true}, // decomposed accent
		{"Koekje", false},
		{"koekj", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := w.KnownWord(tt.word); got != tt.want {
				t.Errorf("KnownWord(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestWordList_CaseFolding(t *testing.T) {
	w := NewWordList([]string{"Amsterdam"}, WithCaseFolding())
	if !w.KnownWord("amsterdam") || !w.KnownWord("AMSTERDAM") {
		t.Error("expected case-insensitive lookups")
	}
}

func TestLoad(t *testing.T) {
	input := "# Dutch word list\nkoekje\t1520\n\nslapen\n#skipped\n"
	w, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}
	if !w.KnownWord("koekje") {
		t.Error("expected frequency column to be ignored")
	}
	if w.KnownWord("#skipped") {
		t.Error("comment line loaded as a word")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("brood\nbakker\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !w.KnownWord("bakker") {
		t.Error("expected bakker to be known")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
