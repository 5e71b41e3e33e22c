//go:build ignore

// Build a word list lexicon from Universal Dependencies CoNLL-U files.
// Every FORM of a syntactic word is kept, plus its lowercase variant.
// Usage: go run ./scripts/build-lexicon.go -out testdata/nl.words testdata/ud-nl/*.conllu
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

func main() {
	out := flag.String("out", "testdata/words.txt", "Output word list")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: go run ./scripts/build-lexicon.go -out FILE TREEBANK.conllu...")
		os.Exit(1)
	}

	words := make(map[string]struct{})
	for _, path := range inputs {
		fmt.Printf("Processing %s...\n", path)
		n, err := collectForms(path, words)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			continue
		}
		fmt.Printf("  %d tokens\n", n)
	}

	if err := writeWords(*out, words, inputs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("\nDone! %d words written to %s\n", len(words), *out)
}

// collectForms adds the FORM column of every token line to words and returns
// the number of tokens seen.
func collectForms(path string, words map[string]struct{}) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	tokens := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		// Multiword ranges (3-4) and empty nodes (5.1) repeat surface text.
		if strings.ContainsAny(fields[0], "-.") {
			continue
		}

		form := norm.NFC.String(fields[1])
		if !hasLetter(form) {
			continue
		}
		tokens++
		words[form] = struct{}{}
		words[strings.ToLower(form)] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return tokens, fmt.Errorf("scanning file: %w", err)
	}
	return tokens, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func writeWords(path string, words map[string]struct{}, sources []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	sorted := make([]string, 0, len(words))
	for w := range words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	bw := bufio.NewWriter(file)
	for _, src := range sources {
		fmt.Fprintf(bw, "# source: %s\n", filepath.Base(src))
	}
	for _, w := range sorted {
		bw.WriteString(w)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
