// Package childes mines child speech errors from CHAT transcripts.
//
// # Quick Start
//
//	words, err := lexicon.LoadFile("dutch-words.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	miner, err := childes.New(words, childes.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := miner.Mine(ctx, "CHILDES")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res.Frequencies() {
//	    fmt.Printf("%-30s %-12s %-12s %d\n", p.Pattern, p.Wrong, p.Correct, p.Frequency)
//	}
//
// # Pipeline
//
// Each transcript is read into header and utterance records (package chat),
// the target child is resolved from the @Participants header, and every
// utterance of that child is scanned for non-completions, replacements and
// explanations (package annotation). Extractions whose wrong form is a known
// word, or whose forms are too short to be reliable, are dropped. The kept
// triples are counted across the corpus and used to rewrite each utterance
// into a "wrong" and a "correct" variant.
//
// # Thread Safety
//
// Miner is safe for concurrent use. Mine processes files on a bounded number
// of goroutines, configurable via WithWorkers; a file that cannot be read is
// recorded in Result.Failures and does not stop the walk.
package childes
