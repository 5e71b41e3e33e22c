// Package chat reads CHAT (.cha) transcripts into header and utterance records.
//
// A CHAT file is line oriented: lines starting with '@' carry metadata, lines
// starting with '*' are utterances ("*CHI:\ttext"), and lines starting with a
// tab continue the previous record. Everything else is ignored.
package chat

// LineKind classifies a physical transcript line.
type LineKind int

const (
	// Other covers empty lines, dependent tiers (%mor, %com, ...) and anything
	// not recognised below.
	Other LineKind = iota
	// Metadata lines start with '@'.
	Metadata
	// Utterance lines start with '*'.
	Utterance
	// Continuation lines start with a tab and extend the previous record.
	Continuation
)

func (k LineKind) String() string {
	switch k {
	case Metadata:
		return "metadata"
	case Utterance:
		return "utterance"
	case Continuation:
		return "continuation"
	default:
		return "other"
	}
}

// Classify returns the kind of line based on its first byte.
func Classify(line string) LineKind {
	if line == "" {
		return Other
	}
	switch line[0] {
	case '@':
		return Metadata
	case '*':
		return Utterance
	case '\t':
		return Continuation
	default:
		return Other
	}
}
