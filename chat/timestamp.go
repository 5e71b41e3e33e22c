package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// Timestamp is a media alignment in milliseconds, written in CHAT as
// "\x15start_end\x15" at the end of an utterance.
type Timestamp struct {
	Start int
	End   int
}

var (
	stampSpan    = regexp.MustCompile("\x15.*\x15")
	stampMarker  = regexp.MustCompile(`\x15\d+_\d+\x15`)
	speakerLabel = regexp.MustCompile(`^\*[^:\s]*:\s*`)
	bracketChars = regexp.MustCompile(`[<>()]`)
	spaceRuns    = regexp.MustCompile(` {2,}`)

	// CHAT codes that are not spoken words: bracketed codes ([//], [: ik],
	// [= cookie]), fragments and fillers (&-uh, &=laughs), unintelligible
	// speech, and terminators or linkers starting with '+'.
	scopedCode     = regexp.MustCompile(`\[[^\]]*\]`)
	fragment       = regexp.MustCompile(`&[-=+]?\S+`)
	unintelligible = regexp.MustCompile(`\b(?:xxx|yyy|www)\b`)
	terminator     = regexp.MustCompile(`(?:^|\s)\+\S*`)
)

// ParseTimestamp returns the media alignment of an utterance, if it has one.
func ParseTimestamp(utterance string) (Timestamp, bool) {
	span := stampSpan.FindString(utterance)
	if span == "" {
		return Timestamp{}, false
	}
	fields := strings.Fields(strings.ReplaceAll(strings.ReplaceAll(span, "\x15", ""), "_", " "))
	if len(fields) != 2 {
		return Timestamp{}, false
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return Timestamp{}, false
	}
	end, err := strconv.Atoi(fields[1])
	if err != nil {
		return Timestamp{}, false
	}
	return Timestamp{Start: start, End: end}, true
}

// CleanUtterance reduces an utterance line to the spoken words a speech
// dataset needs. It removes the speaker label, media markers, the bracket
// characters < > ( ), bracketed codes such as [//] or [: ik], fragments and
// fillers (&-uh), unintelligible markers (xxx, yyy, www), special terminators
// and linkers (+..., +/.) and every period, then collapses runs of spaces.
func CleanUtterance(utterance string) string {
	s := speakerLabel.ReplaceAllString(utterance, "")
	s = stampMarker.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\t", " ")
	s = bracketChars.ReplaceAllString(s, "")
	s = scopedCode.ReplaceAllString(s, " ")
	s = fragment.ReplaceAllString(s, " ")
	s = unintelligible.ReplaceAllString(s, " ")
	s = terminator.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ".", "")
	s = spaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
