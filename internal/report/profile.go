package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	childes "github.com/jamesainslie/go-childes"
	"github.com/jamesainslie/go-childes/annotation"
)

// KindProfile summarizes the patterns of one annotation kind.
type KindProfile struct {
	Kind        annotation.Kind
	Patterns    int // distinct (pattern, wrong, correct) rows
	Occurrences int // sum of frequencies
	// MeanDistance is the mean Levenshtein distance between the wrong and
	// the correct form, weighted by frequency.
	MeanDistance float64
	// MeanSimilarity is the mean Jaro-Winkler similarity, weighted by
	// frequency.
	MeanSimilarity float64
}

// Profile describes how far the child's forms are from their targets.
type Profile struct {
	Total  KindProfile
	ByKind []KindProfile
}

// NewProfile computes the error profile of a frequency table.
func NewProfile(rows []childes.PatternCount) Profile {
	acc := make(map[annotation.Kind]*accumulator)
	var total accumulator

	for _, r := range rows {
		dist := float64(matchr.Levenshtein(r.Wrong, r.Correct))
		sim := matchr.JaroWinkler(r.Wrong, r.Correct, false)

		a, ok := acc[r.Kind]
		if !ok {
			a = &accumulator{}
			acc[r.Kind] = a
		}
		a.add(r.Frequency, dist, sim)
		total.add(r.Frequency, dist, sim)
	}

	p := Profile{Total: total.profile(annotation.Kind(-1))}
	for kind, a := range acc {
		p.ByKind = append(p.ByKind, a.profile(kind))
	}
	sort.Slice(p.ByKind, func(i, j int) bool {
		return p.ByKind[i].Kind < p.ByKind[j].Kind
	})
	return p
}

type accumulator struct {
	patterns    int
	occurrences int
	distance    float64
	similarity  float64
}

func (a *accumulator) add(freq int, dist, sim float64) {
	a.patterns++
	a.occurrences += freq
	a.distance += float64(freq) * dist
	a.similarity += float64(freq) * sim
}

func (a *accumulator) profile(kind annotation.Kind) KindProfile {
	kp := KindProfile{
		Kind:        kind,
		Patterns:    a.patterns,
		Occurrences: a.occurrences,
	}
	if a.occurrences > 0 {
		kp.MeanDistance = a.distance / float64(a.occurrences)
		kp.MeanSimilarity = a.similarity / float64(a.occurrences)
	}
	return kp
}

// Print writes the profile as a small table.
func (p Profile) Print(w io.Writer) {
	fmt.Fprintln(w, "Error Profile")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	fmt.Fprintf(w, "%-16s %-10s %-10s %-8s %-8s\n", "Kind", "Patterns", "Count", "Dist", "Sim")
	for _, kp := range p.ByKind {
		printRow(w, kp.Kind.String(), kp)
	}
	fmt.Fprintln(w, strings.Repeat("-", 56))
	printRow(w, "total", p.Total)
}

func printRow(w io.Writer, label string, kp KindProfile) {
	fmt.Fprintf(w, "%-16s %-10d %-10d %-8.2f %-8.2f\n",
		label, kp.Patterns, kp.Occurrences, kp.MeanDistance, kp.MeanSimilarity)
}
