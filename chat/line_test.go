package chat

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{"empty", "", Other},
		{"metadata", "@Participants:\tCHI Target_Child", Metadata},
		{"utterance", "*CHI:\tik wil koekje .", Utterance},
		{"continuation", "\tkoekje [= cookie] .", Continuation},
		{"dependent tier", "%mor:\tpro|ik v|wil", Other},
		{"leading space", " *CHI:\tnope", Other},
		{"bare at sign", "@", Metadata},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassify_FirstByteDecides(t *testing.T) {
	faker := gofakeit.New(7)
	prefixes := []string{"@", "*", "\t", "%", " ", "x", ""}
	want := map[string]LineKind{
		"@": Metadata, "*": Utterance, "\t": Continuation,
		"%": Other, " ": Other, "x": Other, "": Other,
	}

	for i := 0; i < 200; i++ {
		prefix := faker.RandomString(prefixes)
		line := prefix + faker.Sentence(faker.Number(0, 6))
		if prefix == "" && line != "" {
			// the generated sentence decides; only check it is a letter
			if got := Classify(line); got != Other {
				t.Errorf("Classify(%q) = %v, want other", line, got)
			}
			continue
		}
		if got := Classify(line); got != want[prefix] {
			t.Errorf("Classify(%q) = %v, want %v", line, got, want[prefix])
		}
	}
}

func TestLineKind_String(t *testing.T) {
	kinds := map[LineKind]string{
		Other:        "other",
		Metadata:     "metadata",
		Utterance:    "utterance",
		Continuation: "continuation",
	}
	for k, want := range kinds {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}
