package childes

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jamesainslie/go-childes/annotation"
	"github.com/jamesainslie/go-childes/chat"
	"github.com/jamesainslie/go-childes/lexicon"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// dutch is a tiny lexicon standing in for a real word list.
var dutch = lexicon.NewWordList([]string{"brood", "slapen", "bakker", "cookie"})

func newTestMiner(t *testing.T, opts ...Option) *Miner {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger), WithWorkers(2)}, opts...)
	m, err := New(dutch, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func writeTranscript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const header = "@UTF8\n@Begin\n@Participants:\tCHI Target_Child, MOT Mother\n"

func TestNew_NoLexicon(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrNoLexicon) {
		t.Errorf("expected ErrNoLexicon, got %v", err)
	}
}

func TestMiner_ProcessUtterance(t *testing.T) {
	m := newTestMiner(t)

	got := m.ProcessUtterance("*CHI:\tik wil koekje [= cookie] .\n")

	wantTriples := []annotation.Triple{{
		Kind:    annotation.Explanation,
		Span:    "koekje [= cookie]",
		Match:   "koekje [= cookie]",
		Wrong:   "koekje",
		Correct: "cookie",
	}}
	if !reflect.DeepEqual(got.Triples, wantTriples) {
		t.Fatalf("Triples = %+v, want %+v", got.Triples, wantTriples)
	}
	if got.Speaker != "CHI" {
		t.Errorf("Speaker = %q, want CHI", got.Speaker)
	}
	if w := chat.CleanUtterance(got.Wrong); w != "ik wil koekje" {
		t.Errorf("wrong = %q, want %q", w, "ik wil koekje")
	}
	if c := chat.CleanUtterance(got.Correct); c != "ik wil cookie" {
		t.Errorf("correct = %q, want %q", c, "ik wil cookie")
	}
	if got.Timestamp != nil {
		t.Errorf("Timestamp = %+v, want nil", got.Timestamp)
	}
}

func TestMiner_ProcessUtterance_Discarded(t *testing.T) {
	m := newTestMiner(t)

	tests := []struct {
		name      string
		utterance string
	}{
		{"short non-completion", "*CHI:\tik ga (s)laap ."},
		{"wrong form is a word", "*CHI:\tbakker [: bakkerij] ."},
		{"proper noun", "*CHI:\tammesam [= Amsterdam] ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ProcessUtterance(tt.utterance)
			if len(got.Triples) != 0 {
				t.Errorf("Triples = %+v, want none", got.Triples)
			}
			if got.Wrong != tt.utterance || got.Correct != tt.utterance {
				t.Errorf("utterance rewritten without triples: %q / %q", got.Wrong, got.Correct)
			}
		})
	}
}

func TestMiner_ProcessTranscript_TargetOnly(t *testing.T) {
	m := newTestMiner(t)
	tr := &chat.Transcript{
		Path:    "/corpus/tim01.cha",
		Headers: []string{"@Participants:\tMOT Mother, TIM Target_Child"},
		Utterances: []string{
			"*MOT:\tkijk een koekje [= cookie] .",
			"*TIM:\tbroot [: brood] eten .",
			"*TIM:\tja .",
		},
	}

	got := m.ProcessTranscript(tr)
	if got.Target != "TIM" {
		t.Errorf("Target = %q, want TIM", got.Target)
	}
	if got.Name != "tim01.cha" {
		t.Errorf("Name = %q, want tim01.cha", got.Name)
	}
	if len(got.Utterances) != 2 {
		t.Fatalf("got %d utterances, want 2", len(got.Utterances))
	}
	patterns := got.Patterns()
	if len(patterns) != 1 || patterns[0].Wrong != "broot" || patterns[0].Correct != "brood" {
		t.Errorf("Patterns() = %+v", patterns)
	}
}

func TestMiner_Mine_Frequencies(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.cha", header+
		"*CHI:\tik wil koekje [= cookie] .\n"+
		"*CHI:\tbroot [: brood] .\n"+
		"*MOT:\tkoekje [= cookie] ?\n"+
		"@End\n")
	writeTranscript(t, dir, filepath.Join("sub", "b.cha"), header+
		"*CHI:\tnog een koekje [= cookie] .\n"+
		"@End\n")
	writeTranscript(t, dir, "readme.txt", "*CHI:\tbiscotto [= cookie] .\n")

	m := newTestMiner(t)
	res, err := m.Mine(context.Background(), dir)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(res.Files))
	}
	if res.Err() != nil {
		t.Errorf("unexpected failures: %v", res.Err())
	}

	want := []PatternCount{
		{Kind: annotation.Explanation, Pattern: "koekje [= cookie]", Wrong: "koekje", Correct: "cookie", Frequency: 2},
		{Kind: annotation.Replacement, Pattern: "broot [: brood]", Wrong: "broot", Correct: "brood", Frequency: 1},
	}
	if got := res.Frequencies(); !reflect.DeepEqual(got, want) {
		t.Errorf("Frequencies() = %+v, want %+v", got, want)
	}
}

func TestResult_Frequencies_MergesAcrossFiles(t *testing.T) {
	triple := annotation.Triple{Kind: annotation.Explanation, Span: "xyz [= abc]", Match: "xyz [= abc]", Wrong: "xyz", Correct: "abc"}
	other := annotation.Triple{Kind: annotation.Replacement, Span: "pqr [: stu]", Match: "pqr [: stu]", Wrong: "pqr", Correct: "stu"}
	res := &Result{Files: []*FileResult{
		{Name: "one.cha", Utterances: []UtteranceResult{{Triples: []annotation.Triple{other, triple}}}},
		{Name: "two.cha", Utterances: []UtteranceResult{{Triples: []annotation.Triple{triple}}}},
	}}

	got := res.Frequencies()
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(got), got)
	}
	if got[0].Pattern != "xyz [= abc]" || got[0].Frequency != 2 {
		t.Errorf("first row = %+v, want xyz [= abc] with frequency 2", got[0])
	}
	if got[1].Pattern != "pqr [: stu]" || got[1].Frequency != 1 {
		t.Errorf("second row = %+v", got[1])
	}
}

func TestMiner_Mine_Dataset(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.cha", header+
		"*CHI:\tik wil koekje [= cookie] . \x15100_900\x15\n"+
		"*MOT:\tja . \x15900_1000\x15\n"+
		"*CHI:\tzonder tijd .\n"+
		"*CHI:\t<(s)lapen> gaan . \x151200_2000\x15\n"+
		"*CHI:\tikke [: ik] &-uh wil xxx . \x152100_2500\x15\n")

	tests := []struct {
		name       string
		require    bool
		variant    Variant
		wantUtts   []string
		wantStamps [][]int
	}{
		{
			name:       "original",
			require:    true,
			variant:    Original,
			wantUtts:   []string{"ik wil koekje", "slapen gaan", "ikke wil"},
			wantStamps: [][]int{{100, 900}, {1200, 2000}, {2100, 2500}},
		},
		{
			name:       "wrong",
			require:    true,
			variant:    Wrong,
			wantUtts:   []string{"ik wil koekje", "lapen gaan", "ikke wil"},
			wantStamps: [][]int{{100, 900}, {1200, 2000}, {2100, 2500}},
		},
		{
			name:       "correct without timestamp requirement",
			require:    false,
			variant:    Correct,
			wantUtts:   []string{"ik wil cookie", "zonder tijd", "slapen gaan", "ikke wil"},
			wantStamps: [][]int{{100, 900}, nil, {1200, 2000}, {2100, 2500}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiner(t, WithRequireTimestamps(tt.require))
			res, err := m.Mine(context.Background(), dir)
			if err != nil {
				t.Fatalf("Mine() error = %v", err)
			}
			rows := res.Dataset(tt.variant)
			if len(rows) != 1 {
				t.Fatalf("got %d rows, want 1", len(rows))
			}
			if rows[0].Filename != "a.cha" {
				t.Errorf("Filename = %q, want a.cha", rows[0].Filename)
			}
			if !reflect.DeepEqual(rows[0].Utterances, tt.wantUtts) {
				t.Errorf("Utterances = %q, want %q", rows[0].Utterances, tt.wantUtts)
			}
			if !reflect.DeepEqual(rows[0].Timestamps, tt.wantStamps) {
				t.Errorf("Timestamps = %v, want %v", rows[0].Timestamps, tt.wantStamps)
			}
		})
	}
}

func TestMiner_Mine_FileFailureIsolated(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "bad.cha", header+"*CHI:\t\xff\xfe\n")
	writeTranscript(t, dir, "good.cha", header+"*CHI:\tbroot [: brood] .\n")

	m := newTestMiner(t)
	res, err := m.Mine(context.Background(), dir)
	if err != nil {
		t.Fatalf("Mine() error = %v", err)
	}
	if len(res.Files) != 1 || res.Files[0].Name != "good.cha" {
		t.Fatalf("Files = %+v, want only good.cha", res.Files)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(res.Failures))
	}
	if !errors.Is(res.Err(), chat.ErrInvalidEncoding) {
		t.Errorf("Err() = %v, want ErrInvalidEncoding", res.Err())
	}
	bad := filepath.Join(dir, "bad.cha")
	if res.Failures[0].Path != bad {
		t.Errorf("failure path = %q", res.Failures[0].Path)
	}
	if n := strings.Count(res.Failures[0].Error(), bad); n != 1 {
		t.Errorf("failure message names the path %d times: %q", n, res.Failures[0].Error())
	}
}

func TestMiner_Mine_RootErrors(t *testing.T) {
	m := newTestMiner(t)
	ctx := context.Background()

	if _, err := m.Mine(ctx, filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}

	empty := t.TempDir()
	writeTranscript(t, empty, "notes.txt", "nothing here")
	if _, err := m.Mine(ctx, empty); !errors.Is(err, ErrNoTranscripts) {
		t.Errorf("expected ErrNoTranscripts, got %v", err)
	}
}

func TestMiner_Mine_ContextCancelled(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.cha", header+"*CHI:\tja .\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := newTestMiner(t)
	if _, err := m.Mine(ctx, dir); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestVariant_String(t *testing.T) {
	for v, want := range map[Variant]string{Original: "original", Wrong: "wrong", Correct: "correct"} {
		if v.String() != want {
			t.Errorf("String() = %q, want %q", v.String(), want)
		}
	}
}
