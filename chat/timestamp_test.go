package chat

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Timestamp
		wantOK bool
	}{
		{"present", "*CHI:\tik wil koekje . \x151200_2450\x15", Timestamp{1200, 2450}, true},
		{"absent", "*CHI:\tik wil koekje .", Timestamp{}, false},
		{"malformed", "*CHI:\tja \x15abc\x15", Timestamp{}, false},
		{"three parts", "*CHI:\tja \x151_2_3\x15", Timestamp{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParseTimestamp() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCleanUtterance(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", "*CHI:\tik wil cookie .", "ik wil cookie"},
		{"timestamp", "*CHI:\tik wil cookie . \x15100_900\x15", "ik wil cookie"},
		{"retracing", "*CHI:\t<ik wil> [//] ik wil (s)laap .", "ik wil ik wil slaap"},
		{"folded", "*MOT:\tjij wil een \tkoekje ?", "jij wil een koekje ?"},
		{"codes", "*CHI:\tikke [: ik] &-uh wil xxx . \x15900_1000\x15", "ikke wil"},
		{"explanation", "*CHI:\tik wil koekje [= cookie] .", "ik wil koekje"},
		{"event and error marks", "*CHI:\t&=lacht dat [*] is yyy mooi .", "dat is mooi"},
		{"trailing off", "*CHI:\tik wil +...", "ik wil"},
		{"interruption and linker", "*CHI:\t+< nee ik ga +/.", "nee ik ga"},
		{"compound kept", "*CHI:\tijs+beer .", "ijs+beer"},
		{"periods inside words", "*CHI:\tnog.een keer .", "nogeen keer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanUtterance(tt.line); got != tt.want {
				t.Errorf("CleanUtterance(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
