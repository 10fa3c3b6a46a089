package transcode_test

import (
	"testing"

	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

func TestResolve(t *testing.T) {
	tbl := testTable()

	tests := []struct {
		name      string
		candidate string
		state     transcode.State
		char      rune
	}{
		{"empty", "", transcode.Incomplete, 0},
		{"too short", "AC", transcode.Incomplete, 0},
		{"too long", "A4A4A", transcode.Incomplete, 0},
		{"non-hex digit", "A4G4", transcode.Incomplete, 0},
		{"non-ascii", "A4中", transcode.Incomplete, 0},
		{"well-formed miss", "FFFF", transcode.NotFound, 0},
		{"found uppercase", "A4A4", transcode.Found, '中'},
		{"found lowercase", "a4e5", transcode.Found, '文'},
		{"found mixed case", "a4A4", transcode.Found, '中'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := transcode.Resolve(tbl, tt.candidate)
			if res.State != tt.state {
				t.Errorf("Resolve(%q).State = %s, want %s", tt.candidate, res.State, tt.state)
			}
			if tt.state == transcode.Found && res.Char != tt.char {
				t.Errorf("Resolve(%q).Char = %q, want %q", tt.candidate, res.Char, tt.char)
			}
		})
	}
}

func TestResolveShortNeverNotFound(t *testing.T) {
	tbl := testTable()
	for _, c := range []string{"A", "AC", "A4A"} {
		if res := transcode.Resolve(tbl, c); res.State != transcode.Incomplete {
			t.Errorf("Resolve(%q) = %s, want incomplete", c, res.State)
		}
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	tbl := testTable()
	before := tbl.Len()
	transcode.Resolve(tbl, "FFFF")
	transcode.Resolve(tbl, "A4A4")
	if tbl.Len() != before {
		t.Error("Resolve mutated the table")
	}
}

func TestReverseRoundTripWholeDefaultTable(t *testing.T) {
	tbl := table.Default()
	tr := transcode.New(tbl, false)

	for _, rec := range tbl.Records() {
		code := tr.Transcode(rec.Char())
		res := transcode.Resolve(tbl, code)
		if res.State != transcode.Found {
			t.Fatalf("Resolve(%s) = %s, want found", code, res.State)
		}
		if res.Char != rec.Codepoint {
			t.Fatalf("reverse(forward(%q)) = %q", rec.Codepoint, res.Char)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state transcode.State
		want  string
	}{
		{transcode.Incomplete, "incomplete"},
		{transcode.NotFound, "not_found"},
		{transcode.Found, "found"},
		{transcode.State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
