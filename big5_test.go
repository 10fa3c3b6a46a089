package big5_test

import (
	"testing"

	"github.com/hanconv/big5"
)

func TestTranscode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single", "中", "A4A4"},
		{"pair", "中文", "A4A4★A4E5"},
		{"two lines", "中\n文", "A4A4\nA4E5"},
		{"unmapped", "中Ω", "A4A4★????"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := big5.Transcode(tt.input); got != tt.want {
				t.Errorf("Transcode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranscodeAnnotated(t *testing.T) {
	if got := big5.TranscodeAnnotated("中"); got != "A4A4(中)" {
		t.Errorf("TranscodeAnnotated = %q, want A4A4(中)", got)
	}
}

func TestResolve(t *testing.T) {
	if res := big5.Resolve("A4A4"); res.State != big5.Found || res.Char != '中' {
		t.Errorf("Resolve(A4A4) = %+v", res)
	}
	if res := big5.Resolve("AC"); res.State != big5.Incomplete {
		t.Errorf("Resolve(AC) = %+v, want incomplete", res)
	}
	if res := big5.Resolve("FAFF"); res.State != big5.NotFound {
		t.Errorf("Resolve(FAFF) = %+v, want not found", res)
	}
}

func TestParseRoundTrip(t *testing.T) {
	in := "中文\n一大"
	if got := big5.Parse(big5.Transcode(in)); got != in {
		t.Errorf("Parse(Transcode(%q)) = %q", in, got)
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := big5.DefaultTable()
	if tbl == nil || tbl.Len() == 0 {
		t.Fatal("DefaultTable should be populated")
	}
}
