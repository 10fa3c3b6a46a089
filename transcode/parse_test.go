package transcode_test

import (
	"testing"

	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

func TestParse(t *testing.T) {
	tbl := testTable()

	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"empty", "", ""},
		{"single", "A4A4", "中"},
		{"pair", "A4A4★A4E5", "中文"},
		{"two lines", "A4A4\nA4E5", "中\n文"},
		{"blank middle line", "A4A4\n\nA4E5", "中\n\n文"},
		{"annotated", "A4A4(中)★A4E5(文)", "中文"},
		{"placeholder", "A4A4★????★A4E5", "中�文"},
		{"unknown code", "FFFF", "�"},
		{"lowercase code", "a4a4", "中"},
		{"garbage entry", "zzzz", "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transcode.Parse(tbl, tt.encoded)
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.encoded, got, tt.want)
			}
		})
	}
}

func TestParseInvertsTranscode(t *testing.T) {
	tbl := testTable()

	inputs := []string{"中", "中文", "中\n文", "一大中文", "中\n\n文", ""}
	for _, annotate := range []bool{false, true} {
		tr := transcode.New(tbl, annotate)
		for _, in := range inputs {
			if got := transcode.Parse(tbl, tr.Transcode(in)); got != in {
				t.Errorf("annotate=%v: Parse(Transcode(%q)) = %q", annotate, in, got)
			}
		}
	}
}

func TestParseInvertsTranscodeDefaultTable(t *testing.T) {
	tbl := table.Default()
	tr := transcode.New(tbl, false)

	in := "一大中文\n中文大一"
	if got := transcode.Parse(tbl, tr.Transcode(in)); got != in {
		t.Errorf("Parse(Transcode(%q)) = %q", in, got)
	}
}
