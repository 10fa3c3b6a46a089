package transcode_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

func testTable() *table.Table {
	return table.New([]Record{
		{Codepoint: '中', Code: 0xA4A4},
		{Codepoint: '文', Code: 0xA4E5},
		{Codepoint: '一', Code: 0xA440},
		{Codepoint: '大', Code: 0xA46A},
	})
}

type Record = table.Record

func TestTranscode(t *testing.T) {
	tbl := testTable()

	tests := []struct {
		name     string
		input    string
		annotate bool
		want     string
	}{
		{"empty input", "", false, ""},
		{"single mapped", "中", false, "A4A4"},
		{"two mapped", "中文", false, "A4A4★A4E5"},
		{"unmapped", "Ω", false, "????"},
		{"mixed", "中Ω文", false, "A4A4★????★A4E5"},
		{"two lines", "中\n文", false, "A4A4\nA4E5"},
		{"blank middle line", "中\n\n文", false, "A4A4\n\nA4E5"},
		{"annotated", "中", true, "A4A4(中)"},
		{"annotated pair", "中文", true, "A4A4(中)★A4E5(文)"},
		{"annotated unmapped", "Ω", true, "????(Ω)"},
		{"supplementary plane one entry", "𠀀", false, "????"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transcode.New(tbl, tt.annotate).Transcode(tt.input)
			if got != tt.want {
				t.Errorf("Transcode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTranscodeEntryCountMatchesRuneCount(t *testing.T) {
	tbl := testTable()
	tr := transcode.New(tbl, false)

	inputs := []string{"中文一大", "中Ω文", "abc中", "ΩΩΩ", "𠀀中𠀁"}
	for _, in := range inputs {
		out := tr.Transcode(in)
		entries := len(strings.Split(out, transcode.Separator))
		runes := utf8.RuneCountInString(in)
		if entries != runes {
			t.Errorf("input %q: %d entries for %d characters", in, entries, runes)
		}
	}
}

func TestTranscodePerLineCounts(t *testing.T) {
	tbl := testTable()
	out := transcode.New(tbl, false).Transcode("中文\nΩ大x")

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if n := len(strings.Split(lines[0], transcode.Separator)); n != 2 {
		t.Errorf("line 0: %d entries, want 2", n)
	}
	if n := len(strings.Split(lines[1], transcode.Separator)); n != 3 {
		t.Errorf("line 1: %d entries, want 3", n)
	}
}

func TestAnnotatedMatchesPlain(t *testing.T) {
	tbl := testTable()
	plain := transcode.New(tbl, false).Transcode("中")
	annotated := transcode.New(tbl, true).Transcode("中")

	if want := plain + "(中)"; annotated != want {
		t.Errorf("annotated = %q, want %q", annotated, want)
	}
}

func TestLookup(t *testing.T) {
	tr := transcode.New(testTable(), false)

	if l := tr.Lookup('中'); !l.Mapped || l.Code != "A4A4" {
		t.Errorf("Lookup('中') = %+v", l)
	}
	if l := tr.Lookup('Ω'); l.Mapped || l.Code != "" {
		t.Errorf("Lookup('Ω') = %+v, want unmapped", l)
	}
}

func TestForwardAgainstWholeDefaultTable(t *testing.T) {
	tbl := table.Default()
	tr := transcode.New(tbl, false)

	for _, rec := range tbl.Records() {
		out := tr.Transcode(rec.Char())
		if out != rec.Hex() {
			t.Fatalf("Transcode(%q) = %q, want %q", rec.Char(), out, rec.Hex())
		}
		if strings.Contains(out, transcode.Placeholder) {
			t.Fatalf("table character %q produced placeholder", rec.Char())
		}
	}
}
