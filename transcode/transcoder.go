package transcode

import (
	"strings"

	"github.com/hanconv/big5/table"
)

// Placeholder is substituted for characters the table does not map.
// It is exactly as wide as a real code so per-line entry counts hold.
const Placeholder = "????"

// Separator joins code entries within a line. A star cannot be confused
// with a hex digit or a parenthesis, so output stays unambiguous to
// parse back.
const Separator = "★"

// Lookup is the tagged result of a single forward table lookup.
// The placeholder policy lives in formatting, not here.
type Lookup struct {
	Code   string
	Mapped bool
}

// Transcoder converts text to star-separated Big5 codes against an
// immutable table snapshot. It is pure: Transcode never fails and never
// drops characters.
type Transcoder struct {
	table    *table.Table
	annotate bool
}

// New creates a Transcoder. When annotate is set, each output entry is
// formatted as CODE(character) instead of bare CODE.
func New(tbl *table.Table, annotate bool) *Transcoder {
	return &Transcoder{table: tbl, annotate: annotate}
}

// Lookup resolves one character against the forward map.
func (t *Transcoder) Lookup(r rune) Lookup {
	code, ok := t.table.Code(r)
	return Lookup{Code: code, Mapped: ok}
}

// Transcode converts text line by line, character by character.
// Characters are iterated in code-point order; lines are rejoined with
// the input's newline. Empty input yields empty output, not one blank
// line's worth of entries.
func (t *Transcoder) Transcode(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = t.transcodeLine(line)
	}
	return strings.Join(out, "\n")
}

func (t *Transcoder) transcodeLine(line string) string {
	var entries []string
	for _, r := range line {
		l := t.Lookup(r)
		entry := l.Code
		if !l.Mapped {
			entry = Placeholder
		}
		if t.annotate {
			entry += "(" + string(r) + ")"
		}
		entries = append(entries, entry)
	}
	return strings.Join(entries, Separator)
}
