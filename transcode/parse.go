package transcode

import (
	"strings"

	"github.com/hanconv/big5/table"
)

// Unresolved replaces code entries that cannot be resolved back to a
// character. The forward direction keeps its own Placeholder.
const Unresolved = '�'

// Parse converts transcoder output back to text: lines split on the
// line break, entries split on the Separator, annotations stripped,
// each code resolved against the reverse map. Entries that do not
// resolve (the forward placeholder included) become Unresolved.
// Parse(Transcode(s)) == s for input fully covered by the table.
func Parse(tbl *table.Table, encoded string) string {
	if encoded == "" {
		return ""
	}

	lines := strings.Split(encoded, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = parseLine(tbl, line)
	}
	return strings.Join(out, "\n")
}

func parseLine(tbl *table.Table, line string) string {
	if line == "" {
		return ""
	}

	var b strings.Builder
	for _, entry := range strings.Split(line, Separator) {
		// Strip a CODE(character) annotation.
		if i := strings.IndexByte(entry, '('); i >= 0 {
			entry = entry[:i]
		}
		res := Resolve(tbl, entry)
		if res.State != Found {
			b.WriteRune(Unresolved)
			continue
		}
		b.WriteRune(res.Char)
	}
	return b.String()
}
