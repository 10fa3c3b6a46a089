package big5

import (
	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

// Resolution re-exports the reverse-lookup result type.
type Resolution = transcode.Resolution

// Reverse-lookup states.
const (
	Incomplete = transcode.Incomplete
	NotFound   = transcode.NotFound
	Found      = transcode.Found
)

// DefaultTable returns the process-wide table built from the embedded asset.
func DefaultTable() *table.Table {
	return table.Default()
}

// Transcode converts text to star-separated 4-hex-digit Big5 codes,
// substituting ???? for unmapped characters.
func Transcode(text string) string {
	return transcode.New(table.Default(), false).Transcode(text)
}

// TranscodeAnnotated is Transcode with each entry formatted as
// CODE(character).
func TranscodeAnnotated(text string) string {
	return transcode.New(table.Default(), true).Transcode(text)
}

// Resolve looks up a candidate 4-hex-digit code against the embedded table.
func Resolve(code string) Resolution {
	return transcode.Resolve(table.Default(), code)
}

// Parse converts Transcode output back to text, degrading unresolvable
// entries to U+FFFD.
func Parse(encoded string) string {
	return transcode.Parse(table.Default(), encoded)
}
