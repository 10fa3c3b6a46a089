package table

import "fmt"

// RecordSize is the fixed width in bytes of one packed table record:
// a 24-bit big-endian codepoint followed by a 16-bit big-endian Big5 code.
const RecordSize = 5

// Record is one entry of the packed character table: a Unicode scalar
// value paired with its Big5 (CP950) code.
type Record struct {
	Codepoint rune
	Code      uint16
}

// Hex formats the Big5 code as 4 uppercase hex digits, zero-padded.
func (r Record) Hex() string {
	return fmt.Sprintf("%04X", r.Code)
}

// Char returns the single-character string for the record's codepoint.
func (r Record) Char() string {
	return string(r.Codepoint)
}
