package transcode

import (
	"strings"

	"github.com/hanconv/big5/table"
)

// State classifies the outcome of a reverse lookup.
type State int

const (
	// Incomplete means the candidate is not exactly 4 hex digits.
	Incomplete State = iota
	// NotFound means the code is well-formed but maps to no character.
	NotFound
	// Found means the code resolved to a character.
	Found
)

func (s State) String() string {
	switch s {
	case Incomplete:
		return "incomplete"
	case NotFound:
		return "not_found"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a candidate code.
// Char is only meaningful when State is Found.
type Resolution struct {
	Char  rune
	State State
}

// CodeLen is the exact number of hex digits in a Big5 code.
const CodeLen = 4

// Resolve looks up a candidate 4-hex-digit code in the reverse map.
// Candidates are case-insensitive. A candidate that is not exactly 4
// valid hex digits is Incomplete, never NotFound. Resolve is a pure
// function of the candidate and the table snapshot.
func Resolve(tbl *table.Table, candidate string) Resolution {
	if len(candidate) != CodeLen || !isHex(candidate) {
		return Resolution{State: Incomplete}
	}
	r, ok := tbl.Char(strings.ToUpper(candidate))
	if !ok {
		return Resolution{State: NotFound}
	}
	return Resolution{Char: r, State: Found}
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
