package refdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hanconv/big5/errors"
	"github.com/hanconv/big5/table"
)

// Parse reads a plain-text mapping in the Unicode.org BIG5.TXT layout:
// one "0xBBBB<tab>0xUUUU" pair per line, '#' starts a comment. Entries
// for single-byte codes, unmapped slots, and malformed lines are
// skipped; records come back in file order.
func Parse(r io.Reader) ([]table.Record, error) {
	var records []table.Record

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		code, ok := parseHex(fields[0])
		if !ok || code < 0x100 || code > 0xFFFF {
			continue
		}
		cp, ok := parseHex(fields[1])
		if !ok || !utf8.ValidRune(rune(cp)) {
			continue
		}

		records = append(records, table.Record{
			Codepoint: rune(cp),
			Code:      uint16(code),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.ParseFailed("reference table", err)
	}
	if len(records) == 0 {
		return nil, errors.InvalidData(errors.PhaseParse, nil, "no double-byte mappings found")
	}
	return records, nil
}

func parseHex(s string) (uint32, bool) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
