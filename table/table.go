package table

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hanconv/big5/errors"
	"github.com/hanconv/big5/table/internal/binary"
)

// Table holds the bidirectional character ↔ Big5 code mapping.
// Both maps are built once and never mutated afterwards, so a Table is
// safe for concurrent readers without locking.
type Table struct {
	forward map[rune]string
	reverse map[string]rune
	records []Record
}

// DecodeRecords decodes a base64-encoded blob of n packed records.
// A blob that is not valid base64 or is shorter than n*RecordSize bytes
// is a configuration defect and yields an error; trailing bytes beyond
// the n records are ignored.
func DecodeRecords(b64 string, n int) ([]Record, error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseDecode, fmt.Sprintf("negative record count %d", n))
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, errors.Load("table blob is not valid base64", err)
	}
	if n > len(raw)/RecordSize {
		return nil, errors.Truncated(errors.PhaseDecode, n*RecordSize, len(raw))
	}

	r := binary.NewReader(bytes.NewReader(raw))
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		cp, err := r.ReadU24BE()
		if err != nil {
			return nil, r.WrapError("records", err)
		}
		code, err := r.ReadU16BE()
		if err != nil {
			return nil, r.WrapError("records", err)
		}
		if !utf8.ValidRune(rune(cp)) {
			return nil, errors.OutOfRange(errors.PhaseDecode,
				[]string{fmt.Sprintf("record[%d]", i), "codepoint"},
				cp, "Unicode scalar value")
		}
		records = append(records, Record{Codepoint: rune(cp), Code: code})
	}
	return records, nil
}

// New builds a Table from decoded records. The forward map keys are
// unique in well-formed data; should two records ever share a Big5 code,
// the last-inserted reverse entry wins.
func New(records []Record) *Table {
	forward := make(map[rune]string, len(records))
	for _, rec := range records {
		forward[rec.Codepoint] = rec.Hex()
	}
	reverse := make(map[string]rune, len(forward))
	for _, rec := range records {
		reverse[rec.Hex()] = rec.Codepoint
	}
	return &Table{forward: forward, reverse: reverse, records: records}
}

// Decode decodes a base64 blob of n records and builds the Table.
// Decoding the same blob twice yields the same table; construction has
// no other side effects.
func Decode(b64 string, n int) (*Table, error) {
	records, err := DecodeRecords(b64, n)
	if err != nil {
		return nil, err
	}
	return New(records), nil
}

// Code returns the 4-hex-digit Big5 code for a character.
func (t *Table) Code(r rune) (string, bool) {
	code, ok := t.forward[r]
	return code, ok
}

// Char returns the character for a normalized (uppercase) 4-hex-digit code.
func (t *Table) Char(code string) (rune, bool) {
	r, ok := t.reverse[code]
	return r, ok
}

// Len returns the number of forward mappings.
func (t *Table) Len() int {
	return len(t.forward)
}

// Records returns the decoded records in blob order.
// The returned slice is shared; callers must not modify it.
func (t *Table) Records() []Record {
	return t.records
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the process-wide Table decoded from the embedded asset.
// The asset is a build-time artifact, so a malformed blob is a build
// defect: Default panics rather than returning an error.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Decode(assetBlob, assetRecords)
		if err != nil {
			panic(err)
		}
		defaultTable = t
		Logger().Debug("big5 table ready", zap.Int("records", t.Len()))
	})
	return defaultTable
}
