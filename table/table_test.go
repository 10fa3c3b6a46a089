package table

import (
	stderrors "errors"
	"fmt"
	"testing"

	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/hanconv/big5/errors"
)

// packRecords builds a base64 blob from records, in the asset wire format.
func packRecords(recs []Record) string {
	return Pack(recs)
}

func TestDecodeRecords(t *testing.T) {
	want := []Record{
		{Codepoint: '中', Code: 0xA4A4},
		{Codepoint: '文', Code: 0xA4E5},
		{Codepoint: 0x20001, Code: 0xFEFE}, // supplementary plane
	}
	blob := packRecords(want)

	got, err := DecodeRecords(blob, len(want))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("record count: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeRecordsErrors(t *testing.T) {
	valid := packRecords([]Record{{Codepoint: '中', Code: 0xA4A4}})

	tests := []struct {
		name string
		b64  string
		n    int
		want *errors.Error
	}{
		{"bad base64", "!!not-base64!!", 1, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindInvalidData}},
		{"short payload", valid, 2, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncated}},
		{"negative count", valid, -1, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidInput}},
		{"surrogate codepoint", packRecords([]Record{{Codepoint: 0xD800, Code: 0xA440}}), 1,
			&errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecords(tt.b64, tt.n)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, tt.want) {
				t.Errorf("got %v, want phase=%s kind=%s", err, tt.want.Phase, tt.want.Kind)
			}
		})
	}
}

func TestDecodeTolerantOfTrailingBytes(t *testing.T) {
	blob := packRecords([]Record{
		{Codepoint: '中', Code: 0xA4A4},
		{Codepoint: '文', Code: 0xA4E5},
	})

	// Ask for one record, leaving the second as trailing bytes.
	tbl, err := Decode(blob, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len: got %d, want 1", tbl.Len())
	}
	if _, ok := tbl.Code('文'); ok {
		t.Error("trailing record should not be decoded")
	}
}

func TestTableLookups(t *testing.T) {
	tbl := New([]Record{
		{Codepoint: '中', Code: 0xA4A4},
		{Codepoint: '文', Code: 0xA4E5},
	})

	code, ok := tbl.Code('中')
	if !ok || code != "A4A4" {
		t.Errorf(`Code('中') = %q, %v; want "A4A4", true`, code, ok)
	}
	if _, ok := tbl.Code('Ω'); ok {
		t.Error("unmapped character should miss")
	}

	r, ok := tbl.Char("A4E5")
	if !ok || r != '文' {
		t.Errorf(`Char("A4E5") = %q, %v; want 文, true`, r, ok)
	}
	if _, ok := tbl.Char("FFFF"); ok {
		t.Error("unmapped code should miss")
	}
}

func TestReverseDuplicateCodeLastWins(t *testing.T) {
	tbl := New([]Record{
		{Codepoint: '兀', Code: 0xA461},
		{Codepoint: '中', Code: 0xA461},
	})

	r, ok := tbl.Char("A461")
	if !ok || r != '中' {
		t.Errorf(`Char("A461") = %q, %v; want last-inserted 中`, r, ok)
	}
}

func TestDecodeIdempotent(t *testing.T) {
	blob := packRecords([]Record{{Codepoint: '中', Code: 0xA4A4}})

	a, err := Decode(blob, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, err := Decode(blob, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if a.Len() != b.Len() {
		t.Errorf("repeated decode differs: %d vs %d", a.Len(), b.Len())
	}
	ca, _ := a.Code('中')
	cb, _ := b.Code('中')
	if ca != cb {
		t.Errorf("repeated decode differs: %q vs %q", ca, cb)
	}
}

func TestDefaultAsset(t *testing.T) {
	tbl := Default()

	if tbl.Len() != assetRecords {
		t.Errorf("Len: got %d, want %d", tbl.Len(), assetRecords)
	}
	if Default() != tbl {
		t.Error("Default should return the same instance")
	}

	known := map[rune]string{
		'一': "A440",
		'大': "A46A",
		'中': "A4A4",
		'文': "A4E5",
	}
	for r, want := range known {
		got, ok := tbl.Code(r)
		if !ok || got != want {
			t.Errorf("Code(%q) = %q, %v; want %q", r, got, ok, want)
		}
	}
}

func TestDefaultRoundTrip(t *testing.T) {
	tbl := Default()
	for _, rec := range tbl.Records() {
		code, ok := tbl.Code(rec.Codepoint)
		if !ok {
			t.Fatalf("forward miss for %q", rec.Codepoint)
		}
		back, ok := tbl.Char(code)
		if !ok {
			t.Fatalf("reverse miss for %s", code)
		}
		if back != rec.Codepoint {
			t.Fatalf("round trip %q -> %s -> %q", rec.Codepoint, code, back)
		}
	}
}

func TestAssetNoDuplicateCodes(t *testing.T) {
	// Reverse last-write-wins is an open ambiguity in the record format;
	// this pins down that the shipped asset never triggers it.
	tbl := Default()
	byCode := make(map[uint16]rune, len(tbl.Records()))
	for _, rec := range tbl.Records() {
		if prev, dup := byCode[rec.Code]; dup {
			t.Errorf("code %04X maps both %q and %q", rec.Code, prev, rec.Codepoint)
		}
		byCode[rec.Code] = rec.Codepoint
	}
	if len(byCode) != len(tbl.Records()) {
		t.Errorf("distinct codes %d != records %d", len(byCode), len(tbl.Records()))
	}
}

func TestAssetMatchesReferenceEncoding(t *testing.T) {
	// Cross-check a sample of common Level 1 characters against the
	// x/text Big5 implementation.
	tbl := Default()
	enc := traditionalchinese.Big5.NewEncoder()

	for _, r := range []rune("一大中文人天心月火水金木土王生") {
		raw, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			t.Fatalf("reference encode %q: %v", r, err)
		}
		if len(raw) != 2 {
			t.Fatalf("reference encode %q: got %d bytes", r, len(raw))
		}
		want := fmt.Sprintf("%02X%02X", raw[0], raw[1])
		got, ok := tbl.Code(r)
		if !ok || got != want {
			t.Errorf("Code(%q) = %q, %v; reference says %q", r, got, ok, want)
		}
	}
}

func FuzzDecodeRecords(f *testing.F) {
	f.Add(packRecords([]Record{{Codepoint: '中', Code: 0xA4A4}}), 1)
	f.Add("", 0)
	f.Add("AAAA", 100)
	f.Add("!!!", 3)

	f.Fuzz(func(t *testing.T, b64 string, n int) {
		records, err := DecodeRecords(b64, n)
		if err != nil {
			return
		}
		if len(records) != n {
			t.Errorf("decoded %d records, asked for %d", len(records), n)
		}
	})
}
