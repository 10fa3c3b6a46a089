package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/hanconv/big5/refdata"
	"github.com/hanconv/big5/table"
)

func main() {
	var (
		url    = flag.String("url", refdata.DefaultURL, "Reference table URL")
		in     = flag.String("in", "", "Local reference table file (skips the network)")
		out    = flag.String("out", "table/asset.go", "Output Go source file")
		verify = flag.Bool("verify", false, "Cross-check records against the x/text Big5 encoder")
	)
	flag.Parse()

	if err := run(*url, *in, *out, *verify); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(url, in, out string, verify bool) error {
	records, err := loadRecords(url, in)
	if err != nil {
		return err
	}
	records = canonicalize(records)

	if verify {
		verifyRecords(records)
	}

	src := emit(records)
	if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Printf("wrote %s: %d records\n", out, len(records))
	return nil
}

func loadRecords(url, in string) ([]table.Record, error) {
	if in == "" {
		return refdata.NewClient(url).Fetch(context.Background())
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", in, err)
	}
	defer f.Close()
	return refdata.Parse(f)
}

// canonicalize sorts by Big5 code and keeps one record per codepoint.
// Big5 encodes a handful of characters twice; the lowest code wins so
// the forward map stays deterministic.
func canonicalize(records []table.Record) []table.Record {
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })

	seen := make(map[rune]bool, len(records))
	kept := make([]table.Record, 0, len(records))
	for _, rec := range records {
		if seen[rec.Codepoint] {
			continue
		}
		seen[rec.Codepoint] = true
		kept = append(kept, rec)
	}
	return kept
}

// verifyRecords reports records whose code disagrees with the x/text
// Big5 encoder. Mirrors differ on a few symbol rows, so mismatches are
// reported rather than fatal.
func verifyRecords(records []table.Record) {
	enc := traditionalchinese.Big5.NewEncoder()

	mismatches := 0
	for _, rec := range records {
		raw, err := enc.Bytes([]byte(rec.Char()))
		if err != nil || len(raw) != 2 {
			continue
		}
		if got := uint16(raw[0])<<8 | uint16(raw[1]); got != rec.Code {
			mismatches++
			if mismatches <= 10 {
				fmt.Fprintf(os.Stderr, "verify: %q is %04X here, %04X in x/text\n", rec.Codepoint, rec.Code, got)
			}
		}
	}
	fmt.Fprintf(os.Stderr, "verify: %d of %d records disagree with x/text\n", mismatches, len(records))
}

const blobLineWidth = 100

func emit(records []table.Record) string {
	blob := table.Pack(records)

	var b strings.Builder
	fmt.Fprintf(&b, `// Code generated by cmd/mktable. DO NOT EDIT.
//
// CP950 (Big5) character table: %d records, 5 bytes each, packed as a
// 24-bit big-endian codepoint followed by a 16-bit big-endian code,
// sorted by Big5 code. Regenerate with:
//
//	go run ./cmd/mktable -out table/asset.go

package table

// assetRecords is the number of packed records in assetBlob.
const assetRecords = %d

// assetBlob is the base64-encoded packed table.
const assetBlob = "" +
`, len(records), len(records))

	for i := 0; i < len(blob); i += blobLineWidth {
		end := i + blobLineWidth
		if end > len(blob) {
			end = len(blob)
		}
		fmt.Fprintf(&b, "\t%q", blob[i:end])
		if end < len(blob) {
			b.WriteString(" +")
		}
		b.WriteString("\n")
	}
	return b.String()
}
