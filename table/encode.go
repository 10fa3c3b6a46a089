package table

import (
	"encoding/base64"

	"github.com/hanconv/big5/table/internal/binary"
)

// Pack encodes records into the base64 blob format consumed by Decode.
// cmd/mktable uses this to regenerate the embedded asset.
func Pack(records []Record) string {
	w := binary.NewWriter()
	for _, rec := range records {
		w.WriteU24BE(uint32(rec.Codepoint))
		w.WriteU16BE(rec.Code)
	}
	return base64.StdEncoding.EncodeToString(w.Bytes())
}
