// Package table decodes the packed Big5 (CP950) character table and
// exposes the bidirectional character ↔ code mapping.
//
// # Record Format
//
// The table ships as a base64-encoded blob of fixed-width 5-byte records:
//
//	bytes [0..3)  24-bit big-endian Unicode codepoint
//	bytes [3..5)  16-bit big-endian Big5 code
//
// There are no separators, headers, or trailing padding beyond base64's
// own. The embedded asset (asset.go) holds the real CP950 table; the
// record count is compiled in beside the blob.
//
// # Construction
//
// Decode builds the forward map (character → 4-hex-digit code) and then
// derives the reverse map (code → character) in a single pass. Both maps
// are immutable after construction, so lookups need no synchronization.
// Default exposes a process-wide table built once from the embedded asset;
// a malformed asset is a build defect and panics at first use.
//
// # Error Handling
//
// Decoding errors carry the structured types from the errors package:
//
//	[load] invalid_data: table blob is not valid base64
//	[decode] truncated: need 65735 bytes, have 64000
//	[decode] out_of_range at record[12].codepoint: value 1114112 out of range for Unicode scalar value
//
// Lookup misses are not errors; Code and Char report them with a bool.
package table
