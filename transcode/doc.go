// Package transcode converts between Traditional Chinese text and
// star-separated Big5 code strings.
//
// # Forward Direction
//
// A Transcoder walks input line by line and character by character in
// code-point order, so a supplementary-plane character is one entry,
// not two. Each character becomes its 4-hex-digit code or the ????
// placeholder; entries within a line are joined with ★ and lines with
// the newline:
//
//	New(tbl, false).Transcode("中文")  // "A4A4★A4E5"
//	New(tbl, true).Transcode("中")    // "A4A4(中)"
//
// Transcoding is pure and total: it never fails and never drops a
// character, so the entry count per output line always equals the
// character count of the input line. Empty input produces empty output.
//
// # Reverse Direction
//
// Resolve classifies a candidate code as Incomplete (not exactly 4 hex
// digits), NotFound (well-formed but unmapped), or Found. The two miss
// states are distinct so a caller can style them differently.
//
// Parse inverts Transcode for fully mapped input, degrading anything
// unresolvable to U+FFFD.
//
// # Purity
//
// Nothing in this package mutates the table; all operations are
// synchronous in-memory lookups against an immutable snapshot and are
// safe for concurrent use.
package transcode
