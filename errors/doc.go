// Package errors provides structured error types for the big5 module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: a path into the offending data, the offending
// value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfRange).
//		Path("record[12]", "codepoint").
//		Value(0x110000).
//		Detail("not a Unicode scalar value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseDecode, 65735, 64000)
//	err := errors.BadStatus(url, 503)
//
// Lookup misses are deliberately NOT errors in this module: a character with
// no Big5 code and a code with no character are ordinary results, modeled as
// values by the transcode package. This package covers the two real failure
// domains: a malformed table asset (fatal at startup) and reference-data
// retrieval.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
