// Package refdata retrieves a network-hosted plain-text mirror of the
// Big5 character ↔ code mapping.
//
// This is a boundary collaborator, not part of the core: the embedded
// table in package table never depends on network availability. refdata
// exists for cmd/mktable, which regenerates the embedded asset from the
// reference mapping, and for anything that wants to display the public
// source alongside the compiled-in data.
//
// The expected wire layout is the Unicode.org BIG5.TXT format:
//
//	0xA4A4	0x4E2D	# <CJK>
//
// with '#' comments and one double-byte code per line. Single-byte
// entries and malformed lines are skipped during parsing.
package refdata
