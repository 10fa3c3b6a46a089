// Package big5 converts Traditional Chinese text to and from Big5
// (CP950) hexadecimal code points using a static character ↔ code table.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	big5/            Root package with the high-level façade API
//	├── table/       Packed table asset, blob decoding, forward/reverse maps
//	├── transcode/   Forward transcoding, reverse resolution, output parsing
//	├── refdata/     Network-hosted reference mapping (boundary collaborator)
//	├── errors/      Structured error types
//	└── cmd/
//	    ├── big5/    CLI and interactive terminal UI
//	    └── mktable/ Regenerates the embedded table asset
//
// # Quick Start
//
// Forward transcoding:
//
//	big5.Transcode("中文")           // "A4A4★A4E5"
//	big5.TranscodeAnnotated("中")    // "A4A4(中)"
//	big5.Transcode("中Ω")            // "A4A4★????"
//
// Reverse lookup:
//
//	res := big5.Resolve("A4A4")
//	switch res.State {
//	case big5.Found:
//	    fmt.Println(string(res.Char)) // "中"
//	case big5.NotFound:
//	    // well-formed code, no character
//	case big5.Incomplete:
//	    // not 4 hex digits yet
//	}
//
// # Table Lifecycle
//
// The table is decoded once from an embedded base64 asset at first use
// and is immutable afterwards. Decoding thousands of fixed-width records
// costs about a millisecond; every lookup after that is an O(1) map
// access. A malformed asset is a build defect and panics at startup —
// there is nothing to retry.
//
// # Thread Safety
//
// All operations are pure reads against the immutable table, so every
// exported function is safe for concurrent use.
package big5
