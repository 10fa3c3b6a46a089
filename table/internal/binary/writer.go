package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing utilities for table record encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16BE writes a big-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16BE(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU24BE writes a big-endian 24-bit unsigned integer (fixed 3 bytes).
// The top byte of v must be zero.
func (w *Writer) WriteU24BE(v uint32) {
	w.buf.WriteByte(byte(v >> 16))
	w.buf.WriteByte(byte(v >> 8))
	w.buf.WriteByte(byte(v))
}
