package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReaderReadU24BE(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00}, 0},
		{"one", []byte{0x00, 0x00, 0x01}, 1},
		{"cjk codepoint", []byte{0x00, 0x4E, 0x2D}, 0x4E2D},
		{"supplementary plane", []byte{0x02, 0x00, 0x01}, 0x20001},
		{"max", []byte{0xFF, 0xFF, 0xFF}, 0xFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data))
			got, err := r.ReadU24BE()
			if err != nil {
				t.Fatalf("ReadU24BE: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU24BE: got 0x%06X, want 0x%06X", got, tt.want)
			}
			if r.Position() != 3 {
				t.Errorf("position: got %d, want 3", r.Position())
			}
		})
	}

	r := NewReader(bytes.NewReader([]byte{0x00, 0x4E}))
	if _, err := r.ReadU24BE(); err == nil {
		t.Error("expected error for truncated u24")
	}
}

func TestReaderReadU16BE(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xA4, 0xA4, 0xA4, 0xE5}))
	got, err := r.ReadU16BE()
	if err != nil {
		t.Fatalf("ReadU16BE: %v", err)
	}
	if got != 0xA4A4 {
		t.Errorf("ReadU16BE: got 0x%04X, want 0xA4A4", got)
	}
	got, err = r.ReadU16BE()
	if err != nil {
		t.Fatalf("ReadU16BE: %v", err)
	}
	if got != 0xA4E5 {
		t.Errorf("ReadU16BE: got 0x%04X, want 0xA4E5", got)
	}
	if _, err := r.ReadU16BE(); err == nil {
		t.Error("expected error past EOF")
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU24BE(0x4E2D)
	w.WriteU16BE(0xA4A4)
	w.WriteU24BE(0x20001)
	w.WriteU16BE(0xFEFE)

	if w.Len() != 10 {
		t.Fatalf("Len: got %d, want 10", w.Len())
	}

	r := NewReader(bytes.NewReader(w.Bytes()))
	cp, _ := r.ReadU24BE()
	code, _ := r.ReadU16BE()
	if cp != 0x4E2D || code != 0xA4A4 {
		t.Errorf("record 0: got %06X/%04X", cp, code)
	}
	cp, _ = r.ReadU24BE()
	code, _ = r.ReadU16BE()
	if cp != 0x20001 || code != 0xFEFE {
		t.Errorf("record 1: got %06X/%04X", cp, code)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", r.Remaining())
	}
}

func TestParseError(t *testing.T) {
	base := errors.New("short record")
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	r.ReadByte()

	err := r.WrapError("records", base)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("expected *ParseError")
	}
	if pe.Position != 1 {
		t.Errorf("position: got %d, want 1", pe.Position)
	}
	if !errors.Is(err, base) {
		t.Error("ParseError should unwrap to base error")
	}
}
