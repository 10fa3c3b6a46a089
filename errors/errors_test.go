package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindOutOfRange,
				Path:   []string{"record[3]", "codepoint"},
				Detail: "not a Unicode scalar value",
			},
			contains: []string{"[decode]", "out_of_range", "record[3].codepoint", "not a Unicode scalar value"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindTruncated,
			},
			contains: []string{"[load]", "truncated"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseFetch,
				Kind:   KindBadStatus,
				Detail: "GET failed",
				Cause:  errors.New("connection refused"),
			},
			contains: []string{"[fetch]", "bad_status", "GET failed", "caused by", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindTruncated,
		Path:  []string{"blob"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseLoad, Kind: KindTruncated}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidData}) {
		t.Error("Is should not match different kind")
	}
	if err.Is(errors.New("plain")) {
		t.Error("Is should not match non-Error types")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("base64 junk")
	err := New(PhaseLoad, KindInvalidData).
		Path("asset").
		Value("!!").
		Cause(cause).
		Detail("bad padding at byte %d", 42).
		Build()

	if err.Phase != PhaseLoad || err.Kind != KindInvalidData {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "bad padding at byte 42" {
		t.Errorf("Detail not formatted: %q", err.Detail)
	}
	if !errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindInvalidData}) {
		t.Error("built error should satisfy errors.Is")
	}
	if !errors.Is(err, cause) {
		t.Error("built error should unwrap to cause")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"Truncated", Truncated(PhaseDecode, 100, 42), PhaseDecode, KindTruncated, "need 100 bytes, have 42"},
		{"OutOfRange", OutOfRange(PhaseDecode, nil, 0x110000, "codepoint"), PhaseDecode, KindOutOfRange, "codepoint"},
		{"NotFound", NotFound(PhaseParse, "code", "FFFF"), PhaseParse, KindNotFound, `code "FFFF" not found`},
		{"InvalidInput", InvalidInput(PhaseEmit, "no records"), PhaseEmit, KindInvalidInput, "no records"},
		{"BadStatus", BadStatus("http://example.com/t.txt", 503), PhaseFetch, KindBadStatus, "status 503"},
		{"NotInitialized", NotInitialized(PhaseLoad, "table"), PhaseLoad, KindNotInitialized, "table not initialized"},
		{"Load", Load("asset blob", errors.New("x")), PhaseLoad, KindInvalidData, "asset blob"},
		{"ParseFailed", ParseFailed("line 7", errors.New("x")), PhaseParse, KindInvalidData, "parse line 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
