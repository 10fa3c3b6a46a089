package refdata_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hanconv/big5/errors"
	"github.com/hanconv/big5/refdata"
)

const sampleTable = `# BIG5.TXT sample
#
0x20	0x0020	# SPACE (single byte, skipped)
0xA140	0x3000	# IDEOGRAPHIC SPACE
0xA4A4	0x4E2D	# <CJK> 中
0xA4E5	0x6587	# <CJK> 文
garbage line
0xZZZZ	0x4E00	# bad hex, skipped
0xA440	0x110000	# invalid scalar, skipped
`

func TestParse(t *testing.T) {
	records, err := refdata.Parse(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []struct {
		cp   rune
		code uint16
	}{
		{0x3000, 0xA140},
		{'中', 0xA4A4},
		{'文', 0xA4E5},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(records), len(want), records)
	}
	for i, w := range want {
		if records[i].Codepoint != w.cp || records[i].Code != w.code {
			t.Errorf("record %d: got %+v, want %04X/%04X", i, records[i], w.cp, w.code)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := refdata.Parse(strings.NewReader("# only comments\n"))
	if err == nil {
		t.Fatal("expected error for mapping-free input")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindInvalidData}) {
		t.Errorf("got %v, want parse/invalid_data", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTable))
	}))
	defer srv.Close()

	records, err := refdata.NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := refdata.NewClient(srv.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseFetch, Kind: errors.KindBadStatus}) {
		t.Errorf("got %v, want fetch/bad_status", err)
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before the request

	_, err := refdata.NewClient(srv.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseFetch, Kind: errors.KindUnavailable}) {
		t.Errorf("got %v, want fetch/unavailable", err)
	}
}

func TestDefaultURL(t *testing.T) {
	c := refdata.NewClient("")
	if c.URL() != refdata.DefaultURL {
		t.Errorf("URL = %q, want DefaultURL", c.URL())
	}
}
