package refdata

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hanconv/big5/errors"
	"github.com/hanconv/big5/table"
)

// DefaultURL is the public plain-text Big5 mapping mirror.
const DefaultURL = "https://www.unicode.org/Public/MAPPINGS/OBSOLETE/EASTASIA/OTHER/BIG5.TXT"

// Client fetches the reference character ↔ code table.
// The core never depends on it; it serves cmd/mktable and display aids.
type Client struct {
	http *http.Client
	url  string
}

// NewClient creates a Client for the given URL, or DefaultURL when empty.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// URL returns the mirror URL the client fetches from.
func (c *Client) URL() string {
	return c.url
}

// Fetch retrieves and parses the reference table.
func (c *Client) Fetch(ctx context.Context) ([]table.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseFetch, errors.KindInvalidInput, err, "build request for "+c.url)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseFetch, errors.KindUnavailable, err, "get "+c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.BadStatus(c.url, resp.StatusCode)
	}

	records, err := Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	Logger().Debug("reference table fetched",
		zap.String("url", c.url),
		zap.Int("records", len(records)))
	return records, nil
}
