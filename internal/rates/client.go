package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theirongolddev/freedom/internal/model"
)

const (
	// DefaultBaseURL is the public exchangerate-api endpoint root.
	DefaultBaseURL = "https://api.exchangerate-api.com/v4"

	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// Client fetches live rate tables over HTTP. Any fetch or parse failure
// degrades silently to the fixed fallback table, so Rates never returns
// an error from this implementation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// latestResponse is the raw /v4/latest/{base} payload.
type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates implements Resolver. The returned table is filtered to the four
// supported codes; missing codes are not invented, so a thin upstream
// response can still yield ErrUnsupportedCurrency later at apply time.
func (c *Client) Rates(ctx context.Context, base model.Currency) (Table, error) {
	raw, err := c.fetch(ctx, base)
	if err != nil {
		return FallbackTable(base), nil
	}

	table := make(Table, len(model.Currencies))
	for _, code := range model.Currencies {
		if rate, ok := raw.Rates[string(code)]; ok && rate > 0 {
			table[code] = rate
		}
	}
	table[base] = 1

	return table, nil
}

func (c *Client) fetch(ctx context.Context, base model.Currency) (*latestResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("rates: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "github.com/theirongolddev/freedom/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("rates: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("rates: reading response: %w", err)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("rates: parsing response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("rates: empty rate table for %s", base)
	}

	return &parsed, nil
}
