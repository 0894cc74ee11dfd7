package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public spreadsheet endpoint root.
const DefaultBaseURL = "https://docs.google.com/spreadsheets/d"

// maxBodySize caps a single response body.
const maxBodySize = 8 << 20

// ClientOptions configures a Client.
type ClientOptions struct {
	BaseURL     string
	SheetID     string
	Timeout     time.Duration
	MinInterval time.Duration // minimum spacing between requests once Burst is spent
	Burst       int
}

// Client fetches sheets from the gviz endpoint of a single spreadsheet.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	sheetID     string
	logger      zerolog.Logger
}

// NewClient creates a new sheet client.
func NewClient(opts ClientOptions, logger zerolog.Logger) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	burst := max(opts.Burst, 1)

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		rateLimiter: rate.NewLimiter(limit, burst),
		baseURL:     baseURL,
		sheetID:     opts.SheetID,
		logger:      logger,
	}
}

// URL returns the endpoint for the named sheet.
func (c *Client) URL(sheet string) string {
	return fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&sheet=%s",
		c.baseURL, url.PathEscape(c.sheetID), url.QueryEscape(sheet))
}

// Fetch returns the raw response body for the named sheet.
func (c *Client) Fetch(ctx context.Context, sheet string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit: %w", ErrNetworkFailure, err)
	}

	endpoint := c.URL(sheet)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrNetworkFailure, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("sheet", sheet).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("fetched sheet")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP error! status: %d", ErrNetworkFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrNetworkFailure, err)
	}

	return body, nil
}

// FetchTable fetches the named sheet and decodes it.
func (c *Client) FetchTable(ctx context.Context, sheet string, opts ParseOptions) (Table, error) {
	body, err := c.Fetch(ctx, sheet)
	if err != nil {
		return Table{}, err
	}

	table, err := Parse(body, opts)
	if err != nil {
		return Table{}, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return table, nil
}
