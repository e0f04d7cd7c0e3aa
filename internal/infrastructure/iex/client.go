package iex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gocarina/gocsv"
	quotev1 "github.com/ppgiii/ViZ/internal/domain/quote/v1"
	"github.com/ppgiii/ViZ/pkg/errors"
)

// Config is the quote client configuration.
type Config struct {
	BaseURL string        `env:"BASE_URL" envDefault:"https://ws-api.iextrading.com/1.0"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Client fetches last trade quotes from the IEX TOPS endpoint.
type Client struct {
	config Config
	http   *http.Client
}

// Ensure Client implements QuoteFetcher interface
var _ QuoteFetcher = (*Client)(nil)

// NewClient creates a new quote client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// FetchLast retrieves the last trade for symbol. The symbol is sent as
// given, callers must not pass an empty string.
func (c *Client) FetchLast(ctx context.Context, symbol string) (*quotev1.Quote, error) {
	endpoint := fmt.Sprintf("%s/tops/last?format=csv&symbols=%s", c.config.BaseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.QuoteNetworkError), "symbol")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.QuoteNetworkError), "")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("status code %d for symbol %s", resp.StatusCode, symbol),
			string(errors.QuoteNetworkError), "symbol")
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("status code %d for symbol %s", resp.StatusCode, symbol),
			string(errors.QuoteUnknownSymbolError), "symbol")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.QuoteNetworkError), "")
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("empty body for symbol %s", symbol),
			string(errors.QuoteEmptyResponseError), "symbol")
	}

	var rows []LastRow
	if err := gocsv.UnmarshalBytes(body, &rows); err != nil {
		return nil, errors.NewErrorDetails(err.Error(), string(errors.QuoteParseError), "")
	}

	if len(rows) == 0 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("no rows for symbol %s", symbol),
			string(errors.QuoteEmptyResponseError), "symbol")
	}

	// one symbol is requested, anything beyond one row is a malformed reply
	if len(rows) > 1 {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("%d rows for single symbol %s", len(rows), symbol),
			string(errors.QuoteMultiRowError), "symbol")
	}

	row := rows[0]
	return &quotev1.Quote{
		Symbol:    row.Symbol,
		Price:     row.Price,
		Size:      row.Size,
		Timestamp: time.UnixMilli(row.Time).UTC(),
	}, nil
}
