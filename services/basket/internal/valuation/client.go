package valuation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const fetchTimeout = 5 * time.Second

// ProdutoFetcher is the lookup capability the valuator and aggregator
// consume. The returned error is reserved for unexpected failures that
// must reach the top of the request; expected absence and transport
// failures come back inside the Outcome.
type ProdutoFetcher interface {
	Fetch(ctx context.Context, produtoID int) (Outcome, error)
}

// Client fetches produtos from the items service. One HTTP call per
// Fetch, bounded by fetchTimeout, no retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(itemsURL string) *Client {
	if !strings.HasSuffix(itemsURL, "/") {
		itemsURL += "/"
	}
	return &Client{
		baseURL: itemsURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) Fetch(ctx context.Context, produtoID int) (Outcome, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s%d/", c.baseURL, produtoID),
		nil,
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Failed(), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NotFound(), nil
	}

	// Preco arrives as a quoted decimal string ("29.99"); decimal's
	// unmarshaler also accepts a bare number. Anything else fails the
	// whole lookup.
	var payload struct {
		Nome  string          `json:"nome"`
		Preco decimal.Decimal `json:"preco"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Failed(), nil
	}

	return Found(payload.Nome, payload.Preco), nil
}
