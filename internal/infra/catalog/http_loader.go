package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domproduct "example.com/clothing-shop/internal/domain/product"
)

// DefaultFeedURL is the demo clothing feed the storefront ships with.
const DefaultFeedURL = "https://gist.githubusercontent.com/rconnolly/" +
	"d37a491b50203d66d043c26f33dbd798/raw/" +
	"37b5b68c527ddbe824eaed12073d266d5455432a/clothing-compact.json"

// HTTPLoader fetches the product feed over HTTP. It is the one
// external call the core makes, awaited once at startup.
type HTTPLoader struct {
	url    string
	client *http.Client
}

func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	if url == "" {
		url = DefaultFeedURL
	}
	return &HTTPLoader{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (l *HTTPLoader) LoadCatalog(ctx context.Context) ([]domproduct.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var items []domproduct.Product
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return items, nil
}
