// Package catalog serves the category tree and the remote product catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

// Product is the remote catalog's wire shape.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
}

// Scope identifies the navigation state a fetch was issued for.
type Scope struct {
	CategoryID    string `json:"categoryId,omitempty"`
	SubcategoryID string `json:"subcategoryId,omitempty"`
}

// Snapshot is the tri-state view of the latest catalog fetch: loading, error,
// or ready with products.
type Snapshot struct {
	Scope    Scope     `json:"scope"`
	Loading  bool      `json:"loading"`
	Err      error     `json:"-"`
	Products []Product `json:"products,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	sfg     singleflight.Group // Collapses concurrent full-catalog fetches

	mu     sync.Mutex
	gen    uint64 // Bumped per Refresh; a response for an older gen is stale
	latest Snapshot
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Products fetches the whole remote catalog. There is no pagination and no
// query parameter; filtering happens on our side. Failures surface as an
// error state, never a retry.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

func (c *Client) fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request failed: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch failed: status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products failed: %w", err)
	}
	return products, nil
}

// Refresh fetches the catalog for a navigation scope and records the result
// as the latest snapshot. Superseding refreshes are allowed to race; a
// response that lands after navigation has moved on is discarded, so only
// the last-requested scope's data is ever authoritative.
func (c *Client) Refresh(ctx context.Context, scope Scope) Snapshot {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.latest = Snapshot{Scope: scope, Loading: true}
	c.mu.Unlock()

	products, err := c.Products(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// Stale response: navigation changed while this fetch was in
		// flight. Leave the newer snapshot alone.
		return c.latest
	}
	if err != nil {
		c.latest = Snapshot{Scope: scope, Err: err}
	} else {
		c.latest = Snapshot{Scope: scope, Products: filterForScope(products, scope)}
	}
	return c.latest
}

// Latest returns the current snapshot without fetching.
func (c *Client) Latest() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

func filterForScope(products []Product, scope Scope) []Product {
	if scope.CategoryID == "" {
		return products
	}
	cat, ok := FindCategory(scope.CategoryID)
	if !ok {
		return []Product{}
	}
	return FilterByCategory(products, cat.Name)
}

// FilterByCategory keeps products whose category matches name exactly.
func FilterByCategory(products []Product, name string) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == name {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Featured keeps products flagged for the home page.
func Featured(products []Product) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
