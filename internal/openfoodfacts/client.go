package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Open Food Facts instance.
	DefaultBaseURL = "https://world.openfoodfacts.org"

	searchEndpoint  = "/cgi/search.pl"
	productEndpoint = "/api/v0/product"
	userAgent       = "shelfscan/1.0"

	// searchFields limits the response payload to the fields the merge step consumes.
	searchFields = "code,product_name,nutriments,brands,categories,quantity,serving_size,nutrition_grades"
)

// ErrNotFound is returned when a search or barcode lookup matches no product.
var ErrNotFound = errors.New("product not found in Open Food Facts")

// Client talks to the Open Food Facts API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a client for the given Open Food Facts instance.
// Pass an empty baseURL to use the public instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	// Open Food Facts asks clients to stay well under 100 req/min on the
	// product endpoints and 10 req/min on search, so pace requests at 2/sec
	// with a small burst for interactive use.
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Open Food Facts: %w", err)
	}

	return resp, nil
}

// Search looks a product up by name and returns the best match.
// Returns ErrNotFound when the search yields no products.
func (c *Client) Search(ctx context.Context, productName string) (*Product, error) {
	params := url.Values{}
	params.Set("search_terms", productName)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "5")
	params.Set("fields", searchFields)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, searchEndpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("search returned status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(searchResp.Products) == 0 {
		return nil, ErrNotFound
	}

	// First result is the best match.
	product := searchResp.Products[0]
	slog.Debug("Product found", "query", productName, "product", product.ProductName)
	return &product, nil
}

// ProductByBarcode fetches a product by its barcode (EAN-13, UPC, etc.).
// Returns ErrNotFound when the barcode is not in the database.
func (c *Client) ProductByBarcode(ctx context.Context, barcode string) (*Product, error) {
	reqURL := fmt.Sprintf("%s%s/%s.json", c.baseURL, productEndpoint, url.PathEscape(barcode))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("barcode lookup returned status %d: %s", resp.StatusCode, string(body))
	}

	var productResp struct {
		Status  int     `json:"status"`
		Product Product `json:"product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode product response: %w", err)
	}

	if productResp.Status != 1 {
		return nil, ErrNotFound
	}

	return &productResp.Product, nil
}
