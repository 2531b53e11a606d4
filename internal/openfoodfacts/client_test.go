package openfoodfacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("")

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "leche entera", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "1", r.URL.Query().Get("json"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))
		assert.Contains(t, r.Header.Get("User-Agent"), "shelfscan")

		response := map[string]interface{}{
			"products": []Product{
				{
					Code:        "7801234567",
					ProductName: "Leche Entera",
					Brands:      "Soprole, Nestle",
					Categories:  "dairy drinks",
					Quantity:    "1L",
					Nutriments:  Nutriments{EnergyKcal: 61, Proteins: 3.2},
				},
				{Code: "999", ProductName: "Other"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.Search(context.Background(), "leche entera")

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "7801234567", product.Code)
	assert.Equal(t, "Leche Entera", product.ProductName)
	assert.Equal(t, 61.0, product.Nutriments.EnergyKcal)
}

func TestSearch_NoProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"products": []}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.Search(context.Background(), "producto inexistente")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, product)
}

func TestSearch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.Search(context.Background(), "leche")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Nil(t, product)
}

func TestSearch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`not json`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), "leche")

	assert.Error(t, err)
}

func TestProductByBarcode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/product/7801234567.json", r.URL.Path)

		response := map[string]interface{}{
			"status": 1,
			"product": Product{
				Code:        "7801234567",
				ProductName: "Leche Entera",
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.ProductByBarcode(context.Background(), "7801234567")

	require.NoError(t, err)
	assert.Equal(t, "Leche Entera", product.ProductName)
}

func TestProductByBarcode_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"status": 0}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.ProductByBarcode(context.Background(), "0000000000")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, product)
}

func TestSearch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "leche")
	assert.Error(t, err)
}
