package openfoodfacts_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrojasc/despensa/internal/config"
	"github.com/mrojasc/despensa/pkg/clients/openfoodfacts"
)

func newTestClient(baseURL string) *openfoodfacts.APIClient {
	return openfoodfacts.NewClient(config.LookupConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestFetchProductKnownBarcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/7501234567890.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Cookies","brands":"Acme"}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).FetchProduct(context.Background(), "7501234567890")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Status)
	assert.Equal(t, "Cookies", resp.Product.ProductName)
	assert.Equal(t, "Acme", resp.Product.Brands)
}

func TestFetchProductUnknownBarcode(t *testing.T) {
	// The API answers unknown barcodes with a 404 that still carries a JSON
	// body; that must surface as status 0, not as an error.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).FetchProduct(context.Background(), "000")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Status)
}

func TestFetchProductMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>service unavailable</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchProduct(context.Background(), "123")
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode product")
}

func TestFetchProductTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(srv.URL).FetchProduct(context.Background(), "123")
	require.Error(t, err)
}

func TestFetchProductTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(config.LookupConfig{
		BaseURL: srv.URL,
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.FetchProduct(context.Background(), "123")
	require.Error(t, err)
}
