package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrojasc/despensa/internal/domain/models"
	client "github.com/mrojasc/despensa/pkg/clients/openfoodfacts"
)

type stubLookupClient struct {
	resp *client.ProductResponse
	err  error
}

func (c *stubLookupClient) FetchProduct(context.Context, string) (*client.ProductResponse, error) {
	return c.resp, c.err
}

func productResponse(status int, name, brands string) *client.ProductResponse {
	resp := &client.ProductResponse{Status: status}
	resp.Product.ProductName = name
	resp.Product.Brands = brands
	return resp
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		client stubLookupClient
		want   models.ResolvedProduct
	}{
		{
			name:   "known product",
			client: stubLookupClient{resp: productResponse(1, "Cookies", "Acme")},
			want:   models.ResolvedProduct{Status: models.LookupFound, Name: "Cookies", Brand: "Acme"},
		},
		{
			name:   "known product without a name",
			client: stubLookupClient{resp: productResponse(1, "", "Acme")},
			want:   models.ResolvedProduct{Status: models.LookupFound, Name: "Unknown product", Brand: "Acme"},
		},
		{
			name:   "known product without a brand",
			client: stubLookupClient{resp: productResponse(1, "Cookies", "  ")},
			want:   models.ResolvedProduct{Status: models.LookupFound, Name: "Cookies", Brand: "N/A"},
		},
		{
			name:   "unknown barcode",
			client: stubLookupClient{resp: productResponse(0, "", "")},
			want:   models.ResolvedProduct{Status: models.LookupNotFound, Name: "Product not found"},
		},
		{
			name:   "lookup failure",
			client: stubLookupClient{err: errors.New("dial tcp: connection refused")},
			want: models.ResolvedProduct{
				Status: models.LookupError,
				Name:   "Connection error",
				Brand:  "dial tcp: connection refused",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := NewResolver(&tc.client, nil)
			got := resolver.Resolve(context.Background(), "7501234567890")
			assert.Equal(t, tc.want, got)
		})
	}
}
