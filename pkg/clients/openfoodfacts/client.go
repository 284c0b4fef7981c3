package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mrojasc/despensa/internal/config"
)

// Client exposes the product lookup operation used by the application.
type Client interface {
	FetchProduct(ctx context.Context, code string) (*ProductResponse, error)
}

// ProductResponse mirrors the lookup API payload. Status is 1 when the barcode
// is known; the Product fields are only meaningful in that case.
type ProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
	} `json:"product"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a lookup client using the provided configuration values.
func NewClient(cfg config.LookupConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{httpClient: restyClient}
}

// FetchProduct issues a single lookup request for the given barcode.
// The API reports unknown barcodes through the status field of the body
// (sometimes alongside a 404), so any response carrying decodable JSON is
// returned as-is; only transport failures and undecodable bodies error.
func (c *APIClient) FetchProduct(ctx context.Context, code string) (*ProductResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/v2/product/%s.json", url.PathEscape(code)))
	if err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", code, err)
	}

	result := new(ProductResponse)
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return nil, fmt.Errorf("decode product %s payload: %w", code, err)
	}

	return result, nil
}
