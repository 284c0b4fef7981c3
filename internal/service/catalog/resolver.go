package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mrojasc/despensa/internal/domain/models"
	client "github.com/mrojasc/despensa/pkg/clients/openfoodfacts"
)

// Display texts. These end up verbatim in persisted records, so changing them
// changes what existing clients see in the inventory table.
const (
	nameUnknown    = "Unknown product"
	nameNotFound   = "Product not found"
	nameConnError  = "Connection error"
	brandUnbranded = "N/A"
)

// Resolver enriches a scanned barcode with catalog metadata.
type Resolver struct {
	client client.Client
	logger *zap.Logger
}

// NewResolver wires a new resolver instance.
func NewResolver(lookupClient client.Client, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{client: lookupClient, logger: logger}
}

// Resolve performs a single catalog lookup for the code. It never fails: every
// lookup outcome, including transport errors, is folded into the returned
// product so ingestion can always proceed.
func (r *Resolver) Resolve(ctx context.Context, code string) models.ResolvedProduct {
	resp, err := r.client.FetchProduct(ctx, code)
	if err != nil {
		r.logger.Warn("product lookup failed", zap.String("code", code), zap.Error(err))
		return models.ResolvedProduct{
			Status: models.LookupError,
			Name:   nameConnError,
			Brand:  err.Error(),
		}
	}

	if resp.Status != 1 {
		r.logger.Debug("product not in catalog", zap.String("code", code))
		return models.ResolvedProduct{
			Status: models.LookupNotFound,
			Name:   nameNotFound,
		}
	}

	name := strings.TrimSpace(resp.Product.ProductName)
	if name == "" {
		name = nameUnknown
	}

	brand := strings.TrimSpace(resp.Product.Brands)
	if brand == "" {
		brand = brandUnbranded
	}

	return models.ResolvedProduct{
		Status: models.LookupFound,
		Name:   name,
		Brand:  brand,
	}
}
