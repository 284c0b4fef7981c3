package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mrojasc/despensa/internal/domain/models"
)

// ErrMissingCode signals an ingestion request without a product code. No store
// write happens in that case.
var ErrMissingCode = errors.New("product code is required")

const (
	// Fixed-width fractional seconds keep lexicographic order equal to
	// chronological order; RFC3339Nano trims trailing zeros and would not.
	recordedAtLayout   = "2006-01-02T15:04:05.000000Z"
	purchaseDateLayout = "02/01/2006"

	expirationUnset = "N/A"
	defaultQuantity = 1
)

// Service describes the inventory operations the HTTP layer can perform.
type Service interface {
	Ingest(ctx context.Context, input IngestInput) (models.InventoryRecord, error)
	List(ctx context.Context) ([]models.InventoryRecord, error)
}

// Resolver enriches a product code with catalog metadata.
type Resolver interface {
	Resolve(ctx context.Context, code string) models.ResolvedProduct
}

// Store is the external inventory store: append a record, scan them all.
type Store interface {
	Insert(ctx context.Context, record models.InventoryRecord) error
	FindAll(ctx context.Context) ([]models.InventoryRecord, error)
}

// IngestInput carries the raw form values of one submission.
type IngestInput struct {
	Code       string
	Quantity   string
	Expiration string
}

// TrackerService is the production Service implementation.
type TrackerService struct {
	resolver Resolver
	store    Store
	now      func() time.Time
	logger   *zap.Logger
}

// NewTrackerService wires a new service instance.
func NewTrackerService(resolver Resolver, store Store, logger *zap.Logger) *TrackerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackerService{
		resolver: resolver,
		store:    store,
		now:      time.Now,
		logger:   logger,
	}
}

// Ingest resolves the product, builds a normalized record and appends it to
// the store. Lookup failures are encoded into the record, never returned;
// store failures are fatal to the request.
func (s *TrackerService) Ingest(ctx context.Context, input IngestInput) (models.InventoryRecord, error) {
	if strings.TrimSpace(input.Code) == "" {
		return models.InventoryRecord{}, ErrMissingCode
	}

	resolved := s.resolver.Resolve(ctx, input.Code)
	record := s.buildRecord(input, resolved, s.now().UTC())

	if err := s.store.Insert(ctx, record); err != nil {
		return models.InventoryRecord{}, fmt.Errorf("store inventory record: %w", err)
	}

	s.logger.Info("record ingested",
		zap.String("code", record.Code),
		zap.String("product_name", record.ProductName),
		zap.Int("quantity", record.Quantity))

	return record, nil
}

// List scans the full record set and orders it ascending by (code,
// recorded_at). The sort is stable, so records with equal keys keep the
// store's relative order.
func (s *TrackerService) List(ctx context.Context) ([]models.InventoryRecord, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan inventory: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Code != records[j].Code {
			return records[i].Code < records[j].Code
		}
		return records[i].RecordedAt < records[j].RecordedAt
	})

	return records, nil
}

func (s *TrackerService) buildRecord(input IngestInput, resolved models.ResolvedProduct, now time.Time) models.InventoryRecord {
	quantity, err := coerceQuantity(input.Quantity)
	if err != nil {
		// Ingestion still succeeds with the default; the rejected value is
		// kept observable through the log.
		s.logger.Warn("unusable quantity, defaulting to 1",
			zap.String("code", input.Code),
			zap.String("raw", input.Quantity),
			zap.Error(err))
	}

	expiration := strings.TrimSpace(input.Expiration)
	if expiration == "" {
		expiration = expirationUnset
	}

	var extraInfo string
	switch resolved.Status {
	case models.LookupFound:
		extraInfo = fmt.Sprintf("Brand: %s", resolved.Brand)
	case models.LookupError:
		extraInfo = resolved.Brand
	}

	return models.InventoryRecord{
		Code:           input.Code,
		RecordedAt:     now.Format(recordedAtLayout),
		ProductName:    resolved.Name,
		Quantity:       quantity,
		PurchaseDate:   now.Format(purchaseDateLayout),
		ExpirationDate: expiration,
		ExtraInfo:      extraInfo,
	}
}

func coerceQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultQuantity, nil
	}

	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return defaultQuantity, fmt.Errorf("parse quantity %q: %w", raw, err)
	}
	if quantity < 1 {
		return defaultQuantity, fmt.Errorf("quantity %d below minimum", quantity)
	}

	return quantity, nil
}
