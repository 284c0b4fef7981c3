package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mrojasc/despensa/internal/config"
)

const snapshotRange = "Inventario!A:G"

// Exporter defines the snapshot export operation used by the scheduler.
type Exporter interface {
	AppendSnapshot(ctx context.Context, rows [][]interface{}) error
}

// GoogleSheetExporter implements the Exporter interface using the official
// Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSnapshot appends the provided inventory rows below the existing data.
func (e *GoogleSheetExporter) AppendSnapshot(ctx context.Context, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	payload := &sheetsapi.ValueRange{Values: rows}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, snapshotRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append snapshot rows into range %s: %w", snapshotRange, err)
	}

	e.logger.Debug("snapshot appended to sheet", zap.Int("rows", len(rows)))
	return nil
}
