package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrojasc/despensa/internal/config"
	"github.com/mrojasc/despensa/internal/domain/models"
	"github.com/mrojasc/despensa/internal/repository/sheets"
	"github.com/mrojasc/despensa/internal/service/inventory"
)

const expirationLayout = "02/01/2006"

// Scheduler manages the periodic expiry review job.
type Scheduler struct {
	cron         *cron.Cron
	inventorySvc inventory.Service
	exporter     sheets.Exporter
	cfg          config.ExpiryConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. The exporter is optional;
// when nil, the review only logs.
func NewScheduler(cfg config.ExpiryConfig, inventorySvc inventory.Service, exporter sheets.Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		inventorySvc: inventorySvc,
		exporter:     exporter,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runExpiryReview); err != nil {
		s.logger.Error("failed to schedule expiry review", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runExpiryReview() {
	s.logger.Info("running expiry review")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	records, err := s.inventorySvc.List(ctx)
	if err != nil {
		s.logger.Error("failed to list inventory for expiry review", zap.Error(err))
		return
	}

	expired, expiring := s.reviewExpirations(records, time.Now())

	if expired+expiring > 0 {
		s.logger.Warn("expiry review findings",
			zap.Int("expired", expired),
			zap.Int("expiring_soon", expiring),
			zap.Int("warn_days", s.cfg.WarnDays))
	} else {
		s.logger.Info("expiry review clean", zap.Int("records", len(records)))
	}

	if s.exporter == nil {
		return
	}

	if err := s.exporter.AppendSnapshot(ctx, snapshotRows(records)); err != nil {
		s.logger.Error("failed to export inventory snapshot", zap.Error(err))
	} else {
		s.logger.Info("inventory snapshot exported", zap.Int("records", len(records)))
	}
}

func (s *Scheduler) reviewExpirations(records []models.InventoryRecord, now time.Time) (expired, expiring int) {
	today := now.Truncate(24 * time.Hour)
	deadline := today.AddDate(0, 0, s.cfg.WarnDays)

	for _, record := range records {
		expiresAt, err := time.Parse(expirationLayout, record.ExpirationDate)
		if err != nil {
			// Covers the "N/A" sentinel as well as free-form dates; the field
			// is never validated at ingestion time.
			continue
		}

		switch {
		case expiresAt.Before(today):
			expired++
			s.logger.Debug("record expired",
				zap.String("code", record.Code),
				zap.String("expiration_date", record.ExpirationDate))
		case !expiresAt.After(deadline):
			expiring++
		}
	}

	return expired, expiring
}

func snapshotRows(records []models.InventoryRecord) [][]interface{} {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Code, r.RecordedAt, r.ProductName, r.Quantity, r.PurchaseDate, r.ExpirationDate, r.ExtraInfo,
		})
	}
	return rows
}
