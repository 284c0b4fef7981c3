package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mrojasc/despensa/internal/config"
	"github.com/mrojasc/despensa/internal/repository/mongodb"
	"github.com/mrojasc/despensa/internal/repository/sheets"
	"github.com/mrojasc/despensa/internal/scheduler"
	"github.com/mrojasc/despensa/internal/server/handlers"
	"github.com/mrojasc/despensa/internal/server/router"
	catalogsvc "github.com/mrojasc/despensa/internal/service/catalog"
	inventorysvc "github.com/mrojasc/despensa/internal/service/inventory"
	"github.com/mrojasc/despensa/pkg/clients/openfoodfacts"
	"github.com/mrojasc/despensa/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	lookupClient := openfoodfacts.NewClient(cfg.Lookup)
	resolver := catalogsvc.NewResolver(lookupClient, baseLogger.Named("svc.catalog"))
	inventorySvc := inventorysvc.NewTrackerService(resolver, mongoRepo, baseLogger.Named("svc.inventory"))

	inventoryHandler := handlers.NewInventoryHandler(inventorySvc, baseLogger.Named("handlers.inventory"))
	engine := router.New(inventoryHandler, baseLogger.Named("router"))

	// Initialize the optional snapshot exporter
	var exporter sheets.Exporter
	if cfg.Sheets.Enabled() {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets snapshot export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, snapshot export disabled")
	}

	sched := scheduler.NewScheduler(cfg.Expiry, inventorySvc, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
