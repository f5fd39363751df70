package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "payout-analytics/internal/http"
	"payout-analytics/internal/ingestors"
	"payout-analytics/internal/normalizers"
	"payout-analytics/internal/queries"
	"payout-analytics/internal/shared/configs"
	"payout-analytics/internal/shared/filestorages"
	"payout-analytics/internal/shared/loggers"
	"payout-analytics/internal/stores"

	"github.com/shopspring/decimal"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "payout-analytics").
		Logger()

	// Earnings are money amounts, serialize them as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize snapshot storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	snapshotStore := stores.NewSnapshotStore(fileStorage)
	recordSetStore, err := stores.NewCachedRecordSetStore(snapshotStore, config.Query.CachedCallers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize record set cache: %w", err)
	}

	// Initialize ingestion service
	reportNormalizer := normalizers.NewReportNormalizer()
	ingestionService := ingestors.NewIngestionService(reportNormalizer, recordSetStore, config.Ingestion.MaxUploadBytes)

	// Initialize query service
	queryService := queries.NewQueryService(recordSetStore, config.Query.DefaultTopN, time.Now)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting payout-analytics service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
