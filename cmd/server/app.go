package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/passeio-api/internal/config"
	"github.com/phrazzld/passeio-api/internal/platform/database"
	"github.com/phrazzld/passeio-api/internal/platform/sqlstore"
	"github.com/phrazzld/passeio-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database.DB

	guideService service.GuideService
	tourService  service.TourService
}

// newApplication wires repositories and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *database.DB) (*application, error) {
	dialect, err := db.Driver.Dialect()
	if err != nil {
		return nil, err
	}

	guideRepo, err := sqlstore.New(db.DB, dialect, sqlstore.GuideTable(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create guide repository: %w", err)
	}
	tourRepo, err := sqlstore.New(db.DB, dialect, sqlstore.TourTable(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour repository: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}
	if app.guideService, err = service.NewGuideService(guideRepo, logger); err != nil {
		return nil, err
	}
	if app.tourService, err = service.NewTourService(tourRepo, logger); err != nil {
		return nil, err
	}

	logger.Info("application initialized", slog.String("database_driver", string(db.Driver)))
	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", slog.String("error", err.Error()))
	}
}
