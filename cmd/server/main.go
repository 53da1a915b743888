// Package main implements the entry point for the vocabulary trainer API
// server, which schedules English words for review with a spaced-repetition
// algorithm and tracks daily study statistics.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/Skizziik/englishapp-sub000/internal/config"
	"github.com/Skizziik/englishapp-sub000/internal/domain/srs"
	"github.com/Skizziik/englishapp-sub000/internal/platform/clock"
	"github.com/Skizziik/englishapp-sub000/internal/platform/database"
	"github.com/Skizziik/englishapp-sub000/internal/platform/logger"
	"github.com/Skizziik/englishapp-sub000/internal/service/review"
)

// application bundles the initialized dependencies the server runs on.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	db            *sql.DB
	reviewService review.ReviewService
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		app.cleanup()
		log.Fatal(err)
	}
	app.cleanup()
}

// initializeApp loads configuration, sets up logging, opens and migrates
// the database, and wires the service layer.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Migrate(db, cfg.Database.Driver, appLogger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	srsService := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		MinEaseFactor:      cfg.SRS.MinEaseFactor,
		MaxEaseFactor:      cfg.SRS.MaxEaseFactor,
		DefaultEaseFactor:  cfg.SRS.DefaultEaseFactor,
		FailureEasePenalty: cfg.SRS.FailureEasePenalty,
		LearningSteps:      cfg.SRS.LearningSteps,
		GraduatingInterval: cfg.SRS.GraduatingInterval,
		EasyBonus:          cfg.SRS.EasyBonus,
		MaxInterval:        cfg.SRS.MaxInterval,
		LearnedThreshold:   cfg.SRS.LearnedThreshold,
	}))

	reviewService := review.NewReviewService(
		db,
		database.NewWordStore(db, cfg.Database.Driver, appLogger),
		database.NewProgressStore(db, cfg.Database.Driver, appLogger),
		database.NewStatsStore(db, cfg.Database.Driver, appLogger),
		srsService,
		clock.NewSystem(),
		appLogger,
	)

	return &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		reviewService: reviewService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
