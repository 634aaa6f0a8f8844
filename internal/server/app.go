// Package server initializes and runs the portal API server. It selects the
// credential store backend, applies schema migrations, wires the services,
// and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/samuelnapitupulu18/NusaCare/internal/common"
	"github.com/samuelnapitupulu18/NusaCare/internal/logging"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/auth"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/config"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/httpapi"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/repositories/users"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/services"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/storage"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	if cfg.SecretKey == "" {
		return nil, errors.New("token signing secret is not configured")
	}

	var repo users.Repository
	var db *sql.DB

	if cfg.DatabaseDSN != "" {
		var err error
		db, err = storage.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := storage.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("db migration error: %w", err)
		}
		repo = users.NewPostgresRepository(db)
	} else {
		logger.Warn(ctx, "No database DSN configured, using in-memory credential store")
		repo = users.NewInMemoryRepository()
	}

	telemetry := services.NewDefaultTelemetry()
	userService := services.NewUserService(repo, cfg)
	billingService := services.NewBillingService(telemetry, cfg.PaymentDelay)
	ticketService := services.NewTicketService()
	trackingSimulator := services.NewTrackingSimulator(telemetry, cfg.TrackingInterval)

	if cfg.SeedDemoData {
		seedDemoAdmin(ctx, repo, logger)
	}

	httpServer := httpapi.NewServer(
		cfg.EndpointAddr, logger,
		userService, billingService, ticketService, trackingSimulator, telemetry,
	)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

// seedDemoAdmin creates the demo admin account. Re-running against a store
// that already has it is not an error.
func seedDemoAdmin(ctx context.Context, repo users.Repository, logger logging.Logger) {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		logger.Error(ctx, "seed: hashing failed", "error", err.Error())
		return
	}

	_, err = repo.Create(ctx, &models.User{
		Email:        "admin@nusanet.com",
		Name:         "Admin NusaCare",
		WiFiID:       "NUSA-000",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Points:       &models.PointsBalance{Balance: 2450, Tier: "GOLD"},
	})
	if err != nil && !errors.Is(err, common.ErrorEmailTaken) && !errors.Is(err, common.ErrorWiFiIDTaken) {
		logger.Error(ctx, "seed: create failed", "error", err.Error())
		return
	}

	logger.Info(ctx, "Demo admin account available", "email", "admin@nusanet.com")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		app.db.Close()
	}
}
