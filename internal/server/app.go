// Package server initializes and runs the SmartFridge API server: it opens the
// database, applies migrations, wires services and serves HTTP until a
// termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/smartfridge/internal/logging"
	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/dmitrijs2005/smartfridge/internal/server/config"
	"github.com/dmitrijs2005/smartfridge/internal/server/httpapi"
	"github.com/dmitrijs2005/smartfridge/internal/server/metrics"
	"github.com/dmitrijs2005/smartfridge/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/smartfridge/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/thejerf/abtime"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *httpapi.HTTPServer
}

// NewApp connects to the database, runs migrations and builds the HTTP server.
// The token secret is read from cfg once, here.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	codec := auth.NewTokenCodec([]byte(cfg.SecretKey))

	us, err := services.NewUserService(db, rm, codec, abtime.NewRealTime(), cfg)
	if err != nil {
		db.Close()
		return nil, err
	}
	ss := services.NewSettingsService(db, rm)

	srv := httpapi.NewHTTPServer(cfg.EndpointAddrHTTP, logger, us, ss, metrics.New(), httpapi.Options{
		DevCORS:         cfg.DevCORS,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})

	return &App{config: cfg, logger: logger, db: db, http: srv}, nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, or until ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server stopped", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
