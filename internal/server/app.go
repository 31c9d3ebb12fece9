// Package server initializes and runs the feed server: it opens the
// database, applies migrations, builds the services, and starts the HTTP
// API with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ayushchouksey/jeclens/internal/logging"
	"github.com/ayushchouksey/jeclens/internal/server/auth"
	"github.com/ayushchouksey/jeclens/internal/server/config"
	"github.com/ayushchouksey/jeclens/internal/server/httpapi"
	"github.com/ayushchouksey/jeclens/internal/server/repositories/repomanager"
	"github.com/ayushchouksey/jeclens/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	factsService    *services.FactsService
	sessionsService *services.SessionsService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	verifier := auth.NewTokenInfoVerifier(cfg.GoogleClientID)

	fs := services.NewFactsService(db, repos, cfg, logger)
	ss := services.NewSessionsService(db, repos, verifier, cfg, logger)

	return &App{config: cfg, logger: logger, db: db, factsService: fs, sessionsService: ss}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config, app.factsService, app.sessionsService, app.logger)

	if err := s.Run(ctx); err != nil {
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

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
