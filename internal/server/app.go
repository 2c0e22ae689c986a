// Package server initializes and runs the Acadex backend: it selects the
// identity store (PostgreSQL or the in-memory store with a JSON snapshot),
// wires the services, handles graceful shutdown, and starts the HTTP API.
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

	"github.com/acadex/acadex/internal/logging"
	"github.com/acadex/acadex/internal/server/catalog"
	"github.com/acadex/acadex/internal/server/config"
	"github.com/acadex/acadex/internal/server/downloads"
	"github.com/acadex/acadex/internal/server/httpapi"
	"github.com/acadex/acadex/internal/server/migrations"
	"github.com/acadex/acadex/internal/server/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	userService     *users.Service
	catalogService  *catalog.Service
	downloadService *downloads.Service
}

// newUserRepository selects the identity store. A non-empty DSN means
// PostgreSQL with goose migrations applied; otherwise the in-memory store
// seeded from the JSON snapshot file.
func newUserRepository(ctx context.Context, cfg *config.Config) (users.Repository, error) {
	if cfg.DatabaseDSN == "" {
		return users.NewInMemoryRepository(users.NewJSONFileSnapshot(cfg.UsersFile)), nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return users.NewPostgresRepository(db), nil
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, err := newUserRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	us := users.NewService(repo, cfg)

	cs, err := catalog.NewService()
	if err != nil {
		return nil, fmt.Errorf("catalog init error: %w", err)
	}

	ds := downloads.NewService(cfg, logger)

	return &App{
		config:          cfg,
		logger:          logger,
		userService:     us,
		catalogService:  cs,
		downloadService: ds,
	}, nil
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

	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.catalogService, app.downloadService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

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
}
