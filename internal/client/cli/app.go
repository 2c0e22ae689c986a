// Package cli is the terminal front end for the Acadex client. It wires the
// credential store, the endpoint resolver and the session manager together
// and exposes them through a small REPL.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/acadex/acadex/internal/client/api"
	"github.com/acadex/acadex/internal/client/config"
	"github.com/acadex/acadex/internal/client/credstore"
	"github.com/acadex/acadex/internal/client/endpoint"
	"github.com/acadex/acadex/internal/client/session"
	"github.com/acadex/acadex/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   credstore.Store
	client  *api.Client
	session *session.Manager
	reader  *bufio.Reader
}

// NewApp opens the local credential store, resolves the backend address from
// the configured signals and restores any persisted session. Logging goes to
// stderr at warn level so it does not interleave with REPL output.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store, err := credstore.InitDatabase(ctx, cfg.DataFile)
	if err != nil {
		logger.Error(ctx, "error initializing credential store", "error", err)
		return nil, err
	}

	base := endpoint.Resolve(ctx, endpoint.Signals{
		EnvBaseURL:    cfg.EnvBaseURL,
		ConfigBaseURL: cfg.BaseURL,
		BundleURL:     cfg.BundleURL,
		DebuggerHost:  cfg.DebuggerHost,
		Platform:      cfg.Platform,
		Dev:           cfg.Dev,
	}, logger)

	client := api.NewClient(base, cfg.RequestTimeout)
	sess := session.NewManager(store, client, logger)
	sess.Restore(ctx)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		client:  client,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
