// Package server initializes and runs the authentication service: it wires
// configuration, storage, the session issuer and the HTTP server, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/loginkeeper/internal/logging"
	"github.com/dmitrijs2005/loginkeeper/internal/server/auth"
	"github.com/dmitrijs2005/loginkeeper/internal/server/config"
	"github.com/dmitrijs2005/loginkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/loginkeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/loginkeeper/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  db.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	if cfg.Mode == config.ModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users())
	issuer := auth.NewIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration, cfg.Mode)
	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, issuer, cfg.AllowedOrigins)

	return &App{config: cfg, logger: logger, repos: rm, server: srv}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mode", string(app.config.Mode))

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err.Error())
	}
}
