// Package server wires the journal server together: it opens the configured
// storage backend, builds the services and runs the gRPC endpoint until the
// process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/moodyssey/internal/logging"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/accounts"
	"github.com/dmitrijs2005/moodyssey/internal/repositories/records"
	"github.com/dmitrijs2005/moodyssey/internal/server/config"
	"github.com/dmitrijs2005/moodyssey/internal/server/services"
	"github.com/dmitrijs2005/moodyssey/internal/server/session"
	"github.com/dmitrijs2005/moodyssey/internal/storage"

	gs "github.com/dmitrijs2005/moodyssey/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	authService    *services.AuthService
	journalService *services.JournalService
	sessions       *session.Manager
	closeBackend   func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(os.Stdout, "json", c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	backend, closeBackend, err := openBackend(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}
	logger.Info(ctx, "storage ready", "backend", c.StorageBackend)

	layout := storage.DefaultLayout()
	as := services.NewAuthService(accounts.NewJSONRepository(backend, layout, logger), c.PasswordHashCost, logger)
	js := services.NewJournalService(records.NewJSONRepository(backend, layout, logger), logger)

	return &App{
		config:         c,
		logger:         logger,
		authService:    as,
		journalService: js,
		sessions:       session.NewManager(c.SessionValidityDuration),
		closeBackend:   closeBackend,
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.journalService,
		app.sessions, app.config.SecretKey, app.config.SessionValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closeBackend(); err != nil {
		app.logger.Error(ctx, "closing storage failed", "error", err.Error())
	}
	app.logger.Info(ctx, "Stopped")
}
