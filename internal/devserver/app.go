// Package devserver wires the reference backend: in-memory repositories,
// services and the HTTP server, run until SIGINT/SIGTERM.
package devserver

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gymbro/internal/devserver/activity"
	"github.com/dmitrijs2005/gymbro/internal/devserver/config"
	"github.com/dmitrijs2005/gymbro/internal/devserver/httpapi"
	"github.com/dmitrijs2005/gymbro/internal/devserver/users"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	userService     *users.Service
	activityService *activity.Service
}

func NewApp(c *config.Config, l logging.Logger) *App {
	us := users.NewService(users.NewMemoryRepository(), c)
	as := activity.NewService(activity.NewMemoryRepository())

	return &App{config: c, logger: l, userService: us, activityService: as}
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
	s := httpapi.NewServer(app.config.Addr, app.logger, app.userService, app.activityService, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or the server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting devserver...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
