// Package httpapi exposes the devserver's REST contract over echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/gymbro/internal/devserver/activity"
	"github.com/dmitrijs2005/gymbro/internal/devserver/users"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

type Server struct {
	echo            *echo.Echo
	address         string
	users           *users.Service
	activity        *activity.Service
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(addr string, l logging.Logger, us *users.Service, as *activity.Service, shutdownTimeout time.Duration) *Server {
	s := &Server{
		echo:            echo.New(),
		address:         addr,
		users:           us,
		activity:        as,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = s.errorHandler

	s.echo.Use(s.recovery())
	s.echo.Use(s.requestLogger())

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/health", s.health)

	a := s.echo.Group("/auth")
	a.POST("/signup", s.signup)
	a.POST("/login", s.login)
	a.GET("/profile", s.profile, s.requireAuth)
	a.PUT("/profile", s.updateProfile, s.requireAuth)
	a.PUT("/goals", s.updateGoals, s.requireAuth)
	a.GET("/progress", s.progress, s.requireAuth)

	t := s.echo.Group("/track", s.requireAuth)
	t.POST("/food", s.trackFood)
	t.POST("/water", s.trackWater)
	t.POST("/sleep", s.trackSleep)
	t.POST("/workout", s.trackWorkout)
	t.POST("/junk", s.trackJunk)
	t.GET("/streak", s.streaks)
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
