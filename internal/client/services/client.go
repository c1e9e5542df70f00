// Package services holds the GymBro client's application services. They sit
// between the REPL and the API client, validate input before anything is
// sent, and are the only code that writes to the session store.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// ErrInvalidInput is wrapped by every client-side validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Client is the backend API as seen by the services. *api.Client implements it.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	UpdateGoals(ctx context.Context, goals models.Goals) (*models.User, error)

	TrackFood(ctx context.Context, entry models.FoodEntry) error
	TrackWater(ctx context.Context, amount float64) error
	TrackSleep(ctx context.Context, hours float64) error
	TrackWorkout(ctx context.Context, entry models.WorkoutEntry) error
	TrackJunk(ctx context.Context, junk string) error

	Progress(ctx context.Context) (*models.Progress, error)
	Streaks(ctx context.Context) (*models.Streaks, error)
	Ping(ctx context.Context) error
}
