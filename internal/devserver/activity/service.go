package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/common"
)

const (
	maxWaterML      = 10000
	maxSleepHours   = 24
	maxWorkoutMins  = 1440
	maxFoodQuantity = 20000
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) TrackFood(ctx context.Context, userID string, in models.FoodEntry) error {
	food := strings.TrimSpace(in.Food)
	if food == "" {
		return common.Invalid("Food is required")
	}
	if in.Calories < 0 || in.Protein < 0 || in.Calories > maxFoodQuantity || in.Protein > maxFoodQuantity {
		return common.Invalid("Calories and protein must be between 0 and %d", maxFoodQuantity)
	}
	return s.add(ctx, Entry{UserID: userID, Kind: models.ActivityFood, Food: food, Calories: in.Calories, Protein: in.Protein})
}

func (s *Service) TrackWater(ctx context.Context, userID string, in models.WaterEntry) error {
	if in.Amount <= 0 || in.Amount > maxWaterML {
		return common.Invalid("Water amount must be between 1 and %d ml", maxWaterML)
	}
	return s.add(ctx, Entry{UserID: userID, Kind: models.ActivityWater, WaterML: in.Amount})
}

func (s *Service) TrackSleep(ctx context.Context, userID string, in models.SleepEntry) error {
	if in.Hours <= 0 || in.Hours > maxSleepHours {
		return common.Invalid("Sleep must be more than 0 and at most %d hours", maxSleepHours)
	}
	return s.add(ctx, Entry{UserID: userID, Kind: models.ActivitySleep, SleepHours: in.Hours})
}

func (s *Service) TrackWorkout(ctx context.Context, userID string, in models.WorkoutEntry) error {
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		return common.Invalid("Workout type is required")
	}
	if in.Duration < 1 || in.Duration > maxWorkoutMins {
		return common.Invalid("Duration must be between 1 and %d minutes", maxWorkoutMins)
	}
	return s.add(ctx, Entry{UserID: userID, Kind: models.ActivityWorkout, WorkoutType: kind, Minutes: in.Duration})
}

func (s *Service) TrackJunk(ctx context.Context, userID string, in models.JunkEntry) error {
	junk := strings.TrimSpace(in.Junk)
	if junk == "" {
		return common.Invalid("Junk food description is required")
	}
	return s.add(ctx, Entry{UserID: userID, Kind: models.ActivityJunk, Junk: junk})
}

// Progress totals today's entries for userID against goals.
func (s *Service) Progress(ctx context.Context, userID string, goals models.Goals) (models.Progress, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return models.Progress{}, fmt.Errorf("list entries: %w", err)
	}
	return progressFor(entries, goals, s.now()), nil
}

func (s *Service) Streaks(ctx context.Context, userID string) (models.Streaks, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return models.Streaks{}, fmt.Errorf("list entries: %w", err)
	}
	return streaksFor(entries, s.now()), nil
}

func (s *Service) add(ctx context.Context, e Entry) error {
	e.At = s.now()
	if err := s.repo.Add(ctx, e); err != nil {
		return fmt.Errorf("add %s entry: %w", e.Kind, err)
	}
	return nil
}
