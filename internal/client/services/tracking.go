package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// Upper bounds that catch typos before they reach the backend.
const (
	maxWaterML       = 10000
	maxSleepHours    = 24
	maxWorkoutMinute = 24 * 60
)

// TrackingService logs daily activities. It never touches the session.
type TrackingService interface {
	LogFood(ctx context.Context, entry models.FoodEntry) error
	LogWater(ctx context.Context, amountML float64) error
	LogSleep(ctx context.Context, hours float64) error
	LogWorkout(ctx context.Context, entry models.WorkoutEntry) error
	LogJunk(ctx context.Context, junk string) error
}

type trackingService struct {
	client Client
}

func NewTrackingService(client Client) TrackingService {
	return &trackingService{client: client}
}

func (s *trackingService) LogFood(ctx context.Context, entry models.FoodEntry) error {

	entry.Food = strings.TrimSpace(entry.Food)
	if entry.Food == "" {
		return fmt.Errorf("%w: food is required", ErrInvalidInput)
	}
	if entry.Calories < 0 || entry.Protein < 0 {
		return fmt.Errorf("%w: calories and protein cannot be negative", ErrInvalidInput)
	}

	if err := s.client.TrackFood(ctx, entry); err != nil {
		return fmt.Errorf("log food: %w", err)
	}
	return nil
}

func (s *trackingService) LogWater(ctx context.Context, amountML float64) error {

	if amountML <= 0 || amountML > maxWaterML {
		return fmt.Errorf("%w: water amount must be between 1 and %d ml", ErrInvalidInput, maxWaterML)
	}

	if err := s.client.TrackWater(ctx, amountML); err != nil {
		return fmt.Errorf("log water: %w", err)
	}
	return nil
}

func (s *trackingService) LogSleep(ctx context.Context, hours float64) error {

	if hours <= 0 || hours > maxSleepHours {
		return fmt.Errorf("%w: sleep must be more than 0 and at most %d hours", ErrInvalidInput, maxSleepHours)
	}

	if err := s.client.TrackSleep(ctx, hours); err != nil {
		return fmt.Errorf("log sleep: %w", err)
	}
	return nil
}

func (s *trackingService) LogWorkout(ctx context.Context, entry models.WorkoutEntry) error {

	entry.Type = strings.TrimSpace(entry.Type)
	if entry.Type == "" {
		return fmt.Errorf("%w: workout type is required", ErrInvalidInput)
	}
	if entry.Duration <= 0 || entry.Duration > maxWorkoutMinute {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, maxWorkoutMinute)
	}

	if err := s.client.TrackWorkout(ctx, entry); err != nil {
		return fmt.Errorf("log workout: %w", err)
	}
	return nil
}

func (s *trackingService) LogJunk(ctx context.Context, junk string) error {

	junk = strings.TrimSpace(junk)
	if junk == "" {
		return fmt.Errorf("%w: describe what you ate", ErrInvalidInput)
	}

	if err := s.client.TrackJunk(ctx, junk); err != nil {
		return fmt.Errorf("log junk: %w", err)
	}
	return nil
}
