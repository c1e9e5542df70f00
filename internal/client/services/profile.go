package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
)

// ProfileService reads and edits the signed-in user's profile and goals.
// Successful calls replace the profile held by the session.
type ProfileService interface {
	Refresh(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	UpdateGoals(ctx context.Context, goals models.Goals) (*models.User, error)
}

type profileService struct {
	client  Client
	session *session.Store
}

func NewProfileService(client Client, sess *session.Store) ProfileService {
	return &profileService{client: client, session: sess}
}

func (s *profileService) Refresh(ctx context.Context) (*models.User, error) {

	token := s.session.Token()

	user, err := s.client.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	s.install(token, user)
	return user, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {

	update.BodyType = strings.TrimSpace(update.BodyType)
	update.DesiredOutcome = strings.TrimSpace(update.DesiredOutcome)

	if update.Height < 0 || update.Weight < 0 {
		return nil, fmt.Errorf("%w: height and weight cannot be negative", ErrInvalidInput)
	}
	if !models.IsValidBodyType(update.BodyType) {
		return nil, fmt.Errorf("%w: body type must be one of %s", ErrInvalidInput, strings.Join(models.BodyTypes, ", "))
	}
	if !models.IsValidOutcome(update.DesiredOutcome) {
		return nil, fmt.Errorf("%w: desired outcome must be one of %s", ErrInvalidInput, strings.Join(models.Outcomes, ", "))
	}

	token := s.session.Token()

	user, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.install(token, user)
	return user, nil
}

func (s *profileService) UpdateGoals(ctx context.Context, goals models.Goals) (*models.User, error) {

	if goals.Protein <= 0 || goals.Calories <= 0 || goals.Water <= 0 || goals.Sleep <= 0 {
		return nil, fmt.Errorf("%w: all goals must be positive", ErrInvalidInput)
	}
	if goals.Sleep > maxSleepHours {
		return nil, fmt.Errorf("%w: sleep goal cannot exceed %d hours", ErrInvalidInput, maxSleepHours)
	}

	token := s.session.Token()

	user, err := s.client.UpdateGoals(ctx, goals)
	if err != nil {
		return nil, fmt.Errorf("update goals: %w", err)
	}

	s.install(token, user)
	return user, nil
}

// install replaces the session profile unless the session changed while the
// request was in flight.
func (s *profileService) install(token string, user *models.User) {
	if token == "" || s.session.Token() != token {
		return
	}
	s.session.UpdateProfile(user)
}
