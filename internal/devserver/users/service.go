package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/common"
	"github.com/dmitrijs2005/gymbro/internal/cryptox"
	"github.com/dmitrijs2005/gymbro/internal/devserver/auth"
	"github.com/dmitrijs2005/gymbro/internal/devserver/config"
)

const minPasswordLength = 6

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	now                   func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		now:                   time.Now,
	}
}

// Signup creates an account with default goals and returns a token for it.
func (s *Service) Signup(ctx context.Context, name, email, password string) (string, *User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return "", nil, common.Invalid("Name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, common.Invalid("A valid email is required")
	}
	if len(password) < minPasswordLength {
		return "", nil, common.Invalid("Password must be at least %d characters", minPasswordLength)
	}

	user, err := s.repo.Create(ctx, &User{
		Name:         name,
		Email:        email,
		PasswordHash: cryptox.HashPassword([]byte(password)),
		Goals:        models.DefaultGoals(),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", nil, common.Invalid("User already exists")
		}
		return "", nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies the credentials. Unknown emails and wrong passwords both
// yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, []byte(password))
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	if !ok {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to an existing user ID.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return "", common.ErrInvalidToken
	}
	return id, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// UpdateProfile applies upd. Zero height or weight keep the stored value.
func (s *Service) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*User, error) {
	if upd.Height < 0 || upd.Weight < 0 {
		return nil, common.Invalid("Height and weight cannot be negative")
	}
	if !models.IsValidBodyType(upd.BodyType) {
		return nil, common.Invalid("Invalid body type")
	}
	if !models.IsValidOutcome(upd.DesiredOutcome) {
		return nil, common.Invalid("Invalid desired outcome")
	}

	return s.modify(ctx, id, func(u *User) {
		if upd.Height > 0 {
			u.Profile.Height = upd.Height
		}
		if upd.Weight > 0 {
			u.Profile.Weight = upd.Weight
		}
		u.Profile.BodyType = upd.BodyType
		u.Profile.DesiredOutcome = upd.DesiredOutcome
	})
}

func (s *Service) UpdateGoals(ctx context.Context, id string, g models.Goals) (*User, error) {
	if g.Protein <= 0 || g.Calories <= 0 || g.Water <= 0 || g.Sleep <= 0 {
		return nil, common.Invalid("All goals must be positive")
	}
	if g.Sleep > 24 {
		return nil, common.Invalid("Sleep goal cannot exceed 24 hours")
	}

	return s.modify(ctx, id, func(u *User) { u.Goals = g })
}

func (s *Service) modify(ctx context.Context, id string, fn func(*User)) (*User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fn(user)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) generateAccessToken(user *User) (string, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration, s.now())
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
