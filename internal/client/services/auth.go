package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

// AuthService runs the login, signup and logout flows.
//
// Contract:
//   - Login/Signup: on success the session holds the new token and, when it
//     could be obtained, the profile. On failure the session is untouched
//     (except by the 401 path of the API client).
//   - Logout: clears the session, in memory and on disk.
//   - Restore: loads a persisted session at startup.
//   - Ping: checks the backend is reachable.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client  Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService binds the auth flows to an API client and a session store.
func NewAuthService(client Client, sess *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: client, session: sess, log: log}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {

	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return a.establish(ctx, resp)
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	resp, err := a.client.Signup(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	return a.establish(ctx, resp)
}

// establish installs the token, then fetches the profile if the auth
// response did not carry it. A failed fetch leaves a session without a
// profile.
func (a *authService) establish(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {

	if err := a.session.SetSession(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if resp.User != nil {
		return resp.User.Clone(), nil
	}

	user, err := a.client.Profile(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile fetch after login failed", "error", err)
		return nil, nil
	}
	if a.session.Token() == resp.Token {
		a.session.UpdateProfile(user)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Load(ctx, a.client)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %q is not a valid email", ErrInvalidInput, email)
	}
	return nil
}
