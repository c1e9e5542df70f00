package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// Login exchanges credentials for a token. User is set only when the backend
// returned it.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {

	req := models.LoginRequest{Email: email, Password: password}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, newError(KindMalformedResponse, http.StatusOK, "", fmt.Errorf("login response has no token"))
	}

	return &resp, nil
}

// Signup creates an account and returns its first token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {

	req := models.SignupRequest{Name: name, Email: email, Password: password}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, newError(KindMalformedResponse, http.StatusOK, "", fmt.Errorf("signup response has no token"))
	}

	return &resp, nil
}

// Profile returns the user owning the current token.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	return c.userCall(ctx, http.MethodGet, "/auth/profile", nil)
}

// UpdateProfile saves body metrics and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	return c.userCall(ctx, http.MethodPut, "/auth/profile", update)
}

// UpdateGoals saves daily targets and returns the updated user.
func (c *Client) UpdateGoals(ctx context.Context, goals models.Goals) (*models.User, error) {
	return c.userCall(ctx, http.MethodPut, "/auth/goals", goals)
}

// Progress returns today's totals against goals.
func (c *Client) Progress(ctx context.Context) (*models.Progress, error) {

	var resp models.ProgressResponse
	if err := c.do(ctx, http.MethodGet, "/auth/progress", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Progress, nil
}

// Ping checks that the backend is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) userCall(ctx context.Context, method, path string, in any) (*models.User, error) {

	var resp models.UserResponse
	if err := c.do(ctx, method, path, in, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, newError(KindMalformedResponse, http.StatusOK, "", fmt.Errorf("%s %s: response has no user", method, path))
	}

	return resp.User, nil
}
