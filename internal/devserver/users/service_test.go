package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/common"
	"github.com/dmitrijs2005/gymbro/internal/devserver/config"
)

func newService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return NewService(NewMemoryRepository(), cfg)
}

func TestSignupThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	tok, u, err := s.Signup(ctx, " Ana ", "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, models.DefaultGoals(), u.Goals)
	assert.NotContains(t, u.PasswordHash, "secret1")

	id, err := s.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	tok2, u2, err := s.Login(ctx, "ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, tok2)
	assert.Equal(t, u.ID, u2.ID)
}

func TestSignup_Validation(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	cases := []struct {
		name, email, password, msg string
	}{
		{"", "a@b.co", "secret1", "Name is required"},
		{"A", "nope", "secret1", "A valid email is required"},
		{"A", "a@b.co", "123", "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		_, _, err := s.Signup(ctx, tc.name, tc.email, tc.password)
		require.ErrorIs(t, err, common.ErrorValidation)
		assert.Equal(t, tc.msg, err.Error())
	}
}

func TestSignup_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	_, _, err := s.Signup(ctx, "A", "a@b.co", "secret1")
	require.NoError(t, err)

	_, _, err = s.Signup(ctx, "B", "A@B.CO", "secret2")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "User already exists", err.Error())
}

func TestLogin_BadCredentials(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	_, _, err := s.Signup(ctx, "A", "a@b.co", "secret1")
	require.NoError(t, err)

	_, _, err = s.Login(ctx, "a@b.co", "wrong!")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = s.Login(ctx, "ghost@b.co", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthenticate_ExpiredAndUnknown(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	tok, _, err := s.Signup(ctx, "A", "a@b.co", "secret1")
	require.NoError(t, err)

	other := newService(t)
	_, err = other.Authenticate(ctx, tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "token for a user the store does not know")

	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	_, u, err := s.Login(ctx, "a@b.co", "secret1")
	require.NoError(t, err)
	old, err := s.generateAccessToken(u)
	require.NoError(t, err)
	_, err = s.Authenticate(ctx, old)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestUpdateProfileAndGoals(t *testing.T) {
	ctx := context.Background()
	s := newService(t)
	_, u, err := s.Signup(ctx, "A", "a@b.co", "secret1")
	require.NoError(t, err)

	got, err := s.UpdateProfile(ctx, u.ID, models.ProfileUpdate{
		Height: 180, Weight: 80, BodyType: models.BodyTypeLean, DesiredOutcome: models.OutcomeStrength,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, got.Profile.Height)

	got, err = s.UpdateProfile(ctx, u.ID, models.ProfileUpdate{
		Weight: 78, BodyType: models.BodyTypeMuscular, DesiredOutcome: models.OutcomeStrength,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, got.Profile.Height, "zero height keeps stored value")
	assert.Equal(t, 78.0, got.Profile.Weight)

	_, err = s.UpdateProfile(ctx, u.ID, models.ProfileUpdate{BodyType: "blob", DesiredOutcome: models.OutcomeStrength})
	assert.ErrorIs(t, err, common.ErrorValidation)

	g := models.Goals{Protein: 120, Calories: 2500, Water: 10, Sleep: 7}
	got, err = s.UpdateGoals(ctx, u.ID, g)
	require.NoError(t, err)
	assert.Equal(t, g, got.Goals)

	stored, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, g, stored.Goals)

	_, err = s.UpdateGoals(ctx, u.ID, models.Goals{Protein: 1, Calories: 1, Water: 1, Sleep: 25})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.UpdateGoals(ctx, "missing", g)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPublic_OmitsHash(t *testing.T) {
	u := &User{ID: "1", Name: "A", Email: "a@b.co", PasswordHash: "x"}
	assert.Equal(t, &models.User{ID: "1", Name: "A", Email: "a@b.co"}, u.Public())
}
