package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
)

// ---- helpers ----

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func newSession(t *testing.T) (*session.Store, *memStore) {
	t.Helper()
	durable := &memStore{data: map[string]string{}}
	return session.New(durable, nil), durable
}

func loggedIn(t *testing.T, s *session.Store, token string) {
	t.Helper()
	require.NoError(t, s.SetSession(context.Background(), token, &models.User{ID: "u1", Name: "Alex"}))
}

// ---- fake client ----

type fakeClient struct {
	AuthRet *models.AuthResponse
	AuthErr error

	ProfileRet *models.User
	ProfileErr error
	// ProfileHook runs before Profile returns.
	ProfileHook func()

	UserRet *models.User
	UserErr error

	TrackErr error

	ProgressFn func(ctx context.Context) (*models.Progress, error)
	StreaksFn  func(ctx context.Context) (*models.Streaks, error)

	PingErr error

	mu           sync.Mutex
	Calls        []string
	LastEmail    string
	LastPassword string
	LastName     string
	LastFood     models.FoodEntry
	LastWorkout  models.WorkoutEntry
	LastAmount   float64
	LastJunk     string
	LastUpdate   models.ProfileUpdate
	LastGoals    models.Goals
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.record("login")
	f.LastEmail, f.LastPassword = email, password
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) Signup(_ context.Context, name, email, password string) (*models.AuthResponse, error) {
	f.record("signup")
	f.LastName, f.LastEmail, f.LastPassword = name, email, password
	return f.AuthRet, f.AuthErr
}

func (f *fakeClient) Profile(context.Context) (*models.User, error) {
	f.record("profile")
	if f.ProfileHook != nil {
		f.ProfileHook()
	}
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, update models.ProfileUpdate) (*models.User, error) {
	f.record("update_profile")
	f.LastUpdate = update
	return f.UserRet, f.UserErr
}

func (f *fakeClient) UpdateGoals(_ context.Context, goals models.Goals) (*models.User, error) {
	f.record("update_goals")
	f.LastGoals = goals
	return f.UserRet, f.UserErr
}

func (f *fakeClient) TrackFood(_ context.Context, entry models.FoodEntry) error {
	f.record("food")
	f.LastFood = entry
	return f.TrackErr
}

func (f *fakeClient) TrackWater(_ context.Context, amount float64) error {
	f.record("water")
	f.LastAmount = amount
	return f.TrackErr
}

func (f *fakeClient) TrackSleep(_ context.Context, hours float64) error {
	f.record("sleep")
	f.LastAmount = hours
	return f.TrackErr
}

func (f *fakeClient) TrackWorkout(_ context.Context, entry models.WorkoutEntry) error {
	f.record("workout")
	f.LastWorkout = entry
	return f.TrackErr
}

func (f *fakeClient) TrackJunk(_ context.Context, junk string) error {
	f.record("junk")
	f.LastJunk = junk
	return f.TrackErr
}

func (f *fakeClient) Progress(ctx context.Context) (*models.Progress, error) {
	f.record("progress")
	return f.ProgressFn(ctx)
}

func (f *fakeClient) Streaks(ctx context.Context) (*models.Streaks, error) {
	f.record("streaks")
	return f.StreaksFn(ctx)
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("ping")
	return f.PingErr
}
