package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
	"github.com/dmitrijs2005/gymbro/internal/common"
)

// memStore is an in-memory storage.Store.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

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

// backend is a fake GymBro API recording the Authorization headers it sees.
type backend struct {
	*httptest.Server
	router *mux.Router

	mu      sync.Mutex
	headers [][]string
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{router: mux.NewRouter()}
	b.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.headers = append(b.headers, r.Header.Values(common.AuthorizationHeader))
			b.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	b.Server = httptest.NewServer(b.router)
	t.Cleanup(b.Close)
	return b
}

func (b *backend) lastAuth() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.headers) == 0 {
		return nil
	}
	return b.headers[len(b.headers)-1]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func progressHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.ProgressResponse{Progress: models.Progress{
		Calories: models.Metric{Current: 500, Goal: 2000},
	}})
}

func newClient(t *testing.T, url string, timeout time.Duration) (*Client, *session.Store, *memStore) {
	t.Helper()
	durable := newMemStore()
	sess := session.New(durable, nil)
	c, err := New(url, timeout, sess, nil)
	require.NoError(t, err)
	return c, sess, durable
}

func loggedIn(t *testing.T, sess *session.Store, token string) {
	t.Helper()
	require.NoError(t, sess.SetSession(context.Background(), token, &models.User{ID: "u1", Name: "Alex"}))
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	sess := session.New(newMemStore(), nil)
	for _, u := range []string{"", "ftp://x", "http://", "://bad"} {
		_, err := New(u, time.Second, sess, nil)
		assert.Error(t, err, u)
	}

	c, err := New("http://127.0.0.1:5000/", time.Second, sess, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", c.BaseURL())
}

func TestNew_RejectsNonPositiveTimeout(t *testing.T) {
	sess := session.New(newMemStore(), nil)
	for _, d := range []time.Duration{0, -time.Second} {
		_, err := New("http://127.0.0.1:5000", d, sess, nil)
		assert.Error(t, err, d.String())
	}
}

func TestBearerHeader_ExactToken(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/progress", progressHandler).Methods(http.MethodGet)

	c, sess, _ := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "tok-abc")

	p, err := c.Progress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(500), p.Calories.Current)
	assert.Equal(t, []string{"Bearer tok-abc"}, b.lastAuth())
}

func TestBearerHeader_AbsentWithoutSession(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/progress", progressHandler).Methods(http.MethodGet)

	c, _, _ := newClient(t, b.URL, time.Second)

	_, err := c.Progress(context.Background())
	require.NoError(t, err)
	assert.Empty(t, b.lastAuth())
}

func TestBearerHeader_FollowsSessionChanges(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/progress", progressHandler).Methods(http.MethodGet)

	c, sess, _ := newClient(t, b.URL, time.Second)
	ctx := context.Background()

	loggedIn(t, sess, "first")
	_, err := c.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer first"}, b.lastAuth())

	loggedIn(t, sess, "second")
	_, err = c.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bearer second"}, b.lastAuth())

	require.NoError(t, sess.Clear(ctx))
	_, err = c.Progress(ctx)
	require.NoError(t, err)
	assert.Empty(t, b.lastAuth())
}

func TestUnauthorized_ClearsSessionBeforeReturning(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/track/streak", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Token expired"})
	})
	b.router.HandleFunc("/auth/progress", progressHandler)

	c, sess, durable := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "expired")

	_, err := c.Streaks(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Token expired", Message(err))

	assert.False(t, sess.Authenticated())
	assert.Nil(t, sess.User())
	_, ok, _ := durable.Get(context.Background(), common.SessionTokenKey)
	assert.False(t, ok)

	_, err = c.Progress(context.Background())
	require.NoError(t, err)
	assert.Empty(t, b.lastAuth(), "request after a 401 carries no token")
}

func TestUnauthorized_StaleResponseKeepsNewerSession(t *testing.T) {
	b := newBackend(t)
	c, sess, _ := newClient(t, b.URL, time.Second)

	// The user logs in again while the request with the old token is in flight.
	b.router.HandleFunc("/auth/progress", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, sess.SetSession(r.Context(), "fresh", &models.User{ID: "u1"}))
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Token expired"})
	})

	loggedIn(t, sess, "old")
	_, err := c.Progress(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "fresh", sess.Token())
}

func TestServerError_LeavesSessionAlone(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/track/water", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "db down"})
	}).Methods(http.MethodPost)

	c, sess, _ := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "tok")
	before := sess.Snapshot()

	err := c.TrackWater(context.Background(), 250)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, KindServer, KindOf(err))
	assert.Equal(t, "db down", Message(err))
	assert.Equal(t, before, sess.Snapshot())
}

func TestValidationError_UsesBackendMessage(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/signup", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "User already exists"})
	})

	c, _, _ := newClient(t, b.URL, time.Second)
	_, err := c.Signup(context.Background(), "Alex", "a@b.c", "pw")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid credentials"})
	})

	c, sess, _ := newClient(t, b.URL, time.Second)
	_, err := c.Login(context.Background(), "a@b.c", "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", Message(err))
	assert.False(t, sess.Authenticated())
}

func TestLogin_SendsCredentials(t *testing.T) {
	b := newBackend(t)
	var got models.LoginRequest
	b.router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, models.AuthResponse{Token: "t1", User: &models.User{ID: "u1", Name: "Alex"}})
	}).Methods(http.MethodPost)

	c, _, _ := newClient(t, b.URL, time.Second)
	resp, err := c.Login(context.Background(), "alex@example.org", "secret")
	require.NoError(t, err)

	assert.Equal(t, models.LoginRequest{Email: "alex@example.org", Password: "secret"}, got)
	assert.Equal(t, "t1", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Alex", resp.User.Name)
}

func TestMalformedResponses(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/progress", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})
	b.router.HandleFunc("/track/streak", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	b.router.HandleFunc("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	b.router.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	})

	c, _, _ := newClient(t, b.URL, time.Second)
	ctx := context.Background()

	_, err := c.Progress(ctx)
	assert.ErrorIs(t, err, ErrMalformedResponse, "non-JSON body")

	_, err = c.Streaks(ctx)
	assert.ErrorIs(t, err, ErrMalformedResponse, "empty body")

	_, err = c.Login(ctx, "a", "b")
	assert.ErrorIs(t, err, ErrMalformedResponse, "no token")

	_, err = c.Profile(ctx)
	assert.ErrorIs(t, err, ErrMalformedResponse, "redirect")
}

func TestTimeout(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/progress", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c, sess, _ := newClient(t, b.URL, 50*time.Millisecond)
	loggedIn(t, sess, "tok")

	_, err := c.Progress(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "tok", sess.Token(), "timeouts never touch the session")
}

func TestContextDeadlineIsTimeout(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	c, _, _ := newClient(t, b.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := c.Ping(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, sess, _ := newClient(t, url, time.Second)
	loggedIn(t, sess, "tok")

	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.False(t, errors.Is(err, ErrTimeout))
	assert.Equal(t, "network error", Message(err))
	assert.True(t, sess.Authenticated())
}

func TestCancelledContext(t *testing.T) {
	b := newBackend(t)
	c, sess, _ := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "tok")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Ping(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "request cancelled", Message(err))
	assert.True(t, sess.Authenticated())
}

func TestTrackingBodies(t *testing.T) {
	b := newBackend(t)
	bodies := map[string]map[string]any{}
	var mu sync.Mutex
	b.router.HandleFunc("/track/{activity}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		bodies[mux.Vars(r)["activity"]] = body
		mu.Unlock()
		writeJSON(w, http.StatusCreated, models.MessageResponse{Message: "ok"})
	}).Methods(http.MethodPost)

	c, sess, _ := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "tok")
	ctx := context.Background()

	require.NoError(t, c.TrackFood(ctx, models.FoodEntry{Food: "oats"}))
	require.NoError(t, c.TrackWater(ctx, 500))
	require.NoError(t, c.TrackSleep(ctx, 7.5))
	require.NoError(t, c.TrackWorkout(ctx, models.WorkoutEntry{Type: "run", Duration: 30}))
	require.NoError(t, c.TrackJunk(ctx, "chips"))

	assert.Equal(t, map[string]map[string]any{
		"food":    {"food": "oats"},
		"water":   {"amount": float64(500)},
		"sleep":   {"hours": 7.5},
		"workout": {"type": "run", "duration": float64(30)},
		"junk":    {"junk": "chips"},
	}, bodies)
}

func TestUpdateGoals(t *testing.T) {
	b := newBackend(t)
	b.router.HandleFunc("/auth/goals", func(w http.ResponseWriter, r *http.Request) {
		var g models.Goals
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&g))
		writeJSON(w, http.StatusOK, models.UserResponse{User: &models.User{ID: "u1", Goals: g}})
	}).Methods(http.MethodPut)

	c, sess, _ := newClient(t, b.URL, time.Second)
	loggedIn(t, sess, "tok")

	goals := models.Goals{Protein: 180, Calories: 2600, Water: 10, Sleep: 8}
	u, err := c.UpdateGoals(context.Background(), goals)
	require.NoError(t, err)
	assert.Equal(t, goals, u.Goals)
}

func TestRequestIDHeader(t *testing.T) {
	b := newBackend(t)
	var ids []string
	b.router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(common.RequestIDHeader))
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	c, _, _ := newClient(t, b.URL, time.Second)
	require.NoError(t, c.Ping(context.Background()))
	require.NoError(t, c.Ping(context.Background()))

	require.Len(t, ids, 2)
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, ids[0], ids[1])
}
