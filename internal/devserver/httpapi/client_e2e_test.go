package httpapi

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gymbro/internal/client/api"
	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/services"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
	"github.com/dmitrijs2005/gymbro/internal/client/storage"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

// TestClientAgainstDevserver drives the real client stack over HTTP.
func TestClientAgainstDevserver(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(newTestServer(t).Handler())
	t.Cleanup(srv.Close)

	durable, err := storage.OpenBolt(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = durable.Close() })

	sess := session.New(durable, logging.Nop())
	client, err := api.New(srv.URL, 2*time.Second, sess, logging.Nop())
	require.NoError(t, err)

	authSvc := services.NewAuthService(client, sess, logging.Nop())
	tracking := services.NewTrackingService(client)
	dash := services.NewDashboardService(client)

	require.NoError(t, authSvc.Ping(ctx))

	u, err := authSvc.Signup(ctx, "Bo", "bo@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.True(t, sess.Authenticated())

	require.NoError(t, tracking.LogWater(ctx, 500))
	require.NoError(t, tracking.LogWorkout(ctx, models.WorkoutEntry{Type: "row", Duration: 20}))

	d := dash.Load(ctx)
	require.NoError(t, d.ProgressErr)
	require.NoError(t, d.StreaksErr)
	assert.Equal(t, 2.0, d.Progress.Water.Current)
	assert.Equal(t, models.Streak{Current: 1, Longest: 1}, d.Streaks.Workout)

	_, err = authSvc.Login(ctx, "bo@example.com", "wrong-password")
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}
