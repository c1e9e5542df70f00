package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

func (c *Client) TrackFood(ctx context.Context, entry models.FoodEntry) error {
	return c.do(ctx, http.MethodPost, "/track/food", entry, nil)
}

// TrackWater logs amount millilitres.
func (c *Client) TrackWater(ctx context.Context, amount float64) error {
	return c.do(ctx, http.MethodPost, "/track/water", models.WaterEntry{Amount: amount}, nil)
}

func (c *Client) TrackSleep(ctx context.Context, hours float64) error {
	return c.do(ctx, http.MethodPost, "/track/sleep", models.SleepEntry{Hours: hours}, nil)
}

func (c *Client) TrackWorkout(ctx context.Context, entry models.WorkoutEntry) error {
	return c.do(ctx, http.MethodPost, "/track/workout", entry, nil)
}

func (c *Client) TrackJunk(ctx context.Context, junk string) error {
	return c.do(ctx, http.MethodPost, "/track/junk", models.JunkEntry{Junk: junk}, nil)
}

// Streaks returns the per-activity streak counters.
func (c *Client) Streaks(ctx context.Context) (*models.Streaks, error) {

	var resp models.StreaksResponse
	if err := c.do(ctx, http.MethodGet, "/track/streak", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Streaks, nil
}
