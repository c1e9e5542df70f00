// Package activity records logged food, water, sleep, workouts and junk food
// and derives daily progress and streaks from them.
package activity

import "time"

// Entry is one logged activity. Only the fields for its Kind are set.
type Entry struct {
	UserID string
	Kind   string
	At     time.Time

	Food     string
	Calories float64
	Protein  float64

	WaterML    float64
	SleepHours float64

	WorkoutType string
	Minutes     int

	Junk string
}
