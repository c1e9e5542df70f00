package models

// Activity names used by logging endpoints and streaks.
const (
	ActivityFood    = "food"
	ActivityWater   = "water"
	ActivitySleep   = "sleep"
	ActivityWorkout = "workout"
	ActivityJunk    = "junk"
)

// FoodEntry is the body of POST /track/food. Calories and protein are
// optional; the backend counts them towards today's progress when present.
type FoodEntry struct {
	Food     string  `json:"food"`
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
}

// WaterEntry is the body of POST /track/water; Amount is in millilitres.
type WaterEntry struct {
	Amount float64 `json:"amount"`
}

// SleepEntry is the body of POST /track/sleep.
type SleepEntry struct {
	Hours float64 `json:"hours"`
}

// WorkoutEntry is the body of POST /track/workout; Duration is in minutes.
type WorkoutEntry struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// JunkEntry is the body of POST /track/junk.
type JunkEntry struct {
	Junk string `json:"junk"`
}

// Metric is one progress bar: what was logged today against the goal.
type Metric struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
}

// Percent returns Current/Goal as a percentage capped at 100. A zero goal
// yields 0.
func (m Metric) Percent() float64 {
	if m.Goal <= 0 {
		return 0
	}
	p := m.Current / m.Goal * 100
	if p > 100 {
		return 100
	}
	return p
}

// Progress is today's aggregate as computed by the backend.
type Progress struct {
	Calories Metric `json:"calories"`
	Protein  Metric `json:"protein"`
	Water    Metric `json:"water"`
	Sleep    Metric `json:"sleep"`
}

// ProgressResponse is the body of GET /auth/progress.
type ProgressResponse struct {
	Progress Progress `json:"progress"`
}

// Streak is a count of consecutive days an activity was logged.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks holds the backend-computed streak per activity.
type Streaks struct {
	Food    Streak `json:"food"`
	Water   Streak `json:"water"`
	Workout Streak `json:"workout"`
	Sleep   Streak `json:"sleep"`
}

// StreaksResponse is the body of GET /track/streak.
type StreaksResponse struct {
	Streaks Streaks `json:"streaks"`
}
