// Package models defines the wire and domain types shared by the GymBro
// client and the devserver.
package models

// Body type categories accepted by the backend.
const (
	BodyTypeSkinny    = "skinny"
	BodyTypeSkinnyFat = "skinny-fat"
	BodyTypeFat       = "fat"
	BodyTypeLean      = "lean"
	BodyTypeMuscular  = "muscular"
)

// Desired outcome categories accepted by the backend.
const (
	OutcomeLeanBulk    = "lean-bulk"
	OutcomeMuscular    = "muscular"
	OutcomeWeightLoss  = "weight-loss"
	OutcomeMaintenance = "maintenance"
	OutcomeStrength    = "strength"
)

var (
	BodyTypes = []string{BodyTypeSkinny, BodyTypeSkinnyFat, BodyTypeFat, BodyTypeLean, BodyTypeMuscular}
	Outcomes  = []string{OutcomeLeanBulk, OutcomeMuscular, OutcomeWeightLoss, OutcomeMaintenance, OutcomeStrength}
)

// Profile holds the physical attributes of a user. Height is in centimetres,
// weight in kilograms.
type Profile struct {
	Height         float64 `json:"height,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	BodyType       string  `json:"bodyType,omitempty"`
	DesiredOutcome string  `json:"desiredOutcome,omitempty"`
}

// Goals are the daily targets: protein in grams, calories in kcal, water in
// glasses and sleep in hours.
type Goals struct {
	Protein  float64 `json:"protein"`
	Calories float64 `json:"calories"`
	Water    float64 `json:"water"`
	Sleep    float64 `json:"sleep"`
}

// DefaultGoals are applied to freshly created accounts.
func DefaultGoals() Goals {
	return Goals{Protein: 150, Calories: 2000, Water: 8, Sleep: 8}
}

// User is the profile the session holds for the authenticated account.
// It is replaced wholesale; callers get copies and must not expect in-place
// edits to propagate.
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
	Goals   Goals   `json:"goals"`
}

// Clone returns a copy of u, or nil when u is nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// IsValidBodyType reports whether v is a known body type.
func IsValidBodyType(v string) bool {
	return contains(BodyTypes, v)
}

// IsValidOutcome reports whether v is a known desired outcome.
func IsValidOutcome(v string) bool {
	return contains(Outcomes, v)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
