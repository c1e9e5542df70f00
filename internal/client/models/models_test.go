package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_Percent(t *testing.T) {
	tests := []struct {
		name string
		m    Metric
		want float64
	}{
		{"half", Metric{Current: 1000, Goal: 2000}, 50},
		{"capped", Metric{Current: 3000, Goal: 2000}, 100},
		{"zero goal", Metric{Current: 5, Goal: 0}, 0},
		{"nothing logged", Metric{Current: 0, Goal: 8}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.m.Percent(), 0.0001)
		})
	}
}

func TestUser_CloneIsIndependent(t *testing.T) {
	u := &User{Name: "Alex", Goals: DefaultGoals()}
	c := u.Clone()
	c.Goals.Water = 12

	assert.Equal(t, float64(8), u.Goals.Water)
	assert.Nil(t, (*User)(nil).Clone())
}

func TestUser_JSONFieldNames(t *testing.T) {
	raw := `{"id":"u1","name":"Alex","email":"a@x.io",
		"profile":{"height":180,"weight":80,"bodyType":"lean","desiredOutcome":"strength"},
		"goals":{"protein":160,"calories":2500,"water":10,"sleep":7}}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(raw), &u))
	assert.Equal(t, "lean", u.Profile.BodyType)
	assert.Equal(t, "strength", u.Profile.DesiredOutcome)
	assert.Equal(t, float64(2500), u.Goals.Calories)
}

func TestCategoryValidation(t *testing.T) {
	assert.True(t, IsValidBodyType("skinny-fat"))
	assert.False(t, IsValidBodyType("athletic"))
	assert.True(t, IsValidOutcome("weight-loss"))
	assert.False(t, IsValidOutcome("bulk"))
}
