package activity

import (
	"time"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// MLPerGlass converts logged millilitres into the glasses the water goal is
// expressed in.
const MLPerGlass = 250

// dayOf truncates t to its calendar date in loc, expressed at UTC midnight so
// consecutive days are exactly 24h apart.
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// progressFor totals the entries dated today against goals.
func progressFor(entries []Entry, goals models.Goals, now time.Time) models.Progress {
	loc := now.Location()
	today := dayOf(now, loc)

	p := models.Progress{
		Calories: models.Metric{Goal: goals.Calories},
		Protein:  models.Metric{Goal: goals.Protein},
		Water:    models.Metric{Goal: goals.Water},
		Sleep:    models.Metric{Goal: goals.Sleep},
	}
	var waterML float64
	for _, e := range entries {
		if !dayOf(e.At, loc).Equal(today) {
			continue
		}
		switch e.Kind {
		case models.ActivityFood:
			p.Calories.Current += e.Calories
			p.Protein.Current += e.Protein
		case models.ActivityWater:
			waterML += e.WaterML
		case models.ActivitySleep:
			p.Sleep.Current += e.SleepHours
		}
	}
	p.Water.Current = waterML / MLPerGlass
	return p
}

// streakFor counts consecutive days in days. The current run ends today, or
// yesterday when nothing is logged yet today.
func streakFor(days map[time.Time]bool, today time.Time) models.Streak {
	var s models.Streak

	for d := range days {
		if days[d.AddDate(0, 0, -1)] {
			continue
		}
		n := 0
		for cur := d; days[cur]; cur = cur.AddDate(0, 0, 1) {
			n++
		}
		if n > s.Longest {
			s.Longest = n
		}
	}

	cur := today
	if !days[cur] {
		cur = cur.AddDate(0, 0, -1)
	}
	for ; days[cur]; cur = cur.AddDate(0, 0, -1) {
		s.Current++
	}
	return s
}

func streaksFor(entries []Entry, now time.Time) models.Streaks {
	loc := now.Location()
	byKind := map[string]map[time.Time]bool{}
	for _, e := range entries {
		if byKind[e.Kind] == nil {
			byKind[e.Kind] = map[time.Time]bool{}
		}
		byKind[e.Kind][dayOf(e.At, loc)] = true
	}

	today := dayOf(now, loc)
	return models.Streaks{
		Food:    streakFor(byKind[models.ActivityFood], today),
		Water:   streakFor(byKind[models.ActivityWater], today),
		Workout: streakFor(byKind[models.ActivityWorkout], today),
		Sleep:   streakFor(byKind[models.ActivitySleep], today),
	}
}
