package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

const barWidth = 20

// Dashboard prints today's progress and the streaks. A failing half is
// reported in place; the other half is still shown.
func (a *App) Dashboard(ctx context.Context) error {
	a.println("Loading dashboard...")
	d := a.svc.Dashboard.Load(ctx)

	if u := a.session.User(); u != nil {
		a.printf("Hi %s, here is today.\n", u.Name)
	}

	a.println("Progress")
	if d.ProgressErr != nil {
		a.println("  unavailable: " + userMessage(d.ProgressErr))
	} else {
		p := d.Progress
		a.println(metricLine("Calories", p.Calories, "kcal"))
		a.println(metricLine("Protein", p.Protein, "g"))
		a.println(metricLine("Water", p.Water, "glasses"))
		a.println(metricLine("Sleep", p.Sleep, "h"))
	}

	a.println("Streaks")
	if d.StreaksErr != nil {
		a.println("  unavailable: " + userMessage(d.StreaksErr))
	} else {
		s := d.Streaks
		a.println(streakLine("Food", s.Food))
		a.println(streakLine("Water", s.Water))
		a.println(streakLine("Workout", s.Workout))
		a.println(streakLine("Sleep", s.Sleep))
	}

	if !d.Complete() {
		if d.ProgressErr != nil {
			return d.ProgressErr
		}
		return d.StreaksErr
	}
	return nil
}

func metricLine(name string, m models.Metric, unit string) string {
	pct := m.Percent()
	filled := int(pct / 100 * barWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled)
	return fmt.Sprintf("  %-9s [%s] %3.0f%%  %s/%s %s",
		name, bar, pct, formatNumber(m.Current), formatNumber(m.Goal), unit)
}

func streakLine(name string, s models.Streak) string {
	return fmt.Sprintf("  %-9s %d %s (best %d)", name, s.Current, days(s.Current), s.Longest)
}

func days(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
