package cli

import (
	"context"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// Profile refreshes the profile, then walks through the body metrics. Empty
// answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	var user *models.User
	err := a.run(ctx, "Loading profile", func(ctx context.Context) error {
		var err error
		user, err = a.svc.Profile.Refresh(ctx)
		return err
	})
	if err != nil {
		return err
	}

	cur := user.Profile
	height, err := GetNumber(a.reader, "Height (cm)", cur.Height, a.out)
	if err != nil {
		return a.inputError(err)
	}
	weight, err := GetNumber(a.reader, "Weight (kg)", cur.Weight, a.out)
	if err != nil {
		return a.inputError(err)
	}
	bodyType, err := GetChoice(a.reader, "Body type", models.BodyTypes, cur.BodyType, a.out)
	if err != nil {
		return a.inputError(err)
	}
	outcome, err := GetChoice(a.reader, "Desired outcome", models.Outcomes, cur.DesiredOutcome, a.out)
	if err != nil {
		return a.inputError(err)
	}

	update := models.ProfileUpdate{Height: height, Weight: weight, BodyType: bodyType, DesiredOutcome: outcome}
	err = a.run(ctx, "Saving profile", func(ctx context.Context) error {
		_, err := a.svc.Profile.UpdateProfile(ctx, update)
		return err
	})
	if err != nil {
		return err
	}

	a.println("Profile saved.")
	return nil
}

// Goals edits the daily targets, starting from the current ones or the
// defaults.
func (a *App) Goals(ctx context.Context) error {
	cur := models.DefaultGoals()
	if u := a.session.User(); u != nil && u.Goals != (models.Goals{}) {
		cur = u.Goals
	}

	var (
		g   models.Goals
		err error
	)
	if g.Protein, err = GetNumber(a.reader, "Protein goal (g)", cur.Protein, a.out); err != nil {
		return a.inputError(err)
	}
	if g.Calories, err = GetNumber(a.reader, "Calorie goal (kcal)", cur.Calories, a.out); err != nil {
		return a.inputError(err)
	}
	if g.Water, err = GetNumber(a.reader, "Water goal (glasses)", cur.Water, a.out); err != nil {
		return a.inputError(err)
	}
	if g.Sleep, err = GetNumber(a.reader, "Sleep goal (hours)", cur.Sleep, a.out); err != nil {
		return a.inputError(err)
	}

	err = a.run(ctx, "Saving goals", func(ctx context.Context) error {
		_, err := a.svc.Profile.UpdateGoals(ctx, g)
		return err
	})
	if err != nil {
		return err
	}

	a.println("Goals saved.")
	return nil
}
