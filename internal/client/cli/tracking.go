package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

// Food logs a meal. The description comes from args or a prompt.
func (a *App) Food(ctx context.Context, args []string) error {
	food, err := a.textArg(args, "What did you eat?")
	if err != nil {
		return err
	}
	calories, err := GetNumber(a.reader, "Calories (optional)", 0, a.out)
	if err != nil {
		return a.inputError(err)
	}
	protein, err := GetNumber(a.reader, "Protein in grams (optional)", 0, a.out)
	if err != nil {
		return a.inputError(err)
	}

	entry := models.FoodEntry{Food: food, Calories: calories, Protein: protein}
	return a.logged(ctx, "Logging food", func(ctx context.Context) error {
		return a.svc.Tracking.LogFood(ctx, entry)
	})
}

// Water logs millilitres of water.
func (a *App) Water(ctx context.Context, args []string) error {
	amount, err := a.numberArg(args, "How much water (ml)?")
	if err != nil {
		return err
	}
	return a.logged(ctx, "Logging water", func(ctx context.Context) error {
		return a.svc.Tracking.LogWater(ctx, amount)
	})
}

// Sleep logs hours slept.
func (a *App) Sleep(ctx context.Context, args []string) error {
	hours, err := a.numberArg(args, "How many hours did you sleep?")
	if err != nil {
		return err
	}
	return a.logged(ctx, "Logging sleep", func(ctx context.Context) error {
		return a.svc.Tracking.LogSleep(ctx, hours)
	})
}

// Workout logs a session: "workout run 30" or interactive prompts.
func (a *App) Workout(ctx context.Context, args []string) error {
	var typeArgs []string
	if len(args) > 0 {
		typeArgs = args[:1]
	}
	kind, err := a.textArg(typeArgs, "Workout type (e.g. run, lifting, yoga)")
	if err != nil {
		return err
	}

	var minuteArgs []string
	if len(args) > 1 {
		minuteArgs = args[1:2]
	}
	minutes, err := a.numberArg(minuteArgs, "Duration in minutes")
	if err != nil {
		return err
	}

	entry := models.WorkoutEntry{Type: kind, Duration: int(minutes)}
	return a.logged(ctx, "Logging workout", func(ctx context.Context) error {
		return a.svc.Tracking.LogWorkout(ctx, entry)
	})
}

// Junk logs junk food.
func (a *App) Junk(ctx context.Context, args []string) error {
	junk, err := a.textArg(args, "What junk food did you have?")
	if err != nil {
		return err
	}
	return a.logged(ctx, "Logging junk food", func(ctx context.Context) error {
		return a.svc.Tracking.LogJunk(ctx, junk)
	})
}

func (a *App) logged(ctx context.Context, label string, fn func(ctx context.Context) error) error {
	if err := a.run(ctx, label, fn); err != nil {
		return err
	}
	a.println("Logged.")
	return nil
}

func (a *App) textArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", a.inputError(err)
	}
	return text, nil
}

func (a *App) numberArg(args []string, prompt string) (float64, error) {
	text := ""
	if len(args) > 0 {
		text = args[0]
	} else {
		var err error
		if text, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, a.inputError(err)
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, a.inputError(fmt.Errorf("%q is not a number", text))
	}
	return v, nil
}

func (a *App) inputError(err error) error {
	a.println("Error: " + err.Error())
	return err
}
