package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password and creates an account. On
// success the new session is active immediately.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var user *models.User
	err = a.run(ctx, "Creating account", func(ctx context.Context) error {
		user, err = a.svc.Auth.Signup(ctx, name, email, string(password))
		return err
	})
	if err != nil {
		return err
	}

	a.greet(user)
	a.println("Set up your body profile with 'profile' and your daily targets with 'goals'.")
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	var user *models.User
	err = a.run(ctx, "Logging in", func(ctx context.Context) error {
		user, err = a.svc.Auth.Login(ctx, email, string(password))
		return err
	})
	if err != nil {
		return err
	}

	a.greet(user)
	return nil
}

// Logout clears the session locally. The backend keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	a.loggingOut.Store(true)
	defer a.loggingOut.Store(false)

	if err := a.svc.Auth.Logout(ctx); err != nil {
		a.println("Error: " + userMessage(err))
		return err
	}
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the profile held by the session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		a.println("Signed in, profile not loaded yet. Try 'profile'.")
		return nil
	}

	a.printf("%s <%s>\n", u.Name, u.Email)
	p := u.Profile
	if p.Height != 0 || p.Weight != 0 {
		a.printf("  Height %s cm, weight %s kg\n", formatNumber(p.Height), formatNumber(p.Weight))
	}
	if p.BodyType != "" || p.DesiredOutcome != "" {
		a.printf("  Body type %s, aiming for %s\n", orDash(p.BodyType), orDash(p.DesiredOutcome))
	}
	g := u.Goals
	a.printf("  Goals: %s g protein, %s kcal, %s glasses of water, %s h sleep\n",
		formatNumber(g.Protein), formatNumber(g.Calories), formatNumber(g.Water), formatNumber(g.Sleep))
	return nil
}

func (a *App) greet(u *models.User) {
	if u == nil {
		a.println("Logged in.")
		return
	}
	a.println(fmt.Sprintf("Welcome, %s!", u.Name))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
