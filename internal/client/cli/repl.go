package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Goals(ctx context.Context) error
	Food(ctx context.Context, args []string) error
	Water(ctx context.Context, args []string) error
	Sleep(ctx context.Context, args []string) error
	Workout(ctx context.Context, args []string) error
	Junk(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signup, login, help, exit"
	helpSignedIn  = "Available commands: dashboard, food [what], water [ml], sleep [hours], " +
		"workout [type] [minutes], junk [what], profile, goals, whoami, logout, help, exit"
)

// signedInOnly lists commands that need a session.
var signedInOnly = map[string]bool{
	"whoami": true, "profile": true, "goals": true, "food": true, "water": true,
	"sleep": true, "workout": true, "junk": true, "dashboard": true, "logout": true,
}

// runREPL starts a simple read–eval–print loop for the GymBro CLI.
//
// It reads a line from reader, parses the first token as the command and
// the rest as arguments, and dispatches to methods on 'a'. The loop exits on
// EOF or when the user types "exit" or "quit".
//
// Commands that need a session print a hint instead of running while signed
// out. Errors returned by command handlers are ignored here; handlers print
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("gymbro (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if signedInOnly[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first (login or signup).")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "goals":
			_ = a.Goals(ctx)

		case "food":
			_ = a.Food(ctx, args)

		case "water":
			_ = a.Water(ctx, args)

		case "sleep":
			_ = a.Sleep(ctx, args)

		case "workout":
			_ = a.Workout(ctx, args)

		case "junk":
			_ = a.Junk(ctx, args)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
