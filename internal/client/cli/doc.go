// Package cli provides the interactive GymBro command-line client.
//
// Each screen of the mobile app is a REPL command. A command goes through
// idle -> loading -> done or error: it prints what it is doing, waits for
// the backend and prints either the result or a one-line error.
//
//	Signed out: signup, login, help, exit
//	Signed in:  whoami, profile, goals, food, water, sleep, workout, junk,
//	            dashboard, logout, help, exit
//
// The session is restored from disk on start. When the backend rejects the
// token the session is cleared and the REPL prints a re-login hint.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
