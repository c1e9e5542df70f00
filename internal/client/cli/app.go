package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/gymbro/internal/client/api"
	"github.com/dmitrijs2005/gymbro/internal/client/services"
	"github.com/dmitrijs2005/gymbro/internal/client/session"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

const pingTimeout = 3 * time.Second

// Services bundles what the commands call.
type Services struct {
	Auth      services.AuthService
	Tracking  services.TrackingService
	Profile   services.ProfileService
	Dashboard services.DashboardService
}

type App struct {
	svc     Services
	session *session.Store
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// loggingOut is set while the user's own logout runs, so the session
	// listener can tell it apart from a rejected token.
	loggingOut atomic.Bool
}

func NewApp(svc Services, sess *session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{svc: svc, session: sess, log: log, reader: bufio.NewReader(in), out: out}
}

// Run restores the saved session, then runs the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {

	a.session.OnChange(a.sessionChanged)

	if err := a.svc.Auth.Restore(ctx); err != nil {
		a.log.Error(ctx, "restore session", "error", err)
		a.println("Could not read the saved session; please log in.")
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	if err := a.svc.Auth.Ping(pingCtx); err != nil {
		// any HTTP answer means the backend is up, even without /health
		if k := api.KindOf(err); k == api.KindNetwork || k == api.KindTimeout {
			a.println("Warning: backend unreachable (" + userMessage(err) + "). Commands will fail until it is up.")
		}
	}
	cancel()

	a.println("Welcome to GymBro (type 'help' for commands)")
	if u := a.session.User(); u != nil {
		a.println("Welcome back, " + u.Name + "!")
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	if !a.session.Authenticated() {
		return "guest"
	}
	if u := a.session.User(); u != nil && u.Email != "" {
		return u.Email
	}
	return "signed in"
}

// sessionChanged prints the re-login hint when the session disappears
// without the user asking for it.
func (a *App) sessionChanged(s session.Session) {
	if s.Authenticated() || a.loggingOut.Load() {
		return
	}
	a.println("Your session has expired. Please log in again.")
}

// run prints the loading line, executes fn and reports the outcome.
func (a *App) run(ctx context.Context, label string, fn func(ctx context.Context) error) error {
	a.println(label + "...")
	if err := fn(ctx); err != nil {
		a.println("Error: " + userMessage(err))
		return err
	}
	return nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// userMessage turns an error into one line fit for the terminal.
func userMessage(err error) string {
	if errors.Is(err, services.ErrInvalidInput) {
		return err.Error()
	}
	if api.KindOf(err) != 0 {
		return api.Message(err)
	}
	return err.Error()
}
