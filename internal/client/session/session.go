// Package session is the client's single source of truth for "is the user
// authenticated, and as whom".
//
// A Store keeps one bearer token and the matching user profile in memory and
// persists the token (only the token) to a durable storage.Store, so a
// session survives restarts. Mutations are full replacements serialized by a
// mutex; readers take an atomic snapshot and never wait for a write.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
	"github.com/dmitrijs2005/gymbro/internal/client/storage"
	"github.com/dmitrijs2005/gymbro/internal/common"
	"github.com/dmitrijs2005/gymbro/internal/logging"
)

// Session is an immutable snapshot. User is only meaningful when Token is set.
type Session struct {
	Token string
	User  *models.User
}

// Authenticated reports whether the snapshot carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// ProfileFetcher loads the profile belonging to the current token.
type ProfileFetcher interface {
	Profile(ctx context.Context) (*models.User, error)
}

// Store holds the current session. The zero value is not usable; use New.
type Store struct {
	durable storage.Store
	log     logging.Logger

	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Session]

	listenersMu sync.Mutex
	listeners   []func(Session)

	readyOnce sync.Once
	ready     chan struct{}
}

// New returns an empty Store persisting to durable.
func New(durable storage.Store, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{durable: durable, log: log, ready: make(chan struct{})}
	s.current.Store(&Session{})
	return s
}

// Snapshot returns the current session. The user is a copy.
func (s *Store) Snapshot() Session {
	cur := s.current.Load()
	return Session{Token: cur.Token, User: cur.User.Clone()}
}

// Token returns the current token or "".
func (s *Store) Token() string {
	return s.current.Load().Token
}

// User returns a copy of the current profile, or nil.
func (s *Store) User() *models.User {
	return s.current.Load().User.Clone()
}

// Authenticated reports whether a token is held.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}

// Ready is closed once Load has finished, whatever its outcome.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// OnChange registers fn to be called with the new snapshot after every
// mutation. Callbacks run on the mutating goroutine, outside the write lock.
func (s *Store) OnChange(fn func(Session)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load restores the persisted token, then asks fetcher for the profile.
// A failed profile fetch is logged and otherwise ignored: the token stays
// trusted until a request is rejected. Storage errors are returned. Ready is
// closed in every case.
func (s *Store) Load(ctx context.Context, fetcher ProfileFetcher) error {
	defer s.readyOnce.Do(func() { close(s.ready) })

	token, ok, err := s.durable.Get(ctx, common.SessionTokenKey)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	s.replace(&Session{Token: token})

	if fetcher == nil {
		return nil
	}

	user, err := fetcher.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch on startup failed", "error", err)
		return nil
	}

	s.mu.Lock()
	cur := s.current.Load()
	// The token may have been cleared or replaced while the fetch was in flight.
	if cur.Token != token {
		s.mu.Unlock()
		return nil
	}
	next := &Session{Token: token, User: user.Clone()}
	s.current.Store(next)
	s.mu.Unlock()

	s.notify(*next)
	return nil
}

// SetSession persists token and then installs token and user together. If
// persisting fails the in-memory session is left as it was.
func (s *Store) SetSession(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return fmt.Errorf("set session: empty token")
	}

	s.mu.Lock()
	if err := s.durable.Put(ctx, common.SessionTokenKey, token); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persist session token: %w", err)
	}
	next := &Session{Token: token, User: user.Clone()}
	s.current.Store(next)
	s.mu.Unlock()

	s.notify(*next)
	return nil
}

// UpdateProfile replaces the profile, leaving the token and durable storage
// alone. It is a no-op when there is no session.
func (s *Store) UpdateProfile(user *models.User) {
	s.mu.Lock()
	cur := s.current.Load()
	if cur.Token == "" {
		s.mu.Unlock()
		return
	}
	next := &Session{Token: cur.Token, User: user.Clone()}
	s.current.Store(next)
	s.mu.Unlock()

	s.notify(*next)
}

// Clear removes the durable token and empties the session. Memory is cleared
// even when the durable delete fails; that error is returned. Clearing an
// empty store repeats the idempotent delete and notifies nobody.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	had := s.current.Load().Token != ""
	err := s.clearLocked(ctx)
	s.mu.Unlock()

	if had {
		s.notify(Session{})
	}
	return err
}

// Invalidate clears the session only if it still holds token. The 401 path
// uses it so that a rejection of an older credential cannot wipe a session
// established after that request was sent. An empty token never clears.
func (s *Store) Invalidate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	if s.current.Load().Token != token {
		s.mu.Unlock()
		return false, nil
	}
	err := s.clearLocked(ctx)
	s.mu.Unlock()

	s.notify(Session{})
	return true, err
}

func (s *Store) clearLocked(ctx context.Context) error {
	s.current.Store(&Session{})
	if err := s.durable.Delete(ctx, common.SessionTokenKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}

func (s *Store) replace(next *Session) {
	s.mu.Lock()
	s.current.Store(next)
	s.mu.Unlock()
	s.notify(*next)
}

func (s *Store) notify(snap Session) {
	s.listenersMu.Lock()
	listeners := append([]func(Session){}, s.listeners...)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(Session{Token: snap.Token, User: snap.User.Clone()})
	}
}
