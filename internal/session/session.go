// Package session owns client-side authentication state.
//
// The Store is the single source of truth for whether a user is signed
// in. Pages read it through Current and Subscribe; only Login and Logout
// mutate it. Credentials survive restarts through the repositories layer,
// and the cold-start status is derived purely from the persisted token.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/bookmatch/internal/api"
	"github.com/desertthunder/bookmatch/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
)

// Status is the published authentication state. Authenticated is true
// exactly when a token is held.
type Status struct {
	Authenticated bool
	Username      string
	UserID        int64
}

// claims mirrors the fields the backend embeds in its bearer tokens. The
// client cannot verify the signature (it has no secret), so claims are
// parsed unverified and used only for display and request bodies; the
// server remains the authority on identity.
type claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Store holds the current session and notifies observers of every
// transition. Mutations are user-triggered and sequential; the mutex only
// guards against concurrent readers.
type Store struct {
	mu        sync.RWMutex
	repo      *repositories.SessionRepository
	auth      api.AuthService
	token     string
	status    Status
	observers map[int]func(Status)
	nextObs   int
}

// NewStore creates a session store backed by repo, restoring any
// persisted credentials so Current reflects prior logins immediately.
func NewStore(repo *repositories.SessionRepository, auth api.AuthService) (*Store, error) {
	s := &Store{
		repo:      repo,
		auth:      auth,
		observers: make(map[int]func(Status)),
	}

	if repo != nil {
		creds, err := repo.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to restore session: %w", err)
		}
		if creds != nil && creds.Token != "" {
			s.token = creds.Token
			s.status = statusFor(creds.Token, creds.Username)
		}
	}

	return s, nil
}

// Token returns the current bearer token, implementing [api.TokenSource].
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the last published status without a network round-trip.
func (s *Store) Current() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Subscribe registers an observer invoked on every transition. The
// returned cancel function removes it. Observers are called synchronously
// from Login/Logout, after the new status is visible through Current.
func (s *Store) Subscribe(fn func(Status)) (cancel func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Login authenticates against the backend. On success the token and
// username are persisted and authenticated=true published; on rejection
// the store is left untouched and the classified error returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if s.repo != nil {
		if err := s.repo.Save(repositories.Credentials{Token: resp.Token, Username: resp.Username}); err != nil {
			return err
		}
	}

	s.publish(resp.Token, statusFor(resp.Token, resp.Username))
	return nil
}

// Logout clears the session unconditionally. No network call is made, so
// it succeeds regardless of backend reachability; a persistence failure is
// reported but the in-memory session is still cleared and published.
func (s *Store) Logout() error {
	var persistErr error
	if s.repo != nil {
		persistErr = s.repo.Clear()
	}

	s.publish("", Status{})
	return persistErr
}

func (s *Store) publish(token string, status Status) {
	s.mu.Lock()
	s.token = token
	s.status = status
	observers := make([]func(Status), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(status)
	}
}

// statusFor derives the published status from a token and the username
// returned at login. Claims refine identity when present; their absence
// means the backend derives the user from the token server-side and the
// client sends a zero user id.
func statusFor(token, username string) Status {
	status := Status{Authenticated: token != "", Username: username}

	var c claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err == nil {
		if c.UserID != 0 {
			status.UserID = c.UserID
		}
		if status.Username == "" {
			if c.Username != "" {
				status.Username = c.Username
			} else if c.Subject != "" {
				status.Username = c.Subject
			}
		}
	}

	return status
}
