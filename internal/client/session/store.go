package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/blogsapp/internal/client/client"
	"github.com/dmitrijs2005/blogsapp/internal/client/models"
	"github.com/dmitrijs2005/blogsapp/internal/logging"
)

var ErrNoSession = errors.New("not signed in")

type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// TokenStore is the durable home of the bearer token.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	SavedAt(ctx context.Context) (time.Time, error)
}

type ProfileFetcher interface {
	Profile(ctx context.Context) (*models.User, error)
}

// Info describes the active session for display.
type Info struct {
	User *models.User
	// SignedInAt is when the token was stored; zero if unknown.
	SignedInAt time.Time
	// ExpiresAt is the token's exp claim; zero when the token is not a JWT
	// or carries no expiry.
	ExpiresAt time.Time
}

type Store struct {
	tokens   TokenStore
	profiles ProfileFetcher
	logger   logging.Logger

	mu    sync.RWMutex
	user  *models.User
	state State
}

// NewStore builds the session store. When a token survives from a previous
// run, the profile is fetched right away to restore the session; a failure
// there leaves the store anonymous and is only logged.
func NewStore(ctx context.Context, tokens TokenStore, profiles ProfileFetcher, logger logging.Logger) *Store {
	s := &Store{tokens: tokens, profiles: profiles, logger: logger}

	token, err := tokens.Token(ctx)
	if err != nil {
		logger.Error(ctx, "read persisted token", "error", err)
		return s
	}
	if token == "" {
		return s
	}

	if err := s.FetchProfile(ctx); err != nil {
		logger.Warn(ctx, "could not restore session", "error", err)
	}
	return s
}

// Login persists token and resolves it to a user. The returned error is the
// profile failure, if any; the store is then anonymous again.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.tokens.SetToken(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return s.FetchProfile(ctx)
}

// FetchProfile resolves the persisted token to the current user. On failure
// the token is cleared and the user reset. A 401 has already cleared the
// token in the API client, so it is not cleared a second time.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.setState(StateAuthenticating, nil)

	// no lock held: a 401 re-enters the store through Expire
	user, err := s.profiles.Profile(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrUnauthorized) {
			if clearErr := s.tokens.ClearToken(ctx); clearErr != nil {
				s.logger.Error(ctx, "clear token", "error", clearErr)
			}
		}
		s.setState(StateAnonymous, nil)
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.setState(StateAuthenticated, user)
	s.logger.Info(ctx, "signed in", "user_id", user.ID)
	return nil
}

// Logout clears the persisted token and the current user. Calling it while
// signed out is harmless.
func (s *Store) Logout(ctx context.Context) error {
	s.setState(StateAnonymous, nil)
	if err := s.tokens.ClearToken(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Expire forgets the current user after the server rejected the token. The
// token itself is cleared by the API client.
func (s *Store) Expire(ctx context.Context) {
	s.mu.Lock()
	was := s.state
	s.user, s.state = nil, StateAnonymous
	s.mu.Unlock()

	if was == StateAuthenticated {
		s.logger.Info(ctx, "session expired")
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Info reports details of the active session.
func (s *Store) Info(ctx context.Context) (Info, error) {
	user := s.CurrentUser()
	if user == nil {
		return Info{}, ErrNoSession
	}

	info := Info{User: user}

	savedAt, err := s.tokens.SavedAt(ctx)
	if err != nil {
		return Info{}, err
	}
	info.SignedInAt = savedAt

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return Info{}, err
	}
	info.ExpiresAt = TokenExpiry(token)

	return info, nil
}

// TokenExpiry returns the exp claim of a JWT without verifying its
// signature, which only the server can do. Zero when unavailable.
func TokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

func (s *Store) setState(state State, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.user = state, user
}
