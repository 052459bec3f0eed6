package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogsapp/internal/dbx"
)

const (
	tokenKey        = "auth_token"
	tokenSavedAtKey = "auth_token_saved_at"
)

var ErrEmptyToken = errors.New("empty token")

// TokenStore keeps the bearer token in the settings table. The absence of
// the token means the user is logged out. The token and the time it was
// saved are written and removed together.
type TokenStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db, now: time.Now}
}

func (s *TokenStore) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// Token returns the persisted token or "" when there is none.
func (s *TokenStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo(s.db).Get(ctx, tokenKey)
	return token, err
}

func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, tokenKey, token); err != nil {
			return err
		}
		return r.Set(ctx, tokenSavedAtKey, s.now().UTC().Format(time.RFC3339))
	})
}

// ClearToken removes the token. It is a no-op when there is none.
func (s *TokenStore) ClearToken(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return r.Delete(ctx, tokenSavedAtKey)
	})
}

// SavedAt returns when the current token was stored; zero when there is none.
func (s *TokenStore) SavedAt(ctx context.Context) (time.Time, error) {
	raw, ok, err := s.repo(s.db).Get(ctx, tokenSavedAtKey)
	if err != nil || !ok {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token timestamp: %w", err)
	}
	return t, nil
}
