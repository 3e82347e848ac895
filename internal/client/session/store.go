package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/experiences/internal/common"
	"github.com/dmitrijs2005/experiences/internal/dbx"
	"github.com/dmitrijs2005/experiences/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// State is a snapshot of the session.
type State struct {
	Identity        *models.Identity
	Token           string
	IsAuthenticated bool
}

type Store struct {
	mu     sync.RWMutex
	state  State
	db     *sql.DB
	logger logging.Logger
}

// NewStore returns a logged-out store persisting to db. Call Restore to
// load a previous session.
func NewStore(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger.With("component", "session")}
}

// Adopt makes identity and token the current session. Both keys are written
// in one transaction; a storage failure is logged and memory is updated
// anyway. An empty token leaves the store unauthenticated.
func (s *Store) Adopt(ctx context.Context, identity models.Identity, token string) {
	if err := s.persist(ctx, identity, token); err != nil {
		s.logger.Warn(ctx, "failed to persist session", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState(identity, token)
}

// Clear drops the session from storage and memory. Calling it while logged
// out is a no-op apart from the storage round trip.
func (s *Store) Clear(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserKey)
	})
	if err != nil {
		s.logger.Warn(ctx, "failed to remove persisted session", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// Current returns the state left by the latest Adopt, Clear or Restore.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	if st.Identity != nil {
		id := *st.Identity
		st.Identity = &id
	}
	return st
}

// Token implements client.TokenSource.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token, s.state.IsAuthenticated
}

// Restore loads the persisted session into memory. Missing, partial or
// corrupt records leave the store logged out.
func (s *Store) Restore(ctx context.Context) {
	st, err := s.load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "discarding persisted session", "error", err)
		st = State{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
}

// ExpiresAt reports the expiry of the current token when it is a JWT with
// an exp claim.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token, ok := s.Token()
	if !ok {
		return time.Time{}, false
	}
	exp, err := TokenExpiry(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, true
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature;
// the client has no key and only uses the value for display. Opaque tokens
// yield common.ErrInvalidToken.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: no exp claim", common.ErrInvalidToken)
	}
	return claims.ExpiresAt.Time, nil
}

func (s *Store) persist(ctx context.Context, identity models.Identity, token string) error {
	user, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserKey, user)
	})
}

func (s *Store) load(ctx context.Context) (State, error) {
	values, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return State{}, err
	}

	token, user := string(values[common.TokenKey]), values[common.UserKey]
	if token == "" {
		return State{}, nil
	}
	if len(user) == 0 {
		return State{}, errors.New("token stored without identity")
	}

	var identity models.Identity
	if err := json.Unmarshal(user, &identity); err != nil {
		return State{}, fmt.Errorf("corrupt identity record: %w", err)
	}
	return newState(identity, token), nil
}

func newState(identity models.Identity, token string) State {
	if token == "" {
		return State{}
	}
	return State{Identity: &identity, Token: token, IsAuthenticated: true}
}

// subjectClaims lists the claims backends commonly use for the user id.
var subjectClaims = []string{"sub", "id", "_id", "userId", "user_id"}

// TokenSubject extracts the user id from a JWT without verifying it.
// It returns "" for opaque tokens or tokens without a known id claim.
func TokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, name := range subjectClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
