// Package session tracks who is signed in to the storefront.
package session

import (
	"context"
	"sync"

	"github.com/vetrivel962969-dotcom/Paperid/internal/gateway"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"go.uber.org/zap"
)

// Store is either anonymous or holds the authenticated user. Gateway calls
// happen outside the lock; results are applied afterwards, and only if no
// login or logout happened while the call was in flight.
type Store struct {
	gw     gateway.Gateway
	logger *zap.Logger

	mu      sync.RWMutex
	user    *model.User
	loading bool
	// gen changes on every login and logout.
	gen uint64
}

// NewStore starts in the loading state until Restore has run once.
func NewStore(gw gateway.Gateway, logger ...*zap.Logger) *Store {
	if gw == nil {
		panic("gateway cannot be nil")
	}
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.store")
	}
	return &Store{gw: gw, logger: l, loading: true}
}

// Restore asks the gateway for the current profile. A missing session is
// not an error; any other failure leaves the store anonymous and is
// returned. A result that arrives after a login or logout is dropped.
func (s *Store) Restore(ctx context.Context) error {
	gen := s.generation()
	user, err := s.gw.GetProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if gen != s.gen {
		s.logger.Debug("stale session restore discarded")
		return nil
	}

	switch {
	case err == nil:
		s.user = &user
		s.logger.Debug("session restored", zap.String("user_id", user.ID))
		return nil
	case gateway.IsNotAuthenticated(err):
		s.user = nil
		return nil
	default:
		s.user = nil
		s.logger.Warn("session restore failed", zap.Error(err))
		return err
	}
}

func (s *Store) Login(ctx context.Context, email string) (model.User, error) {
	user, err := s.gw.Login(ctx, email)
	if err != nil {
		s.logger.Info("login rejected", zap.Error(err))
		return model.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.gen++
	s.mu.Unlock()

	s.logger.Info("logged in", zap.String("user_id", user.ID))
	return user, nil
}

// UpdateProfile merges update into the current user once the gateway
// accepts it. If the session changed meanwhile the gateway's user is
// returned and the local session is left alone.
func (s *Store) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (model.User, error) {
	gen := s.generation()
	updated, err := s.gw.UpdateProfile(ctx, update)
	if err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.user == nil {
		s.logger.Debug("stale profile update discarded", zap.String("user_id", updated.ID))
		return updated, nil
	}
	merged := update.Apply(*s.user)
	s.user = &merged
	return merged, nil
}

// Logout always ends the local session. The gateway call is best effort.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.gen++
	s.mu.Unlock()

	if err := s.gw.Logout(ctx); err != nil {
		s.logger.Warn("gateway logout failed", zap.Error(err))
	}
}

func (s *Store) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Store) Authenticated() bool {
	_, ok := s.User()
	return ok
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
