package memory

import (
	"context"
	"sync"

	"github.com/rugbyops/zoneclips/internal/dependencies/clock"
	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/sessions"
)

// Store is an in-memory session store with clock-driven expiry
type Store struct {
	clock clock.Clock
	cfg   sessions.Config

	mu       sync.RWMutex
	sessions map[string]*model.Session
}

// New creates a new in-memory session store
func New(clk clock.Clock, cfg sessions.Config) *Store {
	if cfg.TTL == 0 {
		cfg = sessions.DefaultConfig()
	}
	return &Store{
		clock:    clk,
		cfg:      cfg,
		sessions: make(map[string]*model.Session),
	}
}

// Ensure Store implements the interface
var _ sessions.Store = (*Store)(nil)

func (s *Store) Create(ctx context.Context, session model.Session) (string, error) {
	token := sessions.NewToken()
	now := s.clock.Now()

	session.Token = token
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.cfg.TTL)

	s.mu.Lock()
	s.sessions[token] = &session
	s.mu.Unlock()

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrSessionNotFound
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, model.ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

// CleanExpired removes expired sessions (call periodically)
func (s *Store) CleanExpired() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
