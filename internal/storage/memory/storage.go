package memory

import (
	"context"
	"sync"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// It mirrors the whole-collection semantics of the file backend and is
// used by tests and local development.
type Storage struct {
	mu sync.RWMutex

	users  []model.User
	videos []model.Video
}

// New creates a new in-memory storage instance with empty collections
func New() *Storage {
	return &Storage{
		users:  []model.User{},
		videos: []model.Video{},
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User collection

func (s *Storage) LoadUsers(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users []model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]model.User, len(users))
	copy(s.users, users)
	return nil
}

// Video collection

func (s *Storage) LoadVideos(ctx context.Context) ([]model.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Video, len(s.videos))
	copy(out, s.videos)
	return out, nil
}

func (s *Storage) SaveVideos(ctx context.Context, videos []model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = make([]model.Video, len(videos))
	copy(s.videos, videos)
	return nil
}
