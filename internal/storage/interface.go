package storage

import (
	"context"

	"github.com/rugbyops/zoneclips/internal/model"
)

// Storage defines the interface for the two durable record collections.
// Collections are loaded and rewritten wholesale: there is no partial or
// incremental persistence, and callers own the read-mutate-write sequence.
type Storage interface {
	// User collection
	LoadUsers(ctx context.Context) ([]model.User, error)
	SaveUsers(ctx context.Context, users []model.User) error

	// Video collection
	LoadVideos(ctx context.Context) ([]model.Video, error)
	SaveVideos(ctx context.Context, videos []model.Video) error
}
