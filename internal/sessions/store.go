package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/rugbyops/zoneclips/internal/model"
)

// Store holds session snapshots keyed by an opaque browser-supplied token.
// Implementations are injected per request rather than held as ambient
// global state, and must be safe for concurrent use.
type Store interface {
	// Create stores the snapshot and returns its freshly generated token
	Create(ctx context.Context, session model.Session) (string, error)
	// Get returns the snapshot for a token, or model.ErrSessionNotFound
	Get(ctx context.Context, token string) (*model.Session, error)
	// Delete removes a session; unknown tokens are a no-op
	Delete(ctx context.Context, token string) error
}

// Config holds session behavior settings shared by all backends
type Config struct {
	TTL time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TTL: 24 * time.Hour,
	}
}

// NewToken generates an opaque session token: 16 random bytes, URL-safe
func NewToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
