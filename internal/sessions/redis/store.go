package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rugbyops/zoneclips/internal/dependencies/clock"
	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/sessions"
)

// Key prefix for all session data
const keyPrefix = "zoneclips"

// Store is a Redis-backed session store. Expiry is handled by Redis TTLs,
// so snapshots disappear without any cleanup pass.
type Store struct {
	client *redis.Client
	clock  clock.Clock
	cfg    sessions.Config
}

// Config holds Redis connection settings for the session store
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// New creates a new Redis session store, verifying the connection
func New(redisCfg Config, clk clock.Clock, cfg sessions.Config) (*Store, error) {
	opts, err := redis.ParseURL(redisCfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = redisCfg.PoolSize
	opts.MinIdleConns = redisCfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewWithClient(client, clk, cfg), nil
}

// NewWithClient creates a Redis session store with an existing client (for testing)
func NewWithClient(client *redis.Client, clk clock.Clock, cfg sessions.Config) *Store {
	if cfg.TTL == 0 {
		cfg = sessions.DefaultConfig()
	}
	return &Store{
		client: client,
		clock:  clk,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ sessions.Store = (*Store)(nil)

func (s *Store) Create(ctx context.Context, session model.Session) (string, error) {
	token := sessions.NewToken()
	now := s.clock.Now()

	session.Token = token
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.cfg.TTL)

	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKey(token), data, s.cfg.TTL).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *Store) Get(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// sessionKey returns the Redis key for a session token
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}
