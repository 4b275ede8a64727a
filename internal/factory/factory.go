package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rugbyops/zoneclips/internal/config"
	"github.com/rugbyops/zoneclips/internal/credentials"
	"github.com/rugbyops/zoneclips/internal/dependencies/clock"
	"github.com/rugbyops/zoneclips/internal/services/account"
	"github.com/rugbyops/zoneclips/internal/services/catalog"
	"github.com/rugbyops/zoneclips/internal/sessions"
	sessionmemory "github.com/rugbyops/zoneclips/internal/sessions/memory"
	sessionredis "github.com/rugbyops/zoneclips/internal/sessions/redis"
	"github.com/rugbyops/zoneclips/internal/storage"
	storagefile "github.com/rugbyops/zoneclips/internal/storage/file"
	storagememory "github.com/rugbyops/zoneclips/internal/storage/memory"
)

// Backend selection constants
const (
	StoreBackendFile   = "file"
	StoreBackendMemory = "memory"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage  storage.Storage
	Sessions sessions.Store
	Clock    clock.Clock
	Hasher   *credentials.Hasher

	AccountService *account.Service
	CatalogService *catalog.Service
}

// New creates a new application with all dependencies wired from config
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	var store storage.Storage
	switch cfg.Store.Backend {
	case StoreBackendFile, "":
		fileStore := storagefile.New(cfg.Store.UsersPath, cfg.Store.VideosPath)
		if err := fileStore.Init(); err != nil {
			return nil, fmt.Errorf("init file store: %w", err)
		}
		store = fileStore
	case StoreBackendMemory:
		store = storagememory.New()
	default:
		return nil, errors.New("invalid store backend: must be 'file' or 'memory'")
	}

	sessionCfg := sessions.Config{TTL: cfg.Sessions.TTL}

	var sessionStore sessions.Store
	switch cfg.Sessions.Backend {
	case SessionBackendMemory, "":
		sessionStore = sessionmemory.New(clk, sessionCfg)
	case SessionBackendRedis:
		redisCfg := sessionredis.DefaultConfig()
		redisCfg.URL = cfg.Sessions.RedisURL
		redisStore, err := sessionredis.New(redisCfg, clk, sessionCfg)
		if err != nil {
			return nil, fmt.Errorf("connect session redis: %w", err)
		}
		sessionStore = redisStore
	default:
		return nil, errors.New("invalid session backend: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, sessionStore, clk, cfg.Auth.BcryptCost, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, sessionStore sessions.Store, clk clock.Clock, bcryptCost int, logger *slog.Logger) *App {
	hasher := credentials.NewHasher(bcryptCost)
	accountService := account.New(store, sessionStore, hasher, logger)
	catalogService := catalog.New(store, logger)

	return &App{
		Storage:        store,
		Sessions:       sessionStore,
		Clock:          clk,
		Hasher:         hasher,
		AccountService: accountService,
		CatalogService: catalogService,
	}
}
