package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rugbyops/zoneclips/internal/services/account"
	"github.com/rugbyops/zoneclips/internal/services/catalog"
	"github.com/rugbyops/zoneclips/internal/sessions"
	"github.com/rugbyops/zoneclips/internal/web/handler"
	"github.com/rugbyops/zoneclips/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionStore   sessions.Store
	AccountService *account.Service
	CatalogService *catalog.Service
	SessionTTL     time.Duration
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	requireAuth := middleware.RequireAuth(cfg.SessionStore)
	requireAdmin := middleware.RequireAdmin()
	optionalAuth := middleware.OptionalAuth(cfg.SessionStore)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService, cfg.SessionTTL, cfg.Logger)
	videosHandler := handler.NewVideosHandler(cfg.CatalogService, cfg.Logger)
	adminUsersHandler := handler.NewAdminUsersHandler(cfg.AccountService, cfg.Logger)
	adminVideosHandler := handler.NewAdminVideosHandler(cfg.CatalogService, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for redirect decisions and nav state)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuth)
	public.HandleFunc("/", authHandler.Root).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Authenticated routes
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(requireAuth)
	protected.HandleFunc("/videos", videosHandler.View).Methods(http.MethodGet)

	// Admin routes: authenticated AND admin, as ordered gates
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(flashMiddleware)
	admin.Use(requireAuth)
	admin.Use(requireAdmin)
	admin.HandleFunc("/users", adminUsersHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/user/toggle", adminUsersHandler.Toggle).Methods(http.MethodPost)
	admin.HandleFunc("/user/delete", adminUsersHandler.Delete).Methods(http.MethodPost)
	admin.HandleFunc("/videos", adminVideosHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/videos/add", adminVideosHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/videos/edit", adminVideosHandler.Edit).Methods(http.MethodPost)
	admin.HandleFunc("/videos/delete", adminVideosHandler.Delete).Methods(http.MethodPost)

	return r
}
