package middleware

import (
	"context"
	"net/http"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/sessions"
	"github.com/rugbyops/zoneclips/internal/web/templates"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the cookie carrying the opaque session token
	SessionCookieName = "session"
)

// GetSession retrieves the session snapshot from the request context.
// Returns nil if the request is not authenticated.
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// RequireAuth returns middleware that requires an authenticated session:
// a resolvable token whose snapshot has email, role and an active status.
// Redirects to the login page otherwise.
func RequireAuth(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := resolveSession(r, store)
			if !session.Authenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns middleware that requires the admin role on an
// already-resolved session. The caller is logged in but lacks privilege,
// so this renders the blocked-access page rather than redirecting.
// Must run after RequireAuth.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSession(r.Context())
			if !session.IsAdmin() {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusForbidden)
				data := templates.ForbiddenData{
					PageData: templates.PageData{Title: "Access denied", Session: session},
				}
				_ = templates.Forbidden(data).Render(r.Context(), w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't
// require it. Sets the session in context if resolved, nil otherwise.
func OptionalAuth(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := resolveSession(r, store)
			if !session.Authenticated() {
				session = nil
			}
			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, store sessions.Store) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	session, err := store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return session
}
