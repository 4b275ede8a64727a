package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/services/account"
	"github.com/rugbyops/zoneclips/internal/web/middleware"
	"github.com/rugbyops/zoneclips/internal/web/templates"
)

// AuthHandler handles authentication pages and actions
type AuthHandler struct {
	accounts   *account.Service
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts *account.Service, sessionTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Root redirects to the clip listing for logged-in users, login otherwise
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/videos", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		// Already logged in
		http.Redirect(w, r, "/videos", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Log in",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	renderPage(w, r, templates.Login(data))
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.renderLoginError(w, r, "Email and password are required", email)
		return
	}

	session, err := h.accounts.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			h.renderLoginError(w, r, "Incorrect email or password", email)
		case errors.Is(err, model.ErrInactiveAccount):
			h.renderLoginError(w, r, "Account is inactive. Contact the administrator.", email)
		default:
			serverError(w, h.logger, err)
		}
		return
	}

	h.setSessionCookie(w, session.Token)
	http.Redirect(w, r, "/videos", http.StatusSeeOther)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetSession(r.Context()) != nil {
		http.Redirect(w, r, "/videos", http.StatusSeeOther)
		return
	}

	data := templates.RegisterData{
		PageData: templates.PageData{
			Title: "Register",
			Flash: middleware.GetFlash(r.Context()),
		},
	}
	renderPage(w, r, templates.Register(data))
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		h.renderRegisterError(w, r, "Email and password are required", email)
		return
	}

	if err := h.accounts.Register(r.Context(), email, password); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			h.renderRegisterError(w, r, "Email already registered", email)
		} else {
			serverError(w, h.logger, err)
		}
		return
	}

	middleware.SetFlash(w, "success", "Account created. An administrator has to activate it before you can log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout destroys the current session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.accounts.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("logout failed", slog.String("error", err.Error()))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, email string) {
	data := templates.LoginData{
		PageData: templates.PageData{Title: "Log in"},
		Email:    email,
		Error:    errorMsg,
	}
	renderPage(w, r, templates.Login(data))
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, email string) {
	data := templates.RegisterData{
		PageData: templates.PageData{Title: "Register"},
		Email:    email,
		Error:    errorMsg,
	}
	renderPage(w, r, templates.Register(data))
}
