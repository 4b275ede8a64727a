package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/services/account"
	"github.com/rugbyops/zoneclips/internal/web/middleware"
	"github.com/rugbyops/zoneclips/internal/web/templates"
)

// AdminUsersHandler handles the account management pages (admin only)
type AdminUsersHandler struct {
	accounts *account.Service
	logger   *slog.Logger
}

// NewAdminUsersHandler creates a new AdminUsersHandler
func NewAdminUsersHandler(accounts *account.Service, logger *slog.Logger) *AdminUsersHandler {
	return &AdminUsersHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// List renders every account with its role and status
func (h *AdminUsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		serverError(w, h.logger, err)
		return
	}

	data := templates.AdminUsersData{
		PageData: templates.PageData{
			Title:   "Accounts",
			Session: middleware.GetSession(r.Context()),
			Flash:   middleware.GetFlash(r.Context()),
		},
		Users: users,
	}
	renderPage(w, r, templates.AdminUsers(data))
}

// Toggle flips an account between active and inactive
func (h *AdminUsersHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	status, err := h.accounts.ToggleStatus(r.Context(), email)
	switch {
	case err == nil:
		middleware.SetFlash(w, "success", email+" is now "+string(status))
	case errors.Is(err, model.ErrUserNotFound):
		middleware.SetFlash(w, "error", "No account for "+email)
	default:
		serverError(w, h.logger, err)
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// Delete removes an account; the logged-in admin cannot delete itself
func (h *AdminUsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	session := middleware.GetSession(r.Context())

	err := h.accounts.DeleteUser(r.Context(), session.Email, email)
	switch {
	case err == nil:
		middleware.SetFlash(w, "success", "Deleted "+email)
	case errors.Is(err, model.ErrSelfDelete):
		middleware.SetFlash(w, "error", "You cannot delete your own account")
	case errors.Is(err, model.ErrUserNotFound):
		middleware.SetFlash(w, "error", "No account for "+email)
	default:
		serverError(w, h.logger, err)
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
