package handler

import (
	"log/slog"
	"net/http"

	"github.com/rugbyops/zoneclips/internal/web/templates"
)

func renderPage(w http.ResponseWriter, r *http.Request, page templates.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// serverError surfaces unrecoverable failures (store unavailable and the
// like) as a plain 500; there is no retry for these.
func serverError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("request failed", slog.String("error", err.Error()))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
