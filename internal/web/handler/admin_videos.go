package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/services/catalog"
	"github.com/rugbyops/zoneclips/internal/web/middleware"
	"github.com/rugbyops/zoneclips/internal/web/templates"
)

// AdminVideosHandler handles the clip management pages (admin only)
type AdminVideosHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewAdminVideosHandler creates a new AdminVideosHandler
func NewAdminVideosHandler(catalogService *catalog.Service, logger *slog.Logger) *AdminVideosHandler {
	return &AdminVideosHandler{
		catalog: catalogService,
		logger:  logger,
	}
}

// List renders the raw clip collection with add/edit/delete forms.
// Unlike the grouped listing, this shows clips with unknown zone values
// so they stay editable.
func (h *AdminVideosHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.catalog.List(r.Context())
	if err != nil {
		serverError(w, h.logger, err)
		return
	}

	data := templates.AdminVideosData{
		PageData: templates.PageData{
			Title:   "Manage clips",
			Session: middleware.GetSession(r.Context()),
			Flash:   middleware.GetFlash(r.Context()),
		},
		Videos: videos,
		Zones:  templates.ZoneOptions(),
	}
	renderPage(w, r, templates.AdminVideos(data))
}

// Add appends a clip from the submitted form
func (h *AdminVideosHandler) Add(w http.ResponseWriter, r *http.Request) {
	video, ok := h.videoFromForm(w, r)
	if !ok {
		return
	}

	if video.Title == "" || video.URL == "" {
		middleware.SetFlash(w, "error", "Title and URL are required")
		http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
		return
	}

	if err := h.catalog.Add(r.Context(), video); err != nil {
		serverError(w, h.logger, err)
		return
	}

	middleware.SetFlash(w, "success", "Clip added")
	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

// Edit replaces the clip addressed by the oldUrl field
func (h *AdminVideosHandler) Edit(w http.ResponseWriter, r *http.Request) {
	video, ok := h.videoFromForm(w, r)
	if !ok {
		return
	}
	oldURL := strings.TrimSpace(r.FormValue("oldUrl"))

	err := h.catalog.Edit(r.Context(), oldURL, video)
	switch {
	case err == nil:
		middleware.SetFlash(w, "success", "Clip updated")
	case errors.Is(err, model.ErrVideoNotFound):
		middleware.SetFlash(w, "error", "No clip with that URL")
	default:
		serverError(w, h.logger, err)
		return
	}

	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

// Delete removes every clip with the submitted URL
func (h *AdminVideosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
		return
	}

	url := strings.TrimSpace(r.FormValue("url"))
	if err := h.catalog.Delete(r.Context(), url); err != nil {
		serverError(w, h.logger, err)
		return
	}

	middleware.SetFlash(w, "success", "Clip deleted")
	http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
}

func (h *AdminVideosHandler) videoFromForm(w http.ResponseWriter, r *http.Request) (model.Video, bool) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/admin/videos", http.StatusSeeOther)
		return model.Video{}, false
	}

	return model.Video{
		Zone:    model.Zone(strings.TrimSpace(r.FormValue("zone"))),
		Title:   strings.TrimSpace(r.FormValue("title")),
		Comment: strings.TrimSpace(r.FormValue("comment")),
		URL:     strings.TrimSpace(r.FormValue("url")),
	}, true
}
