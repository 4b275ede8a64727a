package handler

import (
	"log/slog"
	"net/http"

	"github.com/rugbyops/zoneclips/internal/model"
	"github.com/rugbyops/zoneclips/internal/services/catalog"
	"github.com/rugbyops/zoneclips/internal/web/middleware"
	"github.com/rugbyops/zoneclips/internal/web/templates"
)

// VideosHandler handles the zone-grouped clip listing
type VideosHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewVideosHandler creates a new VideosHandler
func NewVideosHandler(catalogService *catalog.Service, logger *slog.Logger) *VideosHandler {
	return &VideosHandler{
		catalog: catalogService,
		logger:  logger,
	}
}

// View renders clips grouped by pitch zone, left in-goal to right
func (h *VideosHandler) View(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.catalog.ListByZone(r.Context())
	if err != nil {
		serverError(w, h.logger, err)
		return
	}

	groups := make([]templates.ZoneGroup, 0, len(model.Zones()))
	for _, zone := range model.Zones() {
		groups = append(groups, templates.ZoneGroup{
			Zone:   zone,
			Label:  zone.Label(),
			Videos: grouped[zone],
		})
	}

	data := templates.VideosData{
		PageData: templates.PageData{
			Title:   "Clips",
			Session: middleware.GetSession(r.Context()),
			Flash:   middleware.GetFlash(r.Context()),
		},
		Groups: groups,
	}
	renderPage(w, r, templates.Videos(data))
}
