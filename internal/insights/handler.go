package insights

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes the aggregate views over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds the insights HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the insight routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
	r.Get("/categories", h.Categories)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Dashboard())
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Categories())
}
