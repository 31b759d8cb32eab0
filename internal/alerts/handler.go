package alerts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes alerts over JSON.
type Handler struct {
	logger    *slog.Logger
	store     *Store
	generator *Generator
}

// NewHandler builds the alerts HTTP handler.
func NewHandler(logger *slog.Logger, store *Store, generator *Generator) *Handler {
	return &Handler{logger: logger, store: store, generator: generator}
}

// MountRoutes registers the alert routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/unread-count", h.UnreadCount)
	r.Post("/sweep", h.Sweep)
	r.Post("/{id}/read", h.MarkRead)
	r.Delete("/", h.Clear)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]int{"unread": h.store.UnreadCount()})
}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	created := h.generator.Sweep()
	if created > 0 {
		h.logger.Info("stock sweep produced alerts", slog.Int("created", created))
	}
	httpx.JSON(w, http.StatusOK, map[string]int{"created": created})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.store.MarkRead(chi.URLParam(r, "id"))
	httpx.NoContent(w)
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	httpx.NoContent(w)
}
