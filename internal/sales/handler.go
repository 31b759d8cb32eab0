package sales

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes the transaction log over JSON. The log is read-only over
// HTTP; transactions are only created by the POS checkout.
type Handler struct {
	logger *slog.Logger
	store  *Store
}

// NewHandler builds the sales HTTP handler.
func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store}
}

// MountRoutes registers the sales routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/today", h.Today)
	r.Get("/stats", h.Stats)
	r.Get("/by-category", h.ByCategory)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	transactions := h.store.TodayTransactions()
	if transactions == nil {
		transactions = []Transaction{}
	}
	httpx.JSON(w, http.StatusOK, transactions)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.Stats())
}

func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.SalesByCategory())
}
