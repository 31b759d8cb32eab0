package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/observability"
	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes the catalog over JSON.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	metrics   *observability.Metrics
}

// NewHandler builds the inventory HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		metrics:   metrics,
	}
}

// MountRoutes registers the inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/summary", h.Summary)
	r.Get("/lookup", h.Lookup)
	r.Get("/categories", h.Categories)
	r.Get("/low-stock", h.LowStock)
	r.Get("/out-of-stock", h.OutOfStock)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/adjust", h.Adjust)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		httpx.JSON(w, http.StatusOK, h.service.Store().ByCategory(category))
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.Store().List())
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	item, err := h.service.Create(req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.logger.Info("item created", slog.String("id", item.ID), slog.String("name", item.Name))
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	item, err := h.service.Update(chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	h.service.Delete(chi.URLParam(r, "id"))
	httpx.NoContent(w)
}

func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	item, err := h.service.Adjust(chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.StockMovement(req.Direction)
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "code query parameter is required")
		return
	}
	item, err := h.service.Lookup(code)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().Summary())
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().Categories())
}

func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().LowStock())
}

func (h *Handler) OutOfStock(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().OutOfStock())
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidDirection):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrInsufficientStock):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Insufficient Stock", err.Error())
	default:
		h.logger.Error("inventory request failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}
