package orders

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/observability"
	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes purchase orders over JSON.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	metrics   *observability.Metrics
}

// NewHandler builds the orders HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		metrics:   metrics,
	}
}

// MountRoutes registers the order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/pending", h.Pending)
	r.Get("/received", h.Received)
	r.Get("/{id}", h.Show)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Post("/{id}/receive", h.Receive)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().List())
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().Pending())
}

func (h *Handler) Received(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().Received())
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	order, err := h.service.Create(req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.logger.Info("order created", slog.String("id", order.ID), slog.String("supplier", order.Supplier))
	httpx.JSON(w, http.StatusCreated, order)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	order, err := h.service.UpdateStatus(chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Receive(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.StockMovement("in")
	h.logger.Info("order received",
		slog.String("id", result.Order.ID),
		slog.Int("stocked_in", result.StockedIn),
		slog.Int("unmatched", len(result.Unmatched)))
	httpx.JSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrSupplierRequired), errors.Is(err, ErrNoLines), errors.Is(err, ErrInvalidStatus):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrAlreadyReceived):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		h.logger.Error("orders request failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}
