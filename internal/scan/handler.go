package scan

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes barcode scanning over JSON.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds the scan HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers the scan routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.Scan)
	r.Get("/last", h.Last)
	r.Get("/history", h.History)
	r.Delete("/history", h.ClearHistory)
	r.Post("/adjust", h.AdjustLast)
}

type scanRequest struct {
	Code string `json:"code" validate:"required"`
}

type adjustLastRequest struct {
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Direction string `json:"direction" validate:"required,oneof=in out"`
}

func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	entry, err := h.service.Scan(req.Code)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) Last(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.service.Store().Last()
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "nothing scanned", "no scan recorded yet")
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Store().History())
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.service.Store().Clear()
	httpx.NoContent(w)
}

func (h *Handler) AdjustLast(w http.ResponseWriter, r *http.Request) {
	var req adjustLastRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	entry, err := h.service.AdjustLast(req.Quantity, inventory.Direction(req.Direction))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoMatch):
		httpx.Problem(w, http.StatusNotFound, "no match", err.Error())
	case errors.Is(err, ErrNothingScanned):
		httpx.Problem(w, http.StatusConflict, "nothing scanned", err.Error())
	case errors.Is(err, inventory.ErrInsufficientStock):
		httpx.Problem(w, http.StatusUnprocessableEntity, "insufficient stock", err.Error())
	case errors.Is(err, inventory.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "not found", err.Error())
	default:
		httpx.Problem(w, http.StatusBadRequest, "invalid request", err.Error())
	}
}
