package pos

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/observability"
	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes the cart and checkout over JSON.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	metrics   *observability.Metrics
}

// NewHandler builds the POS HTTP handler.
func NewHandler(logger *slog.Logger, service *Service, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		metrics:   metrics,
	}
}

// MountRoutes registers the POS routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/cart", h.ShowCart)
	r.Post("/cart/items", h.AddToCart)
	r.Put("/cart/items/{itemID}", h.UpdateQuantity)
	r.Delete("/cart/items/{itemID}", h.RemoveFromCart)
	r.Put("/cart/discount", h.SetDiscount)
	r.Put("/cart/customer", h.SetCustomer)
	r.Delete("/cart", h.ClearCart)
	r.Post("/checkout", h.Checkout)
}

type addToCartRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type updateQuantityRequest struct {
	Qty int `json:"qty"`
}

type setDiscountRequest struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type setCustomerRequest struct {
	Customer string `json:"customer"`
}

func (h *Handler) ShowCart(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Cart())
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	view, err := h.service.AddToCart(req.ItemID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	view, err := h.service.UpdateQuantity(chi.URLParam(r, "itemID"), req.Qty)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.RemoveFromCart(chi.URLParam(r, "itemID")))
}

func (h *Handler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var req setDiscountRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	view, err := h.service.SetDiscount(req.Percent)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	var req setCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, h.service.SetCustomer(req.Customer))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCart()
	httpx.NoContent(w)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	tx, err := h.service.Checkout(req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.metrics.CheckoutCompleted()
	h.logger.Info("checkout completed",
		slog.String("transaction", tx.ID),
		slog.Float64("total", tx.Total),
		slog.String("payment_method", tx.PaymentMethod))
	httpx.JSON(w, http.StatusCreated, tx)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidDiscount):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrInsufficientPayment), errors.Is(err, inventory.ErrInsufficientStock):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Unprocessable", err.Error())
	default:
		h.logger.Error("pos request failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}
