package masterdata

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
)

// Handler exposes suppliers and categories over JSON.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds the master data HTTP handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountSupplierRoutes registers the supplier routes.
func (h *Handler) MountSupplierRoutes(r chi.Router) {
	r.Get("/", h.ListSuppliers)
	r.Post("/", h.CreateSupplier)
	r.Get("/{id}", h.GetSupplier)
	r.Put("/{id}", h.UpdateSupplier)
	r.Delete("/{id}", h.DeleteSupplier)
}

// MountCategoryRoutes registers the category routes.
func (h *Handler) MountCategoryRoutes(r chi.Router) {
	r.Get("/", h.ListCategories)
	r.Post("/", h.CreateCategory)
	r.Put("/{id}", h.RenameCategory)
	r.Delete("/{id}", h.DeleteCategory)
}

func (h *Handler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Suppliers().List())
}

func (h *Handler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeSupplier(w, r)
	if !ok {
		return
	}
	supplier, err := h.service.CreateSupplier(draft)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, supplier)
}

func (h *Handler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, ok := h.service.Suppliers().Get(chi.URLParam(r, "id"))
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "not found", "supplier not found")
		return
	}
	httpx.JSON(w, http.StatusOK, supplier)
}

func (h *Handler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeSupplier(w, r)
	if !ok {
		return
	}
	supplier, err := h.service.UpdateSupplier(chi.URLParam(r, "id"), draft)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, supplier)
}

func (h *Handler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteSupplier(chi.URLParam(r, "id"))
	httpx.NoContent(w)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Categories().List())
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}
	category, err := h.service.CreateCategory(name)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, category)
}

func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	name, ok := h.decodeCategory(w, r)
	if !ok {
		return
	}
	category, err := h.service.RenameCategory(chi.URLParam(r, "id"), name)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteCategory(chi.URLParam(r, "id"))
	httpx.NoContent(w)
}

func (h *Handler) decodeSupplier(w http.ResponseWriter, r *http.Request) (SupplierDraft, bool) {
	var req SupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return SupplierDraft{}, false
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return SupplierDraft{}, false
	}
	return SupplierDraft{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}, true
}

func (h *Handler) decodeCategory(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req CategoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return "", false
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
		return "", false
	}
	return req.Name, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, ErrDuplicateName):
		httpx.Problem(w, http.StatusConflict, "duplicate name", err.Error())
	case errors.Is(err, ErrNameRequired):
		httpx.Problem(w, http.StatusBadRequest, "invalid payload", err.Error())
	default:
		httpx.Problem(w, http.StatusBadRequest, "invalid request", err.Error())
	}
}
