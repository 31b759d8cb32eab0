package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(NewStore())
	handler := NewHandler(logger, svc, nil)
	r := chi.NewRouter()
	r.Route("/inventory", handler.MountRoutes)
	return r, svc
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateAndAdjustOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := postJSON(t, router, "/inventory", CreateItemRequest{Name: "Beans", Qty: 5, Min: 2, Price: 10})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, StatusSuccess, created.Status)

	rr = postJSON(t, router, "/inventory/"+created.ID+"/adjust", AdjustStockRequest{Quantity: 5, Direction: "out"})
	require.Equal(t, http.StatusOK, rr.Code)

	var adjusted Item
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &adjusted))
	require.Equal(t, 0, adjusted.Qty)
	require.Equal(t, StatusDanger, adjusted.Status)

	rr = postJSON(t, router, "/inventory/"+created.ID+"/adjust", AdjustStockRequest{Quantity: 1, Direction: "out"})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := postJSON(t, router, "/inventory", map[string]any{"qty": 5})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, router, "/inventory", map[string]any{"name": "X", "price": -1})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestShowUnknownItem(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/inventory/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
