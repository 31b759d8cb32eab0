package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/stockpilot/stockpilot/internal/alerts"
	"github.com/stockpilot/stockpilot/internal/insights"
	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/masterdata"
	"github.com/stockpilot/stockpilot/internal/observability"
	"github.com/stockpilot/stockpilot/internal/orders"
	"github.com/stockpilot/stockpilot/internal/pos"
	"github.com/stockpilot/stockpilot/internal/sales"
	"github.com/stockpilot/stockpilot/internal/scan"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	InventoryHandler  *inventory.Handler
	POSHandler        *pos.Handler
	SalesHandler      *sales.Handler
	OrdersHandler     *orders.Handler
	AlertsHandler     *alerts.Handler
	ScanHandler       *scan.Handler
	MasterDataHandler *masterdata.Handler
	InsightsHandler   *insights.Handler
	Metrics           *observability.Metrics
}

// NewRouter constructs the chi.Router with StockPilot defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/items", params.InventoryHandler.MountRoutes)
		api.Route("/pos", params.POSHandler.MountRoutes)
		api.Route("/transactions", params.SalesHandler.MountRoutes)
		api.Route("/orders", params.OrdersHandler.MountRoutes)
		api.Route("/alerts", params.AlertsHandler.MountRoutes)
		api.Route("/scan", params.ScanHandler.MountRoutes)
		api.Route("/suppliers", params.MasterDataHandler.MountSupplierRoutes)
		api.Route("/categories", params.MasterDataHandler.MountCategoryRoutes)
		api.Route("/insights", params.InsightsHandler.MountRoutes)
	})

	return r
}
