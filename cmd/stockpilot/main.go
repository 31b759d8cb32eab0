package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockpilot/stockpilot/internal/alerts"
	"github.com/stockpilot/stockpilot/internal/app"
	"github.com/stockpilot/stockpilot/internal/insights"
	"github.com/stockpilot/stockpilot/internal/inventory"
	"github.com/stockpilot/stockpilot/internal/masterdata"
	"github.com/stockpilot/stockpilot/internal/observability"
	"github.com/stockpilot/stockpilot/internal/orders"
	"github.com/stockpilot/stockpilot/internal/pos"
	"github.com/stockpilot/stockpilot/internal/sales"
	"github.com/stockpilot/stockpilot/internal/scan"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()

	inventoryStore := inventory.NewStore()
	inventoryService := inventory.NewService(inventoryStore)
	inventoryHandler := inventory.NewHandler(logger, inventoryService, metrics)

	salesStore := sales.NewStore()
	salesHandler := sales.NewHandler(logger, salesStore)

	cartStore := pos.NewCartStore(cfg.POSTaxRate)
	posService := pos.NewService(cartStore, inventoryStore, salesStore)
	posHandler := pos.NewHandler(logger, posService, metrics)

	ordersStore := orders.NewStore()
	ordersService := orders.NewService(ordersStore, inventoryStore)
	ordersHandler := orders.NewHandler(logger, ordersService, metrics)

	alertsStore := alerts.NewStore()
	alertsGenerator := alerts.NewGenerator(alertsStore, inventoryStore)
	alertsHandler := alerts.NewHandler(logger, alertsStore, alertsGenerator)

	scanStore := scan.NewStore(cfg.ScanHistoryLimit)
	scanService := scan.NewService(scanStore, inventoryService)
	scanHandler := scan.NewHandler(logger, scanService)

	masterDataService := masterdata.NewService(masterdata.NewSupplierStore(), masterdata.NewCategoryStore())
	masterDataHandler := masterdata.NewHandler(logger, masterDataService)

	insightsService := insights.NewService(inventoryStore, ordersStore, salesStore)
	insightsHandler := insights.NewHandler(logger, insightsService)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		InventoryHandler:  inventoryHandler,
		POSHandler:        posHandler,
		SalesHandler:      salesHandler,
		OrdersHandler:     ordersHandler,
		AlertsHandler:     alertsHandler,
		ScanHandler:       scanHandler,
		MasterDataHandler: masterDataHandler,
		InsightsHandler:   insightsHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
