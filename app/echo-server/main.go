package main

import (
	"context"
	"fmt"
	"log"
	"lottoInsight/app/echo-server/router"
	"lottoInsight/business/drawstore"
	"lottoInsight/business/lotto"
	"lottoInsight/domain"
	"lottoInsight/internal/middleware"
	psqlRepo "lottoInsight/internal/repository/postgres"
	staticRepo "lottoInsight/internal/repository/static"
	"lottoInsight/internal/rest"
	"lottoInsight/pkg/config"
	"lottoInsight/pkg/database"
	"lottoInsight/pkg/logger"
	"lottoInsight/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting Lotto Insight", "version", cfg.App.Version, "draw_source", cfg.App.DrawSource)

	metrics.Init()

	// Init draw repository
	var drawRepo drawstore.DrawRepository
	switch cfg.App.DrawSource {
	case config.DrawSourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		defer func() { _ = database.ClosePostgres(db) }()
		logger.Info("Database connected successfully")

		drawRepo = psqlRepo.NewDrawRepository(db)
	default:
		drawRepo, err = staticRepo.NewDrawRepository()
		if err != nil {
			logger.Fatal("Failed to load embedded draw history", "error", err)
		}
	}

	// Load the immutable draw store once
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := drawstore.Load(loadCtx, drawRepo, domain.Games(), validator.New())
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load draw store", "error", err)
	}
	logger.Info("Draw store ready", "cutoff", store.Cutoff())

	// Init service
	engineCfg := lotto.Merge(lotto.DefaultConfig(), lotto.Overrides{
		BaselineAll:           cfg.Engine.BaselineAll,
		BaselineYear:          cfg.Engine.BaselineYear,
		BaselineRecentFactor:  cfg.Engine.BaselineRecentFactor,
		SpecialBaselineAll:    cfg.Engine.SpecialBaselineAll,
		SpecialBaselineNarrow: cfg.Engine.SpecialBaselineNarrow,
		SpreadAll:             cfg.Engine.SpreadAll,
		SpreadNarrow:          cfg.Engine.SpreadNarrow,
		Epsilon:               cfg.Engine.Epsilon,
	})
	lottoService := lotto.NewLottoService(store, engineCfg)

	// Init handler
	lottoHandler := rest.NewLottoHandler(lottoService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetLottoRoutes(api, lottoHandler)
	router.SetMetricsRoutes(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
