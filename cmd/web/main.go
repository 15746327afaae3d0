package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"minishop/api/handlers"
	"minishop/internal/config"
	"minishop/internal/services"
	"minishop/internal/telegram"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	// Initialize services
	catalogService := services.NewCatalogService()
	catalogService.InitSampleData()

	cartService := services.NewCartService(catalogService)

	relay := telegram.NewClient(cfg.Telegram.APIBase, cfg.Telegram.BotToken, cfg.Telegram.Timeout)
	orderService := services.NewOrderService(relay, cfg.Telegram.OrderChatID)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, orderService)
	orderHandler := handlers.NewOrderHandler(orderService)

	staticHandler, err := handlers.NewStaticHandler(cfg.Static.PublicDir)
	if err != nil {
		slog.Error("resolve public dir", "error", err)
		os.Exit(1)
	}

	router := setupRouter(catalogHandler, cartHandler, orderHandler, staticHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Run server in goroutine
	go func() {
		slog.Info("mini shop running", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server shutdown complete")
}

func setupRouter(catalogHandler *handlers.CatalogHandler, cartHandler *handlers.CartHandler, orderHandler *handlers.OrderHandler, staticHandler *handlers.StaticHandler) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", handlers.HealthCheck)

	// API Routes
	api := router.Group("/api")
	{
		api.GET("/products", catalogHandler.GetAllProducts)
		api.POST("/order", orderHandler.SubmitOrder)

		cart := api.Group("/cart")
		{
			cart.POST("", cartHandler.CreateCart)
			cart.GET("/:id", cartHandler.GetCart)
			cart.POST("/:id/items", cartHandler.AddItem)
			cart.PATCH("/:id/items/:product_id", cartHandler.ChangeQuantity)
			cart.POST("/:id/checkout", cartHandler.Checkout)
		}
	}

	// Everything else falls through to the static front end.
	router.NoRoute(staticHandler.Serve)

	return router
}
