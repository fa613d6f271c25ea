package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"go-storefront/api/handlers"
	"go-storefront/api/middleware"
	"go-storefront/internal/config"
	"go-storefront/internal/platform/logger"
	"go-storefront/internal/platform/metrics"
	"go-storefront/internal/repository"
	"go-storefront/internal/repository/memory"
	"go-storefront/internal/repository/mongo"
	"go-storefront/internal/services"
	"go-storefront/internal/session"
)

type routeHandlers struct {
	product  *handlers.ProductHandler
	cart     *handlers.CartHandler
	order    *handlers.OrderHandler
	language *handlers.LanguageHandler
	health   *handlers.HealthHandler
}

func main() {
	cfg := config.MustLoad()

	appLogger := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	defer func() { _ = appLogger.Sync() }()

	appLogger.Infof("Starting storefront (env=%s, storage=%s, sessions=%s)", cfg.Env, cfg.Storage.Driver, cfg.Session.Store)

	ctx := context.Background()

	// Storage
	var (
		productRepo repository.ProductRepository
		orderRepo   repository.OrderRepository
		mongoClient *mongodriver.Client
	)
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		client, err := mongo.NewClient(ctx, cfg.Mongo)
		if err != nil {
			appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoClient = client
		db := client.Database(cfg.Mongo.Database)

		mongoProducts := mongo.NewProductRepository(db)
		if cfg.Mongo.Seed {
			if err := mongoProducts.Seed(ctx, memory.SeedProducts()); err != nil {
				appLogger.Fatalf("Failed to seed products: %v", err)
			}
		}
		productRepo = mongoProducts
		orderRepo = mongo.NewOrderRepository(db)
		appLogger.Infof("Using MongoDB storage (database=%s)", cfg.Mongo.Database)
	default:
		productRepo = memory.NewProductRepository(memory.SeedProducts()...)
		orderRepo = memory.NewOrderRepository()
		appLogger.Info("Using in-memory storage")
	}

	// Session carts
	var (
		cartStore   session.CartStore
		redisClient *redis.Client
	)
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := session.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		redisClient = client
		cartStore = session.NewRedisStore(client, cfg.Session.TTL)
		appLogger.Infof("Using Redis session store (addr=%s)", cfg.Redis.Addr)
	default:
		cartStore = session.NewMemoryStore()
		appLogger.Info("Using in-memory session store")
	}

	var metricsManager *metrics.Manager
	var orderStats services.OrderStats
	if cfg.Metrics.Enabled {
		metricsManager = metrics.NewManager(cfg.Metrics.Namespace)
		orderStats = metricsManager
	}

	// Initialize services
	productService := services.NewProductService(productRepo, appLogger)
	cartService := services.NewCartService(cartStore, productService, appLogger)
	orderService := services.NewOrderService(orderRepo, productService, appLogger, orderStats)
	languageService := services.NewLanguageService(appLogger)

	// Initialize handlers
	h := routeHandlers{
		product:  handlers.NewProductHandler(productService),
		cart:     handlers.NewCartHandler(cartService, metricsManager),
		order:    handlers.NewOrderHandler(orderService, cartService),
		language: handlers.NewLanguageHandler(languageService, metricsManager),
		health:   handlers.NewHealthHandler(cartStore),
	}

	router := setupRouter(cfg, appLogger, metricsManager, h)

	server := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		appLogger.Infof("Server starting on http://localhost:%s", cfg.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server forced to shutdown: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Errorf("Error closing Redis client: %v", err)
		}
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			appLogger.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}

	appLogger.Info("Server shutdown complete")
}

func setupRouter(cfg *config.Config, log logger.Logger, m *metrics.Manager, h routeHandlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middlewares
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
	router.Use(middleware.Session(cfg.Session.CookieName, cfg.Session.TTL))
	router.Use(middleware.Culture(cfg.Localization.DefaultCulture))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/Product")
	})

	router.GET("/Product", h.product.Index)

	cart := router.Group("/Cart")
	{
		cart.GET("", h.cart.Index)
		cart.POST("/AddToCart/:id", h.cart.AddToCart)
		cart.POST("/RemoveFromCart/:id", h.cart.RemoveFromCart)
	}

	order := router.Group("/Order")
	{
		order.GET("", h.order.Index)
		order.POST("", h.order.Checkout)
		order.GET("/Completed", h.order.Completed)
	}

	router.POST("/Language/ChangeUiLanguage", h.language.ChangeUiLanguage)

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", h.product.GetAllProducts)
			products.GET("/:id", h.product.GetProductByID)
		}

		api.GET("/health", h.health.HealthCheck)
	}

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return router
}
