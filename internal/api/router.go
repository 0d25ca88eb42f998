package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/dscatalog/catalog-system/internal/api/handler"
	"github.com/dscatalog/catalog-system/internal/api/middleware"
	"github.com/dscatalog/catalog-system/internal/core/service"
	"github.com/dscatalog/catalog-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/dscatalog/catalog-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/dscatalog/catalog-system/internal/infrastructure/http/handlers"
	"github.com/dscatalog/catalog-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	throttle := redisinfra.NewLoginThrottle(rdb)

	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, log)
	userService := service.NewUserService(userRepo, roleRepo, log)
	authService := service.NewAuthService(userRepo, throttle, service.Client{
		ID:     cfg.Client.ID,
		Secret: cfg.Client.Secret,
	}, cfg.JWTSecret, cfg.TokenTTL, log)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	auth := middleware.Auth(cfg.JWTSecret)
	read := middleware.RequireScope("read")
	write := middleware.RequireScope("write")

	// --- Token endpoint (no auth required) ---
	e.POST("/oauth/token", authHandler.Token)

	// --- Resource routes ---
	categories := e.Group("/categories", auth)
	categories.GET("", categoryHandler.List, read)
	categories.GET("/:id", categoryHandler.Get, read)
	categories.POST("", categoryHandler.Create, write)
	categories.PUT("/:id", categoryHandler.Update, write)
	categories.DELETE("/:id", categoryHandler.Delete, write)

	products := e.Group("/products", auth)
	products.GET("", productHandler.List, read)
	products.GET("/:id", productHandler.Get, read)
	products.POST("", productHandler.Create, write)
	products.PUT("/:id", productHandler.Update, write)
	products.DELETE("/:id", productHandler.Delete, write)

	users := e.Group("/users", auth)
	users.GET("", userHandler.List, read)
	users.GET("/:id", userHandler.Get, read)
	users.POST("", userHandler.Create, write)
	users.PUT("/:id", userHandler.Update, write)
	users.DELETE("/:id", userHandler.Delete, write)

	// --- Health probes and ops endpoints (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// requestLogger emits one structured access-log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
