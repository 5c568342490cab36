package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cargoconnect/logistics-api/internal/api/handler"
	"github.com/cargoconnect/logistics-api/internal/api/middleware"
	"github.com/cargoconnect/logistics-api/internal/core/domain"
	"github.com/cargoconnect/logistics-api/internal/core/ports"
)

// RouterConfig carries the transport-level settings the router needs.
type RouterConfig struct {
	JWTSecret      string
	ReceiptBaseURL string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	shipmentService ports.ShipmentService,
	authService ports.AuthService,
	cfg RouterConfig,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cargoconnect"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	trackingHandler := handler.NewTrackingHandler(shipmentService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	receiptHandler := handler.NewReceiptHandler(shipmentService, cfg.ReceiptBaseURL)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/track/:code", trackingHandler.Track)
	e.GET("/shipments/:code/receipt.pdf", receiptHandler.Download)

	// --- Admin console routes (bearer token + admin role) ---
	admin := e.Group("/shipments",
		middleware.Auth(cfg.JWTSecret),
		middleware.RBAC(domain.RoleAdmin),
	)
	admin.GET("", shipmentHandler.List)
	admin.POST("", shipmentHandler.Create)
	admin.PATCH("/:code", shipmentHandler.UpdateStatus)
	admin.POST("/:code/notify", shipmentHandler.Notify)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
