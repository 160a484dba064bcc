package routes

import (
	_ "storefront_orders/docs"
	"storefront_orders/internal/adapter/http/handlers"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Orders    *handlers.OrderHandler
	Exchanges *handlers.ExchangeHandler
	Cards     *handlers.CardHandler
	Webhooks  *handlers.WebhookHandler
	Catalog   *handlers.CatalogHandler
	Health    *handlers.HealthHandler
	// Sandbox is set only when the payment gateway runs in mock mode.
	Sandbox   *handlers.SandboxHandler
}

type Options struct {
	ServiceName string
	Tracing     bool
	// RateLimiter is optional; nil disables per-client limiting.
	RateLimiter *middleware.RateLimiter
	Swagger     bool
}

// NewRouter builds the gin engine with the middleware chain and all routes.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/v1")
	v1.GET("/ping", h.Health.Ping)
	v1.GET(PathTopSellers, h.Catalog.TopSellers)
	// Provider callbacks carry no caller identity.
	v1.POST(PathWebhooks+"/mercadopago", h.Webhooks.ReceiveMercadoPago)

	authed := v1.Group("", middleware.Authenticate())
	addOrderRoutes(authed, h.Orders, h.Exchanges)
	addExchangeRoutes(authed, h.Exchanges)
	addCardRoutes(authed, h.Cards)
	addAdminRoutes(authed, h.Orders)
	if h.Sandbox != nil {
		v1.POST(PathSandbox+"/payments/:payment_id/approve", h.Sandbox.ApprovePayment)
	}

	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	if opts.Tracing {
		router.Use(middleware.Tracing(opts.ServiceName))
	}
	router.Use(middleware.Logging())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(opts.RateLimiter))
}
