package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/voyaplan/travel_wallet_app/cmd/docs"
	portssvc "github.com/voyaplan/travel_wallet_app/internal/core/ports/services"
	"github.com/voyaplan/travel_wallet_app/internal/middleware"
	"github.com/voyaplan/travel_wallet_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, services.User, services.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// The balance-mutating endpoints share one IP-keyed rate limit.
	spendLimit := newSpendRateLimiter(cfg)

	registerUserRoutes(v1, services.User)
	registerAccountRoutes(v1, services.Ledger)
	RegisterExchangeRoutes(v1, services.Ledger, spendLimit)
	registerFxRateRoutes(v1, services.Rate)
	RegisterTravelRoutes(v1, services.Travel, services.Ledger, spendLimit)
}

// newSpendRateLimiter builds the in-memory limiter for exchange and spend
// recording, from a formatted rate like "30-M".
func newSpendRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.SpendRateLimit)
	if err != nil {
		// A malformed limit in config falls back to a conservative default.
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	store := memorystore.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
