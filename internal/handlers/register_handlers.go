package handlers

import (
	"github.com/dimasprayoga/pos-backend/cmd/docs"
	"github.com/dimasprayoga/pos-backend/internal/core/domain"
	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/dimasprayoga/pos-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Unauthenticated surface: login/register/refresh and the payment
	// provider callback, all rate limited per client IP.
	rateLimit := middleware.RateLimit(newIPLimiter(cfg))
	registerAuthRoutes(r, services.Auth, rateLimit)
	registerPaymentWebhookRoute(r, services.Payment, rateLimit)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))

	registerCategoryRoutes(v1, services.Category, adminOnly)
	registerProductRoutes(v1, services.Product, adminOnly)
	registerStockRoutes(v1, services.Stock, adminOnly)
	RegisterTransactionRoutes(v1, services.Checkout, services.Transaction)
	RegisterPaymentRoutes(v1, services.Payment)
	registerDashboardRoutes(v1, services.Dashboard, adminOnly)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// newIPLimiter builds the per-IP limiter for unauthenticated routes.
func newIPLimiter(cfg *config.Config) *limiter.Limiter {
	rate := limiter.Rate{
		Period: cfg.RateLimitPeriod,
		Limit:  cfg.RateLimitRequests,
	}
	return limiter.New(memory.NewStore(), rate)
}

// registerCustomValidators wires the "paymentmethod" binding tag used by
// checkout and payment requests.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
			switch domain.PaymentMethod(fl.Field().String()) {
			case domain.MethodCash, domain.MethodQRIS:
				return true
			}
			return false
		})
	}
}
