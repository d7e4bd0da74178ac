package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shipos/shipos-api/internal/config"
	domainRepo "github.com/shipos/shipos-api/internal/domain/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/handler"
	"github.com/shipos/shipos-api/internal/presentation/http/middleware"
	"github.com/shipos/shipos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tenant    *handler.TenantHandler
	Customer  *handler.CustomerHandler
	Package   *handler.PackageHandler
	Checkout  *handler.CheckoutHandler
	Dashboard *handler.DashboardHandler
	Briefing  *handler.BriefingHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Resolve the store from the subdomain so every repository call
		// below is tenant scoped
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", middleware.RequirePermission("view-dashboard"), h.Dashboard.GetStats)
	protected.GET("/dashboard/briefing", middleware.RequirePermission("view-dashboard"), h.Briefing.GetBriefing)

	// Stores
	registerTenantRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Packages
	registerPackageRoutes(protected, h)

	// Checkout
	registerCheckoutRoutes(protected, h, deps)

	// Settings
	registerSettingsRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.ListTenants)
		tenants.POST("", h.Tenant.CreateTenant)
		tenants.GET("/current", h.Tenant.GetCurrentTenant)
		tenants.PUT("/current", middleware.RequirePermission("manage-settings"), h.Tenant.UpdateTenant)
		tenants.GET("/current/members", h.Tenant.ListMembers)
		tenants.POST("/current/members", middleware.RequirePermission("manage-users"), h.Tenant.InviteMember)
		tenants.PUT("/current/members/:user_id", middleware.RequirePermission("manage-users"), h.Tenant.UpdateMemberRole)
		tenants.DELETE("/current/members/:user_id", middleware.RequirePermission("manage-users"), h.Tenant.RemoveMember)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/pmb/:pmb", h.Customer.GetByPMB)
		customers.GET("/:id", h.Customer.Get)
		customers.GET("/:id/packages/pending", h.Package.PendingByCustomer)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerPackageRoutes(protected *gin.RouterGroup, h *Handlers) {
	packages := protected.Group("/packages")
	packages.Use(middleware.RequirePermission("manage-packages"))
	{
		packages.GET("", h.Package.List)
		packages.POST("", h.Package.CheckIn)
		packages.GET("/:id", h.Package.Get)
		packages.PUT("/:id", h.Package.Update)
		packages.POST("/:id/return", h.Package.ReturnToSender)
		packages.DELETE("/:id", h.Package.Delete)
	}
}

func registerCheckoutRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	checkout := protected.Group("/checkout")
	checkout.Use(middleware.RequirePermission("run-checkout"))
	{
		checkout.POST("/quote", h.Checkout.Quote)
		// Commits use idempotency middleware so a retried request cannot
		// charge or release the same batch twice
		checkout.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Checkout.Commit)
		checkout.GET("/transactions", h.Checkout.List)
		checkout.GET("/transactions/:id", h.Checkout.Get)
		checkout.GET("/transactions/:id/receipt", h.Checkout.Receipt)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.UpdateSettings)
		settings.POST("/reset", h.Settings.ResetSettings)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt", middleware.RequirePermission("run-checkout"), h.Printer.PrintReceipt)
	}
}
