package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shipos/shipos-api/internal/application/service"
	"github.com/shipos/shipos-api/internal/config"
	"github.com/shipos/shipos-api/internal/infrastructure/database"
	"github.com/shipos/shipos-api/internal/infrastructure/repository"
	"github.com/shipos/shipos-api/internal/presentation/http/handler"
	"github.com/shipos/shipos-api/internal/presentation/http/routes"
	"github.com/shipos/shipos-api/pkg/email"
	"github.com/shipos/shipos-api/pkg/oauth"
	"github.com/shipos/shipos-api/pkg/printer"
	"github.com/shipos/shipos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	lineItemRepo := repository.NewLineItemRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	tenantService := service.NewTenantService(tenantRepo)
	customerService := service.NewCustomerService(customerRepo)
	packageService := service.NewPackageService(packageRepo, customerRepo, emailService)
	checkoutService := service.NewCheckoutService(
		packageRepo,
		customerRepo,
		tenantRepo,
		transactionRepo,
		lineItemRepo,
		userRepo,
		printerService,
		emailService,
	)
	dashboardService := service.NewDashboardService(analyticsRepo, tenantRepo)
	briefingService := service.NewBriefingService(analyticsRepo, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	settingsService := service.NewSettingsService(tenantRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, tenantService),
		Tenant:    handler.NewTenantHandler(tenantService),
		Customer:  handler.NewCustomerHandler(customerService),
		Package:   handler.NewPackageHandler(packageService),
		Checkout:  handler.NewCheckoutHandler(checkoutService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Briefing:  handler.NewBriefingHandler(briefingService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService, checkoutService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
