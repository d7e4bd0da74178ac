package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shipos/shipos-api/internal/config"
	"github.com/shipos/shipos-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff and access control
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Stores
		&entity.Tenant{},
		&entity.TenantMembership{},

		// Mailbox customers and packages
		&entity.Customer{},
		&entity.Package{},

		// Checkout
		&entity.CheckoutTransaction{},
		&entity.CheckoutLineItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	permissions := []entity.Permission{
		{Name: "view-dashboard", GuardName: "web"},
		{Name: "manage-customers", GuardName: "web"},
		{Name: "manage-packages", GuardName: "web"},
		{Name: "run-checkout", GuardName: "web"},
		{Name: "manage-settings", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
		{Name: "view-reports", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// super-admin and owner get everything
	for _, roleName := range []string{"super-admin", "owner"} {
		var role entity.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
			role = entity.Role{
				Name:        roleName,
				GuardName:   "web",
				Permissions: allPermissions,
			}
			if err := db.Create(&role).Error; err != nil {
				log.Printf("Warning: failed to create %s role: %v", roleName, err)
			}
		}
	}

	// Counter clerks handle packages and checkout but not store settings
	clerkPermissions := []string{
		"view-dashboard",
		"manage-customers",
		"manage-packages",
		"run-checkout",
	}
	var clerkPerms []entity.Permission
	for _, name := range clerkPermissions {
		for _, p := range allPermissions {
			if p.Name == name {
				clerkPerms = append(clerkPerms, p)
				break
			}
		}
	}

	var clerkRole entity.Role
	if err := db.Where("name = ?", "clerk").First(&clerkRole).Error; err != nil {
		clerkRole = entity.Role{
			Name:        "clerk",
			GuardName:   "web",
			Permissions: clerkPerms,
		}
		if err := db.Create(&clerkRole).Error; err != nil {
			log.Printf("Warning: failed to create clerk role: %v", err)
		}
	}

	// Create super admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var saRole entity.Role
				if err := db.Where("name = ?", "super-admin").First(&saRole).Error; err == nil {
					if adminName == "" {
						adminName = "Super Admin"
					}
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{saRole},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create super admin user: %v", err)
					} else {
						log.Printf("Super admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Super admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
