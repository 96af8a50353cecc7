package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/finbook/bookfile-api/internal/application/service"
	"github.com/finbook/bookfile-api/internal/config"
	"github.com/finbook/bookfile-api/internal/infrastructure/database"
	"github.com/finbook/bookfile-api/internal/infrastructure/repository"
	"github.com/finbook/bookfile-api/internal/presentation/http/handler"
	"github.com/finbook/bookfile-api/internal/presentation/http/routes"
	"github.com/finbook/bookfile-api/pkg/utils"
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
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	jobRepo := repository.NewJobRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	taxTableRepo := repository.NewTaxTableRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	splitRepo := repository.NewSplitRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	entryRepo := repository.NewInvoiceEntryRepository(db)
	entitySource := repository.NewEntitySource(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	vendorService := service.NewVendorService(vendorRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	jobService := service.NewJobService(jobRepo, customerRepo, vendorRepo)
	accountService := service.NewAccountService(accountRepo, splitRepo)
	taxTableService := service.NewTaxTableService(taxTableRepo, accountRepo)
	txnService := service.NewTransactionService(txnRepo, accountRepo, invoiceRepo)
	invoiceService := service.NewInvoiceService(
		invoiceRepo,
		entryRepo,
		customerRepo,
		vendorRepo,
		employeeRepo,
		jobRepo,
		entitySource,
	)

	// Initialize handlers
	h := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Customer:    handler.NewCustomerHandler(customerService, jobService),
		Vendor:      handler.NewVendorHandler(vendorService, jobService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Job:         handler.NewJobHandler(jobService),
		Account:     handler.NewAccountHandler(accountService),
		TaxTable:    handler.NewTaxTableHandler(taxTableService),
		Transaction: handler.NewTransactionHandler(txnService),
		Invoice:     handler.NewInvoiceHandler(invoiceService, cfg.App.DefaultLocale),
	}

	// Setup router
	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
