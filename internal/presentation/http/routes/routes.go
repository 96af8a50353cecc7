package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbook/bookfile-api/internal/config"
	"github.com/finbook/bookfile-api/internal/presentation/http/handler"
	"github.com/finbook/bookfile-api/internal/presentation/http/middleware"
	"github.com/finbook/bookfile-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Vendor      *handler.VendorHandler
	Employee    *handler.EmployeeHandler
	Job         *handler.JobHandler
	Account     *handler.AccountHandler
	TaxTable    *handler.TaxTableHandler
	Transaction *handler.TransactionHandler
	Invoice     *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.GET("/auth/profile", h.Auth.Profile)
		protected.POST("/auth/change-password", h.Auth.ChangePassword)

		customers := protected.Group("/customers")
		{
			customers.GET("", h.Customer.List)
			customers.POST("", h.Customer.Create)
			customers.GET("/:id", h.Customer.Get)
			customers.PUT("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.GET("/:id/jobs", h.Customer.Jobs)
		}

		vendors := protected.Group("/vendors")
		{
			vendors.GET("", h.Vendor.List)
			vendors.POST("", h.Vendor.Create)
			vendors.GET("/:id", h.Vendor.Get)
			vendors.PUT("/:id", h.Vendor.Update)
			vendors.DELETE("/:id", h.Vendor.Delete)
			vendors.GET("/:id/jobs", h.Vendor.Jobs)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", h.Employee.List)
			employees.POST("", h.Employee.Create)
			employees.GET("/:id", h.Employee.Get)
			employees.PUT("/:id", h.Employee.Update)
			employees.DELETE("/:id", h.Employee.Delete)
		}

		jobs := protected.Group("/jobs")
		{
			jobs.GET("", h.Job.List)
			jobs.POST("", h.Job.Create)
			jobs.GET("/:id", h.Job.Get)
			jobs.PUT("/:id", h.Job.Update)
			jobs.DELETE("/:id", h.Job.Delete)
		}

		accounts := protected.Group("/accounts")
		{
			accounts.GET("", h.Account.List)
			accounts.POST("", h.Account.Create)
			accounts.GET("/:id", h.Account.Get)
			accounts.PUT("/:id", h.Account.Update)
			accounts.DELETE("/:id", h.Account.Delete)
			accounts.GET("/:id/balance", h.Account.Balance)
		}

		taxTables := protected.Group("/tax-tables")
		{
			taxTables.GET("", h.TaxTable.List)
			taxTables.POST("", h.TaxTable.Create)
			taxTables.GET("/:id", h.TaxTable.Get)
			taxTables.DELETE("/:id", h.TaxTable.Delete)
		}

		transactions := protected.Group("/transactions")
		{
			transactions.GET("", h.Transaction.List)
			transactions.POST("", h.Transaction.Create)
			transactions.POST("/payments", h.Transaction.RecordPayment)
			transactions.GET("/:id", h.Transaction.Get)
			transactions.DELETE("/:id", h.Transaction.Delete)
		}

		invoices := protected.Group("/invoices")
		{
			invoices.GET("", h.Invoice.List)
			invoices.POST("", h.Invoice.Create)
			invoices.GET("/:id", h.Invoice.Get)
			invoices.DELETE("/:id", h.Invoice.Delete)
			invoices.POST("/:id/entries", h.Invoice.AddEntry)
			invoices.DELETE("/:id/entries/:entryId", h.Invoice.RemoveEntry)
			invoices.POST("/:id/post", h.Invoice.Post)
			invoices.GET("/:id/sums", h.Invoice.Sums)
			invoices.GET("/:id/settlement", h.Invoice.Settlement)
			invoices.GET("/:id/payments", h.Invoice.PayingTransactions)
		}

		// Typed projections over the generic document
		protected.GET("/customer-invoices/:id", h.Invoice.CustomerInvoice)
		protected.GET("/vendor-bills/:id", h.Invoice.VendorBill)
		protected.GET("/employee-vouchers/:id", h.Invoice.EmployeeVoucher)
		protected.GET("/job-invoices/:id", h.Invoice.JobInvoice)
	}

	return router
}
