package router

import (
	"time"

	"github.com/fady121/alfady/internal/config"
	"github.com/fady121/alfady/internal/handler"
	"github.com/fady121/alfady/internal/middleware"
	"github.com/fady121/alfady/internal/repository"
	"github.com/fady121/alfady/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, generator service.TextGenerator) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	invoiceRepo := repository.NewInvoiceRepository(db)
	traderRepo := repository.NewTraderRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	ownerRepo := repository.NewOwnerRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(ownerRepo, rdb, cfg)
	invoiceSvc := service.NewInvoiceService(invoiceRepo)
	traderSvc := service.NewTraderService(traderRepo)
	treasurySvc := service.NewTreasuryService(txRepo, invoiceRepo, traderRepo)
	reportSvc := service.NewReportService(invoiceRepo, traderRepo, txRepo)
	backupSvc := service.NewBackupService(invoiceRepo, traderRepo, txRepo, cfg.BackupStoragePath)
	insightSvc := service.NewInsightService(invoiceRepo, traderRepo, txRepo, generator)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	invoicesH := handler.NewInvoiceHandler(invoiceSvc, invoiceRepo, cfg.ReceiptStoragePath)
	tradersH := handler.NewTraderHandler(traderSvc)
	treasuryH := handler.NewTreasuryHandler(treasurySvc)
	reportsH := handler.NewReportHandler(reportSvc)
	backupH := handler.NewBackupHandler(backupSvc)
	insightsH := handler.NewInsightHandler(insightSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public, rate limited against code brute-force)
	auth := r.Group("/v1/auth", middleware.AuthRateLimiter())
	{
		auth.POST("/request-code", authH.RequestCode)
		auth.POST("/verify", authH.Verify)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. A single owner account, no roles.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoicesH.Create)
			invoices.GET("", invoicesH.List)
			invoices.GET("/:id", invoicesH.Get)
			invoices.PUT("/:id", invoicesH.Update)
			invoices.DELETE("/:id", invoicesH.Delete)
			invoices.POST("/:id/payments", invoicesH.AddPayment)
			invoices.GET("/:id/receipt", invoicesH.Receipt)
		}

		traders := v1.Group("/traders")
		{
			traders.POST("", tradersH.Create)
			traders.GET("", tradersH.List)
			traders.GET("/:id", tradersH.Get)
			traders.PUT("/:id", tradersH.Update)
			traders.DELETE("/:id", tradersH.Delete)
			traders.POST("/:id/transactions", tradersH.AddTransaction)
			traders.PUT("/:id/transactions/:txId", tradersH.UpdateTransaction)
			traders.DELETE("/:id/transactions/:txId", tradersH.DeleteTransaction)
			traders.GET("/:id/account", tradersH.Account)
		}

		v1.GET("/treasury", treasuryH.Wallets)
		transactions := v1.Group("/transactions")
		{
			transactions.POST("", treasuryH.AddTransaction)
			transactions.GET("", treasuryH.ListTransactions)
			transactions.DELETE("/:id", treasuryH.DeleteTransaction)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/summary", reportsH.Summary)
			reports.GET("/trend", reportsH.Trend)
		}
		v1.GET("/log", reportsH.Log)

		v1.GET("/export", backupH.Export)
		v1.POST("/import", backupH.Import)

		v1.POST("/insights", insightsH.Insights)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
