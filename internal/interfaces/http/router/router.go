// Package router wires middleware and handlers onto the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/paylog/backend/internal/infrastructure/config"
	"github.com/paylog/backend/internal/infrastructure/logger"
	"github.com/paylog/backend/internal/interfaces/http/handler"
	"github.com/paylog/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the feature handlers registered on the router
type Handlers struct {
	System     *handler.SystemHandler
	Vendor     *handler.VendorHandler
	Entity     *handler.EntityHandler
	Category   *handler.CategoryHandler
	Profile    *handler.ProfileHandler
	Invoice    *handler.InvoiceHandler
	Payment    *handler.PaymentHandler
	CreditNote *handler.CreditNoteHandler
	Ledger     *handler.LedgerReportHandler
}

// New builds the gin engine with the standard middleware chain and all
// API routes mounted under /api/v1
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", h.System.Health)
	engine.GET("/ping", h.System.Ping)

	api := engine.Group("/api/v1")

	vendors := api.Group("/vendors")
	{
		vendors.POST("", h.Vendor.Create)
		vendors.GET("", h.Vendor.List)
		vendors.POST("/check-duplicate", h.Vendor.CheckDuplicate)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.POST("/:id/activate", h.Vendor.Activate)
		vendors.POST("/:id/deactivate", h.Vendor.Deactivate)
	}

	entities := api.Group("/entities")
	{
		entities.POST("", h.Entity.Create)
		entities.GET("", h.Entity.List)
		entities.GET("/:id", h.Entity.Get)
		entities.PUT("/:id/active", h.Entity.SetActive)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", h.Category.Create)
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id/active", h.Category.SetActive)
	}

	profiles := api.Group("/profiles")
	{
		profiles.POST("", h.Profile.Create)
		profiles.GET("", h.Profile.List)
		profiles.GET("/:id", h.Profile.Get)
		profiles.POST("/:id/archive", h.Profile.Archive)
		profiles.POST("/:id/restore", h.Profile.Restore)
	}

	invoices := api.Group("/invoices")
	{
		invoices.POST("", h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.POST("/:id/submit", h.Invoice.Submit)
		invoices.POST("/:id/approve", h.Invoice.Approve)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
		invoices.GET("/:id/payments", h.Payment.ListByInvoice)
		invoices.GET("/:id/credit-notes", h.CreditNote.ListByInvoice)
	}

	payments := api.Group("/payments")
	{
		payments.POST("", h.Payment.Create)
		payments.GET("", h.Payment.List)
		payments.GET("/:id", h.Payment.Get)
		payments.POST("/:id/approve", h.Payment.Approve)
		payments.POST("/:id/reject", h.Payment.Reject)
	}

	creditNotes := api.Group("/credit-notes")
	{
		creditNotes.POST("", h.CreditNote.Create)
		creditNotes.POST("/:id/apply", h.CreditNote.Apply)
		creditNotes.POST("/:id/void", h.CreditNote.Void)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/ledger", h.Ledger.ListProfiles)
		reports.GET("/ledger/:id", h.Ledger.GetByProfile)
		reports.GET("/ledger/:id/export", h.Ledger.Export)
	}

	return engine
}
