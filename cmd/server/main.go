package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	billingapp "github.com/paylog/backend/internal/application/billing"
	masterdataapp "github.com/paylog/backend/internal/application/masterdata"
	partnerapp "github.com/paylog/backend/internal/application/partner"
	reportapp "github.com/paylog/backend/internal/application/report"
	"github.com/paylog/backend/internal/infrastructure/cache"
	"github.com/paylog/backend/internal/infrastructure/config"
	"github.com/paylog/backend/internal/infrastructure/logger"
	"github.com/paylog/backend/internal/infrastructure/persistence"
	"github.com/paylog/backend/internal/interfaces/http/handler"
	"github.com/paylog/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting PayLog backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), 0)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	summaryCache := cache.NewSummaryCache(cfg, log)

	// Repositories
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	entityRepo := persistence.NewGormEntityRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	creditNoteRepo := persistence.NewGormCreditNoteRepository(db.DB)

	// Application services. The ledger service doubles as the
	// invalidator for invoice and payment mutations.
	ledgerService := reportapp.NewLedgerService(profileRepo, invoiceRepo, paymentRepo, vendorRepo, summaryCache)
	vendorService := partnerapp.NewVendorService(vendorRepo)
	entityService := masterdataapp.NewEntityService(entityRepo)
	categoryService := masterdataapp.NewCategoryService(categoryRepo)
	profileService := billingapp.NewProfileService(profileRepo, vendorRepo, entityRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, profileRepo, ledgerService)
	paymentService := billingapp.NewPaymentService(paymentRepo, invoiceRepo, ledgerService)
	creditNoteService := billingapp.NewCreditNoteService(creditNoteRepo, invoiceRepo)

	engine := router.New(cfg, log, router.Handlers{
		System:     handler.NewSystemHandler(db.DB),
		Vendor:     handler.NewVendorHandler(vendorService),
		Entity:     handler.NewEntityHandler(entityService),
		Category:   handler.NewCategoryHandler(categoryService),
		Profile:    handler.NewProfileHandler(profileService),
		Invoice:    handler.NewInvoiceHandler(invoiceService),
		Payment:    handler.NewPaymentHandler(paymentService),
		CreditNote: handler.NewCreditNoteHandler(creditNoteService),
		Ledger:     handler.NewLedgerReportHandler(ledgerService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if closer, ok := summaryCache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("Error closing summary cache", zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}
