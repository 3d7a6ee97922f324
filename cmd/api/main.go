package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/SumitSinghvi/invoice-bliss/internal/application/billing"
	"github.com/SumitSinghvi/invoice-bliss/internal/application/reports"
	"github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/memory"
	infrapdf "github.com/SumitSinghvi/invoice-bliss/internal/infrastructure/pdf"
	httpRouter "github.com/SumitSinghvi/invoice-bliss/internal/interfaces/http"
	"github.com/SumitSinghvi/invoice-bliss/pkg/config"
	"github.com/SumitSinghvi/invoice-bliss/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	// All state is in-process: the store boots from the demo fixture and
	// lives for the process. Nothing is persisted.
	customers, invoices := memory.Seed()
	store := memory.NewStore(customers, invoices)

	store.Subscribe(func() {
		log.Debug().
			Int("customers", len(store.Customers())).
			Int("invoices", len(store.Invoices())).
			Msg("store mutated")
	})

	business := appbilling.BusinessProfile{
		Name:    cfg.Business.Name,
		Phone:   cfg.Business.Phone,
		Email:   cfg.Business.Email,
		Address: cfg.Business.Address,
		GSTIN:   cfg.Business.GSTIN,
	}

	customerUC := appbilling.NewCustomerUseCase(store)
	invoiceUC := appbilling.NewInvoiceUseCase(store)
	pdfUC := appbilling.NewPDFUseCase(store, business, infrapdf.NewMarotoPDFGenerator())
	reportsUC := reports.NewSummaryUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI at http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "invoice-bliss API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		InvoicePDF: pdfUC,
		ReportsUC:  reportsUC,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
