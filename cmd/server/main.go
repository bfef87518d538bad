package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fiscaldesk/internal/config"
	"fiscaldesk/internal/database"
	"fiscaldesk/internal/handlers"
	"fiscaldesk/internal/middleware"
	"fiscaldesk/internal/repositories"
	"fiscaldesk/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title FiscalDesk API
// @version 1.0
// @description Financial aggregation and tax-projection API for freelancers under the Italian flat-tax regime.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	categoryRepo := repositories.NewCategoryRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	workedHourRepo := repositories.NewWorkedHourRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Services
	clock := services.Clock(time.Now)
	metrics := services.NewPrometheusMetrics()

	categoryService := services.NewCategoryService(categoryRepo)
	expenseService := services.NewExpenseService(expenseRepo, categoryRepo)
	expenseSummaryService := services.NewExpenseSummaryService(expenseRepo, categoryRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, clientRepo, clock)
	invoiceSummaryService := services.NewInvoiceSummaryService(invoiceRepo)
	clientService := services.NewClientService(clientRepo)
	workedHourService := services.NewWorkedHourService(workedHourRepo, clientRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	dashboardService := services.NewDashboardService(expenseSummaryService, invoiceSummaryService, metrics, clock)
	chartService := services.NewChartService(invoiceRepo, expenseRepo, expenseSummaryService, clock)
	revenueLimitService := services.NewRevenueLimitService(invoiceRepo, clock)
	taxProjectionService := services.NewTaxProjectionService(invoiceRepo, expenseRepo)
	reportService := services.NewReportService(clientRepo, workedHourRepo, metrics)
	reportRenderer := services.NewTextRenderer(cfg.Report.ForceCanonicalEuro)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, expenseSummaryService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, invoiceSummaryService)
	clientHandler := handlers.NewClientHandler(clientService)
	workedHourHandler := handlers.NewWorkedHourHandler(workedHourService, reportService, reportRenderer, settingsService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dashboardHandler := handlers.NewDashboardHandler(
		dashboardService,
		chartService,
		revenueLimitService,
		taxProjectionService,
		settingsService,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories", categoryHandler.GetCategories)
	api.GET("/categories/:categoryId", categoryHandler.GetCategory)
	api.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory)

	api.POST("/expenses", expenseHandler.CreateExpense)
	api.GET("/expenses", expenseHandler.GetExpenses)
	api.GET("/expenses/summary", expenseHandler.GetExpenseSummary)
	api.GET("/expenses/:expenseId", expenseHandler.GetExpense)
	api.PUT("/expenses/:expenseId", expenseHandler.UpdateExpense)
	api.DELETE("/expenses/:expenseId", expenseHandler.DeleteExpense)

	api.POST("/invoices", invoiceHandler.CreateInvoice)
	api.GET("/invoices", invoiceHandler.GetInvoices)
	api.GET("/invoices/summary", invoiceHandler.GetInvoiceSummary)
	api.GET("/invoices/:invoiceId", invoiceHandler.GetInvoice)
	api.PUT("/invoices/:invoiceId", invoiceHandler.UpdateInvoice)
	api.PATCH("/invoices/:invoiceId/status", invoiceHandler.UpdateInvoiceStatus)
	api.DELETE("/invoices/:invoiceId", invoiceHandler.DeleteInvoice)

	api.POST("/clients", clientHandler.CreateClient)
	api.GET("/clients", clientHandler.GetClients)
	api.GET("/clients/:clientId", clientHandler.GetClient)
	api.PUT("/clients/:clientId", clientHandler.UpdateClient)
	api.DELETE("/clients/:clientId", clientHandler.DeleteClient)
	api.GET("/clients/:clientId/report", workedHourHandler.GetMonthlyReport)

	api.POST("/worked-hours", workedHourHandler.LogHours)
	api.GET("/worked-hours", workedHourHandler.GetEntries)
	api.GET("/worked-hours/:entryId", workedHourHandler.GetEntry)
	api.PUT("/worked-hours/:entryId", workedHourHandler.UpdateEntry)
	api.DELETE("/worked-hours/:entryId", workedHourHandler.DeleteEntry)

	api.GET("/settings", settingsHandler.GetSettings)
	api.PUT("/settings", settingsHandler.UpdateSettings)

	api.GET("/dashboard/summary", dashboardHandler.GetSummary)
	api.GET("/dashboard/chart", dashboardHandler.GetIncomeExpenseChart)
	api.GET("/dashboard/category-pie", dashboardHandler.GetCategoryPie)
	api.GET("/dashboard/annual-limit", dashboardHandler.GetAnnualLimit)
	api.GET("/dashboard/monthly-overview", dashboardHandler.GetMonthlyOverview)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "addr", server.Addr, "env", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped")
}
