package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/config"
	"bookstore-backend/internal/database"
	"bookstore-backend/internal/db"
	"bookstore-backend/internal/handlers"
	"bookstore-backend/internal/health"
	h "bookstore-backend/internal/http"
	"bookstore-backend/internal/middleware"
	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (reports will hit the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	bookRepo := repositories.NewBookRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	purchaseRepo := repositories.NewPurchaseRepository(pool)
	saleRepo := repositories.NewSaleRepository(pool)
	movementRepo := repositories.NewStockMovementRepository(pool)

	// Initialize services
	companyService := services.NewCompanyService(companyRepo)
	bookService := services.NewBookService(bookRepo, movementRepo)
	customerService := services.NewCustomerService(customerRepo)
	purchaseService := services.NewPurchaseService(purchaseRepo)
	saleService := services.NewSaleService(saleRepo)
	reportService := services.NewReportService(pool, bookRepo, saleRepo)

	// Initialize handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	bookHandler := handlers.NewBookHandler(bookService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	saleHandler := handlers.NewSaleHandler(saleService, reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router and middleware chain
	router := h.NewRouter(
		companyHandler,
		bookHandler,
		customerHandler,
		purchaseHandler,
		saleHandler,
		reportHandler,
		healthHandler,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
