package http

import (
	"bookstore-backend/internal/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	companyHandler *handlers.CompanyHandler,
	bookHandler *handlers.BookHandler,
	customerHandler *handlers.CustomerHandler,
	purchaseHandler *handlers.PurchaseHandler,
	saleHandler *handlers.SaleHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Companies
	companiesAPI := r.PathPrefix("/api/companies").Subrouter()
	companiesAPI.HandleFunc("", companyHandler.ListCompanies).Methods("GET")
	companiesAPI.HandleFunc("", companyHandler.CreateCompany).Methods("POST")
	companiesAPI.HandleFunc("/{id}", companyHandler.GetCompany).Methods("GET")
	companiesAPI.HandleFunc("/{id}", companyHandler.UpdateCompany).Methods("PUT")
	companiesAPI.HandleFunc("/{id}", companyHandler.DeleteCompany).Methods("DELETE")

	// Books and stock operations
	booksAPI := r.PathPrefix("/api/books").Subrouter()
	booksAPI.HandleFunc("", bookHandler.ListBooks).Methods("GET")
	booksAPI.HandleFunc("", bookHandler.CreateBook).Methods("POST")
	booksAPI.HandleFunc("/{id}", bookHandler.GetBook).Methods("GET")
	booksAPI.HandleFunc("/{id}", bookHandler.UpdateBook).Methods("PUT")
	booksAPI.HandleFunc("/{id}", bookHandler.DeleteBook).Methods("DELETE")
	booksAPI.HandleFunc("/{id}/adjust-stock", bookHandler.AdjustStock).Methods("POST")
	booksAPI.HandleFunc("/{id}/mark-damaged", bookHandler.MarkDamaged).Methods("POST")
	booksAPI.HandleFunc("/{id}/mark-lost", bookHandler.MarkLost).Methods("POST")
	booksAPI.HandleFunc("/{id}/movements", bookHandler.ListMovements).Methods("GET")

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Purchases
	purchasesAPI := r.PathPrefix("/api/purchases").Subrouter()
	purchasesAPI.HandleFunc("", purchaseHandler.ListPurchases).Methods("GET")
	purchasesAPI.HandleFunc("", purchaseHandler.RecordPurchase).Methods("POST")
	purchasesAPI.HandleFunc("/latest-price", purchaseHandler.LatestPrice).Methods("GET")

	// Sales and invoices
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")
	salesAPI.HandleFunc("/{id}", saleHandler.GetSale).Methods("GET")
	salesAPI.HandleFunc("/{id}/invoice.pdf", saleHandler.DownloadInvoice).Methods("GET")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/dashboard", reportHandler.Dashboard).Methods("GET")
	reportsAPI.HandleFunc("/stock.csv", reportHandler.StockCSV).Methods("GET")
	reportsAPI.HandleFunc("/sales.csv", reportHandler.SalesCSV).Methods("GET")
	reportsAPI.HandleFunc("/invoices.zip", reportHandler.InvoicesZip).Methods("GET")

	// Health endpoints (for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
