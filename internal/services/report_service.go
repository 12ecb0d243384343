package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"bookstore-backend/internal/cache"
	"bookstore-backend/internal/models"
	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/timeutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jung-kurt/gofpdf/v2"
)

// DashboardSummary holds the per-company aggregates shown on the dashboard
type DashboardSummary struct {
	CompanyID      int     `json:"company_id"`
	TotalBooks     int     `json:"total_books"`
	AvailableStock int     `json:"available_stock"`
	DamagedStock   int     `json:"damaged_stock"`
	LostStock      int     `json:"lost_stock"`
	LowStockBooks  int     `json:"low_stock_books"`
	StockValue     float64 `json:"stock_value"`
	TotalCustomers int     `json:"total_customers"`
	TotalPurchases int     `json:"total_purchases"`
	PurchaseValue  float64 `json:"purchase_value"`
	TotalSales     int     `json:"total_sales"`
	SalesRevenue   float64 `json:"sales_revenue"`
	PendingSales   int     `json:"pending_sales"`
}

// dashboardTTL keeps the cached summary fresh enough for a busy counter
const dashboardTTL = 5 * time.Minute

// ReportService handles dashboard aggregates, CSV exports and invoice PDFs
type ReportService struct {
	DB       *pgxpool.Pool
	BookRepo *repositories.BookRepository
	SaleRepo *repositories.SaleRepository
}

func NewReportService(db *pgxpool.Pool, bookRepo *repositories.BookRepository, saleRepo *repositories.SaleRepository) *ReportService {
	return &ReportService{
		DB:       db,
		BookRepo: bookRepo,
		SaleRepo: saleRepo,
	}
}

// GetDashboard returns the company summary, served from Redis when a
// fresh copy exists.
func (s *ReportService) GetDashboard(ctx context.Context, companyID int) (*DashboardSummary, error) {
	if companyID <= 0 {
		return nil, &ValidationError{Problems: []string{"company_id parameter is required"}}
	}

	key := cache.DashboardKey(companyID)
	if data, ok := cache.GetCached(ctx, key); ok {
		var summary DashboardSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	summary := &DashboardSummary{CompanyID: companyID}

	err := s.DB.QueryRow(ctx,
		`SELECT COUNT(*),
	            COALESCE(SUM(stock_quantity - damaged_quantity - lost_quantity), 0),
	            COALESCE(SUM(damaged_quantity), 0),
	            COALESCE(SUM(lost_quantity), 0),
	            COUNT(*) FILTER (WHERE stock_quantity - damaged_quantity - lost_quantity <= 5),
	            COALESCE(SUM((stock_quantity - damaged_quantity - lost_quantity) * selling_price), 0)
         FROM books WHERE company_id = $1`, companyID,
	).Scan(&summary.TotalBooks, &summary.AvailableStock, &summary.DamagedStock,
		&summary.LostStock, &summary.LowStockBooks, &summary.StockValue)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE company_id = $1`, companyID,
	).Scan(&summary.TotalCustomers)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
         FROM purchases WHERE company_id = $1`, companyID,
	).Scan(&summary.TotalPurchases, &summary.PurchaseValue)
	if err != nil {
		return nil, err
	}

	err = s.DB.QueryRow(ctx,
		`SELECT COUNT(*),
	            COALESCE(SUM(final_amount) FILTER (WHERE payment_status <> $2), 0),
	            COUNT(*) FILTER (WHERE payment_status = $3)
         FROM sales WHERE company_id = $1`,
		companyID, models.PaymentCancelled, models.PaymentPending,
	).Scan(&summary.TotalSales, &summary.SalesRevenue, &summary.PendingSales)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, key, data, dashboardTTL)
	}

	return summary, nil
}

// GenerateStockCSV exports the company's book inventory
func (s *ReportService) GenerateStockCSV(ctx context.Context, companyID int) ([]byte, error) {
	if companyID <= 0 {
		return nil, &ValidationError{Problems: []string{"company_id parameter is required"}}
	}

	books, err := s.BookRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Name", "Author", "Category", "Language", "ISBN",
		"Purchase Price", "Selling Price", "Stock", "Damaged", "Lost", "Available", "Value",
	})

	for i, b := range books {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			b.Name,
			b.Author,
			b.Category,
			b.Language,
			b.ISBN,
			fmt.Sprintf("%.2f", b.PurchasePrice),
			fmt.Sprintf("%.2f", b.SellingPrice),
			fmt.Sprintf("%d", b.StockQuantity),
			fmt.Sprintf("%d", b.DamagedQuantity),
			fmt.Sprintf("%d", b.LostQuantity),
			fmt.Sprintf("%d", b.AvailableStock()),
			fmt.Sprintf("%.2f", b.TotalValue()),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// GenerateSalesCSV exports the company's sales register
func (s *ReportService) GenerateSalesCSV(ctx context.Context, companyID int) ([]byte, error) {
	if companyID <= 0 {
		return nil, &ValidationError{Problems: []string{"company_id parameter is required"}}
	}

	sales, err := s.SaleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "Invoice No", "Date", "Customer", "Total", "Discount", "Tax", "Final", "Status",
	})

	for i, sale := range sales {
		customer := sale.CustomerName
		if customer == "" {
			customer = models.WalkInCustomerLabel
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			sale.InvoiceNo,
			timeutil.FormatIST(sale.SaleDate, timeutil.DateLayout),
			customer,
			fmt.Sprintf("%.2f", sale.TotalAmount),
			fmt.Sprintf("%.2f", sale.Discount),
			fmt.Sprintf("%.2f", sale.TaxAmount),
			fmt.Sprintf("%.2f", sale.FinalAmount),
			sale.PaymentStatus,
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// GenerateInvoicePDF renders a sale as a printable invoice
func (s *ReportService) GenerateInvoicePDF(d *models.SaleWithDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, d.Company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if d.Company.Address != "" {
		pdf.CellFormat(190, 5, d.Company.Address, "", 1, "C", false, 0, "")
	}
	contact := d.Company.Phone
	if d.Company.Email != "" {
		if contact != "" {
			contact += " | "
		}
		contact += d.Company.Email
	}
	if contact != "" {
		pdf.CellFormat(190, 5, contact, "", 1, "C", false, 0, "")
	}
	if d.Company.GSTNo != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("GST No: %s", d.Company.GSTNo), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, "TAX INVOICE", "T", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Invoice and customer details
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice No: %s", d.InvoiceNo), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", timeutil.FormatIST(d.SaleDate, timeutil.DisplayLayout)), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Bill To: %s", d.DisplayCustomerName()), "", 1, "L", false, 0, "")
	if d.CustomerPhone != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("Phone: %s", d.CustomerPhone), "", 1, "L", false, 0, "")
	}
	if d.CustomerAddress != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("Address: %s", d.CustomerAddress), "", 1, "L", false, 0, "")
	}
	if d.CustomerGSTNo != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("GST No: %s", d.CustomerGSTNo), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(78, 7, "Book", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Author", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Price", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, item := range d.Items {
		name := truncate(item.BookName, 40)
		author := truncate(item.BookAuthor, 18)
		pdf.CellFormat(12, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(78, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, author, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.PricePerUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", item.TotalPrice), "1", 1, "R", false, 0, "")
	}

	// Totals block
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "Subtotal", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", d.TotalAmount), "1", 1, "R", false, 0, "")
	if d.Discount > 0 {
		pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, "Discount", "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("-%.2f", d.Discount), "1", 1, "R", false, 0, "")
	}
	if d.TaxAmount > 0 {
		pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, "Tax", "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", d.TaxAmount), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(140, 7, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", d.FinalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Payment Status: %s", d.PaymentStatus), "", 1, "L", false, 0, "")
	if d.Notes != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Notes: %s", d.Notes), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateBulkInvoicePDFs renders every invoice of a company in parallel
func (s *ReportService) GenerateBulkInvoicePDFs(ctx context.Context, companyID int) (map[string][]byte, error) {
	sales, err := s.SaleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	type pdfResult struct {
		invoiceNo string
		data      []byte
		err       error
	}

	results := make(chan pdfResult, len(sales))
	jobs := make(chan int, len(sales))

	// Start 5 workers for PDF generation
	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for saleID := range jobs {
				details, err := s.SaleRepo.GetWithDetails(ctx, saleID)
				if err != nil {
					results <- pdfResult{err: err}
					continue
				}
				data, err := s.GenerateInvoicePDF(details)
				results <- pdfResult{invoiceNo: details.InvoiceNo, data: data, err: err}
			}
		}()
	}

	for _, sale := range sales {
		jobs <- sale.ID
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	pdfs := make(map[string][]byte)
	for r := range results {
		if r.err == nil && r.data != nil {
			pdfs[r.invoiceNo] = r.data
		}
	}

	return pdfs, nil
}

// truncate shortens a string to at most max characters, counting runes
// so multi-byte titles are never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// CreateInvoiceZip bundles invoice PDFs into a single download
func (s *ReportService) CreateInvoiceZip(pdfs map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for invoiceNo, pdfData := range pdfs {
		fw, err := zw.Create(fmt.Sprintf("%s.pdf", invoiceNo))
		if err != nil {
			continue
		}
		fw.Write(pdfData)
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
