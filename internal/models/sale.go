package models

import "time"

// Payment statuses a sale can carry
const (
	PaymentCompleted = "Completed"
	PaymentPending   = "Pending"
	PaymentCancelled = "Cancelled"
)

// WalkInCustomerLabel substitutes for a missing customer on invoices
const WalkInCustomerLabel = "Walk-in Customer"

type Sale struct {
	ID            int       `json:"id"`
	CompanyID     int       `json:"company_id"`
	CustomerID    *int      `json:"customer_id"` // nil means walk-in
	InvoiceNo     string    `json:"invoice_no"`
	SaleDate      time.Time `json:"sale_date"`
	TotalAmount   float64   `json:"total_amount"`
	Discount      float64   `json:"discount"`
	TaxAmount     float64   `json:"tax_amount"`
	FinalAmount   float64   `json:"final_amount"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes"`
	CustomerName  string    `json:"customer_name,omitempty"` // Joined from customers table
	CompanyName   string    `json:"company_name,omitempty"`  // Joined from companies table
	CreatedAt     time.Time `json:"created_at"`
}

type SaleItem struct {
	ID           int     `json:"id"`
	SaleID       int     `json:"sale_id"`
	BookID       int     `json:"book_id"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	TotalPrice   float64 `json:"total_price"`
	BookName     string  `json:"book_name,omitempty"`   // Joined from books table
	BookAuthor   string  `json:"book_author,omitempty"` // Joined from books table
}

// SaleItemRequest is one cart line in a sale request
type SaleItemRequest struct {
	BookID       int     `json:"book_id"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// CreateSaleRequest represents the request body for creating a sale
type CreateSaleRequest struct {
	CompanyID     int               `json:"company_id"`
	CustomerID    *int              `json:"customer_id"`
	SaleDate      string            `json:"sale_date"` // YYYY-MM-DD, defaults to today
	Discount      float64           `json:"discount"`
	TaxAmount     float64           `json:"tax_amount"`
	PaymentStatus string            `json:"payment_status"`
	Notes         string            `json:"notes"`
	Items         []SaleItemRequest `json:"items"`
}

// Totals recomputes the sale amounts from the cart lines. The stored
// final_amount is always total - discount + tax, never caller-supplied.
func (r *CreateSaleRequest) Totals() (total, final float64) {
	for _, item := range r.Items {
		total += float64(item.Quantity) * item.PricePerUnit
	}
	final = total - r.Discount + r.TaxAmount
	return total, final
}

func (r *CreateSaleRequest) Validate() []string {
	var errs []string
	if r.CompanyID <= 0 {
		errs = append(errs, "valid company selection is required")
	}
	if len(r.Items) == 0 {
		errs = append(errs, "at least one item is required")
	}
	for _, item := range r.Items {
		if item.BookID <= 0 {
			errs = append(errs, "each item needs a valid book")
			break
		}
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			errs = append(errs, "item quantity must be positive")
			break
		}
	}
	for _, item := range r.Items {
		if item.PricePerUnit <= 0 {
			errs = append(errs, "item price must be positive")
			break
		}
	}
	if r.Discount < 0 {
		errs = append(errs, "discount cannot be negative")
	}
	if r.TaxAmount < 0 {
		errs = append(errs, "tax amount cannot be negative")
	}
	switch r.PaymentStatus {
	case "", PaymentCompleted, PaymentPending, PaymentCancelled:
	default:
		errs = append(errs, "invalid payment status")
	}
	return errs
}

// SaleWithDetails is the invoice assembly: sale header joined with its
// company, its customer (nullable) and its line items with book names.
type SaleWithDetails struct {
	Sale
	CustomerPhone   string     `json:"customer_phone"`
	CustomerAddress string     `json:"customer_address"`
	CustomerGSTNo   string     `json:"customer_gst_no"`
	Company         Company    `json:"company"`
	Items           []SaleItem `json:"items"`
}

// DisplayCustomerName falls back to the walk-in label for anonymous sales.
func (s *SaleWithDetails) DisplayCustomerName() string {
	if s.CustomerID == nil || s.CustomerName == "" {
		return WalkInCustomerLabel
	}
	return s.CustomerName
}
