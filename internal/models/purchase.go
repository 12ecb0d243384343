package models

import "time"

type Purchase struct {
	ID           int       `json:"id"`
	CompanyID    int       `json:"company_id"`
	BookID       int       `json:"book_id"`
	SupplierName string    `json:"supplier_name"`
	Quantity     int       `json:"quantity"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalAmount  float64   `json:"total_amount"`
	PurchaseDate time.Time `json:"purchase_date"`
	Notes        string    `json:"notes"`
	BookName     string    `json:"book_name,omitempty"`   // Joined from books table
	BookAuthor   string    `json:"book_author,omitempty"` // Joined from books table
	CreatedAt    time.Time `json:"created_at"`
}

// CreatePurchaseRequest represents the request body for recording a purchase
type CreatePurchaseRequest struct {
	CompanyID    int     `json:"company_id"`
	BookID       int     `json:"book_id"`
	SupplierName string  `json:"supplier_name"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	PurchaseDate string  `json:"purchase_date"` // YYYY-MM-DD, defaults to today
	Notes        string  `json:"notes"`
}

// TotalAmount is always recomputed from quantity and unit price.
func (r *CreatePurchaseRequest) TotalAmount() float64 {
	return float64(r.Quantity) * r.PricePerUnit
}

func (r *CreatePurchaseRequest) Validate() []string {
	var errs []string
	if r.CompanyID <= 0 {
		errs = append(errs, "valid company selection is required")
	}
	if r.BookID <= 0 {
		errs = append(errs, "valid book selection is required")
	}
	if r.Quantity <= 0 {
		errs = append(errs, "quantity must be positive")
	}
	if r.PricePerUnit <= 0 {
		errs = append(errs, "price per unit must be positive")
	}
	return errs
}
