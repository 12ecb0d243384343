package models

import (
	"strings"
	"time"
)

type Book struct {
	ID              int       `json:"id"`
	CompanyID       int       `json:"company_id"`
	Name            string    `json:"name"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	Language        string    `json:"language"`
	ISBN            string    `json:"isbn"`
	PurchasePrice   float64   `json:"purchase_price"`
	SellingPrice    float64   `json:"selling_price"`
	StockQuantity   int       `json:"stock_quantity"`
	DamagedQuantity int       `json:"damaged_quantity"`
	LostQuantity    int       `json:"lost_quantity"`
	CompanyName     string    `json:"company_name,omitempty"` // Joined from companies table
	CreatedAt       time.Time `json:"created_at"`
}

// AvailableStock is derived, never persisted.
func (b *Book) AvailableStock() int {
	return b.StockQuantity - b.DamagedQuantity - b.LostQuantity
}

func (b *Book) TotalValue() float64 {
	return float64(b.AvailableStock()) * b.SellingPrice
}

func (b *Book) ProfitPerUnit() float64 {
	return b.SellingPrice - b.PurchasePrice
}

// CreateBookRequest represents the request body for creating a book
type CreateBookRequest struct {
	CompanyID     int     `json:"company_id"`
	Name          string  `json:"name"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	Language      string  `json:"language"`
	ISBN          string  `json:"isbn"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	StockQuantity int     `json:"stock_quantity"`
}

// UpdateBookRequest represents the request body for updating a book
type UpdateBookRequest struct {
	Name          string  `json:"name"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	Language      string  `json:"language"`
	ISBN          string  `json:"isbn"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
}

// AdjustStockRequest applies a signed delta to a book's stock quantity
type AdjustStockRequest struct {
	Delta int    `json:"delta"`
	Notes string `json:"notes"`
}

// MarkStockRequest moves available units into the damaged or lost counter
type MarkStockRequest struct {
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

func (r *CreateBookRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "book name is required")
	}
	if r.CompanyID <= 0 {
		errs = append(errs, "valid company selection is required")
	}
	if r.PurchasePrice < 0 {
		errs = append(errs, "purchase price cannot be negative")
	}
	if r.SellingPrice < 0 {
		errs = append(errs, "selling price cannot be negative")
	}
	if r.StockQuantity < 0 {
		errs = append(errs, "stock quantity cannot be negative")
	}
	return errs
}

func (r *UpdateBookRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "book name is required")
	}
	if r.PurchasePrice < 0 {
		errs = append(errs, "purchase price cannot be negative")
	}
	if r.SellingPrice < 0 {
		errs = append(errs, "selling price cannot be negative")
	}
	return errs
}

func (r *AdjustStockRequest) Validate() []string {
	if r.Delta == 0 {
		return []string{"delta must be non-zero"}
	}
	return nil
}

func (r *MarkStockRequest) Validate() []string {
	if r.Quantity <= 0 {
		return []string{"quantity must be positive"}
	}
	return nil
}
