package models

import (
	"strings"
	"time"
)

type Customer struct {
	ID          int       `json:"id"`
	CompanyID   int       `json:"company_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	GSTNo       string    `json:"gst_no"`
	CompanyName string    `json:"company_name,omitempty"` // Joined from companies table
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	CompanyID int    `json:"company_id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	GSTNo     string `json:"gst_no"`
}

// UpdateCustomerRequest represents the request body for updating a customer
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	GSTNo   string `json:"gst_no"`
}

func (r *CreateCustomerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "customer name is required")
	}
	if r.CompanyID <= 0 {
		errs = append(errs, "valid company selection is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		errs = append(errs, "invalid email address")
	}
	if r.Phone != "" && !ValidPhone(r.Phone) {
		errs = append(errs, "invalid phone number")
	}
	return errs
}

func (r *UpdateCustomerRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "customer name is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		errs = append(errs, "invalid email address")
	}
	if r.Phone != "" && !ValidPhone(r.Phone) {
		errs = append(errs, "invalid phone number")
	}
	return errs
}
