package models

import (
	"strings"
	"time"
)

type Company struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	RegistrationNo string    `json:"registration_no"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	GSTNo          string    `json:"gst_no"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateCompanyRequest represents the request body for creating a company
type CreateCompanyRequest struct {
	Name           string `json:"name"`
	RegistrationNo string `json:"registration_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	GSTNo          string `json:"gst_no"`
}

// UpdateCompanyRequest represents the request body for updating a company
type UpdateCompanyRequest struct {
	Name           string `json:"name"`
	RegistrationNo string `json:"registration_no"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	GSTNo          string `json:"gst_no"`
}

func (r *CreateCompanyRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "company name is required")
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		errs = append(errs, "invalid email address")
	}
	if r.Phone != "" && !ValidPhone(r.Phone) {
		errs = append(errs, "invalid phone number")
	}
	return errs
}

func (r *UpdateCompanyRequest) Validate() []string {
	c := CreateCompanyRequest(*r)
	return c.Validate()
}
