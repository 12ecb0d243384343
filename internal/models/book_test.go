package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookDerivedValues(t *testing.T) {
	b := &Book{
		StockQuantity:   50,
		DamagedQuantity: 3,
		LostQuantity:    2,
		PurchasePrice:   120,
		SellingPrice:    180,
	}

	assert.Equal(t, 45, b.AvailableStock())
	assert.Equal(t, 45*180.0, b.TotalValue())
	assert.Equal(t, 60.0, b.ProfitPerUnit())
}

func TestCreateBookRequestValidate(t *testing.T) {
	valid := &CreateBookRequest{CompanyID: 1, Name: "The Go Programming Language"}
	assert.Empty(t, valid.Validate())

	missing := &CreateBookRequest{CompanyID: 1, Name: "   "}
	assert.Contains(t, missing.Validate(), "book name is required")

	noCompany := &CreateBookRequest{Name: "Some Book"}
	assert.Contains(t, noCompany.Validate(), "valid company selection is required")

	negative := &CreateBookRequest{CompanyID: 1, Name: "Some Book", StockQuantity: -1}
	assert.Contains(t, negative.Validate(), "stock quantity cannot be negative")
}

func TestAdjustStockRequestValidate(t *testing.T) {
	assert.Empty(t, (&AdjustStockRequest{Delta: 5}).Validate())
	assert.Empty(t, (&AdjustStockRequest{Delta: -5}).Validate())
	assert.NotEmpty(t, (&AdjustStockRequest{Delta: 0}).Validate())
}

func TestMarkStockRequestValidate(t *testing.T) {
	assert.Empty(t, (&MarkStockRequest{Quantity: 1}).Validate())
	assert.NotEmpty(t, (&MarkStockRequest{Quantity: 0}).Validate())
	assert.NotEmpty(t, (&MarkStockRequest{Quantity: -3}).Validate())
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("shop@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("shop@"))
	assert.False(t, ValidEmail("shop@domain"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+91 98765 43210"))
	assert.True(t, ValidPhone("9876543210"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("98765abcde"))
}
