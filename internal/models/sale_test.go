package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSaleRequestTotals(t *testing.T) {
	req := &CreateSaleRequest{
		Items: []SaleItemRequest{
			{BookID: 1, Quantity: 3, PricePerUnit: 100},
		},
	}

	total, final := req.Totals()
	assert.Equal(t, 300.0, total)
	assert.Equal(t, 300.0, final)
}

func TestCreateSaleRequestTotalsWithDiscountAndTax(t *testing.T) {
	req := &CreateSaleRequest{
		Discount:  50,
		TaxAmount: 18,
		Items: []SaleItemRequest{
			{BookID: 1, Quantity: 2, PricePerUnit: 250},
			{BookID: 2, Quantity: 1, PricePerUnit: 99.50},
		},
	}

	total, final := req.Totals()
	assert.Equal(t, 599.50, total)
	assert.Equal(t, 567.50, final)
}

func TestCreateSaleRequestValidate(t *testing.T) {
	valid := &CreateSaleRequest{
		CompanyID: 1,
		Items:     []SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: 10}},
	}
	assert.Empty(t, valid.Validate())

	emptyCart := &CreateSaleRequest{CompanyID: 1}
	assert.Contains(t, emptyCart.Validate(), "at least one item is required")

	badQty := &CreateSaleRequest{
		CompanyID: 1,
		Items:     []SaleItemRequest{{BookID: 1, Quantity: 0, PricePerUnit: 10}},
	}
	assert.Contains(t, badQty.Validate(), "item quantity must be positive")

	badPrice := &CreateSaleRequest{
		CompanyID: 1,
		Items:     []SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: -5}},
	}
	assert.Contains(t, badPrice.Validate(), "item price must be positive")

	negativeDiscount := &CreateSaleRequest{
		CompanyID: 1,
		Discount:  -1,
		Items:     []SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: 10}},
	}
	assert.Contains(t, negativeDiscount.Validate(), "discount cannot be negative")

	badStatus := &CreateSaleRequest{
		CompanyID:     1,
		PaymentStatus: "Refunded",
		Items:         []SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: 10}},
	}
	assert.Contains(t, badStatus.Validate(), "invalid payment status")
}

func TestCreateSaleRequestValidateStatuses(t *testing.T) {
	for _, status := range []string{"", PaymentCompleted, PaymentPending, PaymentCancelled} {
		req := &CreateSaleRequest{
			CompanyID:     1,
			PaymentStatus: status,
			Items:         []SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: 10}},
		}
		assert.Empty(t, req.Validate(), "status %q should be accepted", status)
	}
}

func TestDisplayCustomerName(t *testing.T) {
	walkIn := &SaleWithDetails{}
	assert.Equal(t, WalkInCustomerLabel, walkIn.DisplayCustomerName())

	id := 7
	named := &SaleWithDetails{}
	named.CustomerID = &id
	named.CustomerName = "Ravi Kumar"
	assert.Equal(t, "Ravi Kumar", named.DisplayCustomerName())

	// Customer row deleted after the sale
	orphan := &SaleWithDetails{}
	orphan.CustomerID = &id
	assert.Equal(t, WalkInCustomerLabel, orphan.DisplayCustomerName())
}
