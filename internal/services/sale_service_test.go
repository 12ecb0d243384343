package services

import (
	"context"
	"testing"

	"bookstore-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSaleRejectsInvalidRequest(t *testing.T) {
	svc := NewSaleService(nil)

	_, err := svc.CreateSale(context.Background(), &models.CreateSaleRequest{CompanyID: 1})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Problems, "at least one item is required")
}

func TestCreateSaleRejectsBadDate(t *testing.T) {
	svc := NewSaleService(nil)

	_, err := svc.CreateSale(context.Background(), &models.CreateSaleRequest{
		CompanyID: 1,
		SaleDate:  "12/31/2024",
		Items:     []models.SaleItemRequest{{BookID: 1, Quantity: 1, PricePerUnit: 10}},
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "sale_date")
}

func TestListSalesRequiresCompany(t *testing.T) {
	svc := NewSaleService(nil)

	_, err := svc.ListSales(context.Background(), 0)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}
