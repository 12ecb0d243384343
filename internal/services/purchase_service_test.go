package services

import (
	"context"
	"testing"

	"bookstore-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPurchaseRejectsInvalidRequest(t *testing.T) {
	svc := NewPurchaseService(nil)

	_, err := svc.RecordPurchase(context.Background(), &models.CreatePurchaseRequest{
		CompanyID: 1,
		BookID:    2,
		Quantity:  0,
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Problems, "quantity must be positive")
}

func TestRecordPurchaseRejectsBadDate(t *testing.T) {
	svc := NewPurchaseService(nil)

	_, err := svc.RecordPurchase(context.Background(), &models.CreatePurchaseRequest{
		CompanyID:    1,
		BookID:       2,
		Quantity:     5,
		PricePerUnit: 100,
		PurchaseDate: "15-06-2025",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Error(), "purchase_date")
}

func TestLatestPriceRequiresBook(t *testing.T) {
	svc := NewPurchaseService(nil)

	_, err := svc.LatestPrice(context.Background(), 0)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestPurchaseRequestTotalAmount(t *testing.T) {
	req := &models.CreatePurchaseRequest{Quantity: 7, PricePerUnit: 42.50}
	assert.Equal(t, 297.50, req.TotalAmount())
}
