package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetStockChange(t *testing.T) {
	movements := []StockMovement{
		{MovementType: MovementIn, Quantity: 100, ReferenceType: ReferencePurchase},
		{MovementType: MovementOut, Quantity: 30, ReferenceType: ReferenceSale},
		{MovementType: MovementIn, Quantity: 5, ReferenceType: ReferenceAdjustment},
		{MovementType: MovementOut, Quantity: 2, ReferenceType: ReferenceAdjustment},
	}

	assert.Equal(t, 73, NetStockChange(movements))
}

func TestNetStockChangeIgnoresDamagedAndLost(t *testing.T) {
	movements := []StockMovement{
		{MovementType: MovementIn, Quantity: 50},
		{MovementType: MovementDamaged, Quantity: 4},
		{MovementType: MovementLost, Quantity: 1},
	}

	// Damaged and lost units track their own counters, stock_quantity
	// is unchanged by them.
	assert.Equal(t, 50, NetStockChange(movements))
}

func TestNetStockChangeEmpty(t *testing.T) {
	assert.Equal(t, 0, NetStockChange(nil))
}
