package models

import "time"

// Movement types recorded in the stock ledger. Manual corrections are
// recorded as IN or OUT depending on the sign of the delta, with
// reference_type ADJUSTMENT carrying the cause.
const (
	MovementIn      = "IN"
	MovementOut     = "OUT"
	MovementDamaged = "DAMAGED"
	MovementLost    = "LOST"
)

// Reference types linking a movement to its cause
const (
	ReferencePurchase   = "PURCHASE"
	ReferenceSale       = "SALE"
	ReferenceAdjustment = "ADJUSTMENT"
)

// StockMovement is an append-only audit row. Quantity is always stored
// as a positive magnitude; movement_type carries the direction.
type StockMovement struct {
	ID            int       `json:"id"`
	BookID        int       `json:"book_id"`
	MovementType  string    `json:"movement_type"`
	Quantity      int       `json:"quantity"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   *int      `json:"reference_id"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// NetStockChange replays a movement sequence and returns the net effect
// on stock_quantity. DAMAGED and LOST movements track their own counters
// and leave stock_quantity untouched.
func NetStockChange(movements []StockMovement) int {
	net := 0
	for _, m := range movements {
		switch m.MovementType {
		case MovementIn:
			net += m.Quantity
		case MovementOut:
			net -= m.Quantity
		}
	}
	return net
}
