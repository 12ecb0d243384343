package repositories

import (
	"context"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StockMovementRepository struct {
	DB *pgxpool.Pool
}

func NewStockMovementRepository(db *pgxpool.Pool) *StockMovementRepository {
	return &StockMovementRepository{DB: db}
}

// ListByBook returns the audit trail for a book, newest first.
func (r *StockMovementRepository) ListByBook(ctx context.Context, bookID int) ([]*models.StockMovement, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, book_id, movement_type, quantity, reference_type, reference_id, notes, created_at
         FROM stock_movements
         WHERE book_id = $1
         ORDER BY created_at DESC, id DESC`, bookID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var movements []*models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.BookID, &m.MovementType, &m.Quantity,
			&m.ReferenceType, &m.ReferenceID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, err
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
