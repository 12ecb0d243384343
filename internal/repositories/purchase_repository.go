package repositories

import (
	"context"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseRepository struct {
	DB *pgxpool.Pool
}

func NewPurchaseRepository(db *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

// Create records an inbound stock event: the purchase row, the stock
// increment and the IN movement commit or roll back together.
func (r *PurchaseRepository) Create(ctx context.Context, p *models.Purchase) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO purchases(company_id, book_id, supplier_name, quantity,
	                           price_per_unit, total_amount, purchase_date, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at`,
		p.CompanyID, p.BookID, p.SupplierName, p.Quantity,
		p.PricePerUnit, p.TotalAmount, p.PurchaseDate, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return classify(err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE books SET stock_quantity = stock_quantity + $1 WHERE id = $2 AND company_id = $3`,
		p.Quantity, p.BookID, p.CompanyID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO stock_movements(book_id, movement_type, quantity, reference_type, reference_id)
         VALUES($1, $2, $3, $4, $5)`,
		p.BookID, models.MovementIn, p.Quantity, models.ReferencePurchase, p.ID)
	if err != nil {
		return classify(err)
	}

	return tx.Commit(ctx)
}

func (r *PurchaseRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Purchase, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.company_id, p.book_id, p.supplier_name, p.quantity, p.price_per_unit,
	            p.total_amount, p.purchase_date, p.notes, p.created_at,
	            b.name AS book_name, b.author AS book_author
         FROM purchases p JOIN books b ON p.book_id = b.id
         WHERE p.company_id = $1
         ORDER BY p.purchase_date DESC, p.id DESC`, companyID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var purchases []*models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.BookID, &p.SupplierName, &p.Quantity,
			&p.PricePerUnit, &p.TotalAmount, &p.PurchaseDate, &p.Notes, &p.CreatedAt,
			&p.BookName, &p.BookAuthor); err != nil {
			return nil, err
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

// LatestPrice returns the most recent purchase price for a book, zero
// when the book has never been purchased.
func (r *PurchaseRepository) LatestPrice(ctx context.Context, bookID int) (float64, error) {
	var price float64
	err := r.DB.QueryRow(ctx,
		`SELECT price_per_unit FROM purchases
         WHERE book_id = $1
         ORDER BY purchase_date DESC, id DESC
         LIMIT 1`, bookID).Scan(&price)
	if err != nil {
		if classify(err) == ErrNotFound {
			return 0, nil
		}
		return 0, classify(err)
	}
	return price, nil
}
