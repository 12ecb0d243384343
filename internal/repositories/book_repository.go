package repositories

import (
	"context"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookRepository struct {
	DB *pgxpool.Pool
}

func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{DB: db}
}

const bookColumns = `b.id, b.company_id, b.name, b.author, b.category, b.language, b.isbn,
	b.purchase_price, b.selling_price, b.stock_quantity, b.damaged_quantity, b.lost_quantity, b.created_at`

func (r *BookRepository) Create(ctx context.Context, b *models.Book) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO books(company_id, name, author, category, language, isbn,
	                       purchase_price, selling_price, stock_quantity)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at`,
		b.CompanyID, b.Name, b.Author, b.Category, b.Language, b.ISBN,
		b.PurchasePrice, b.SellingPrice, b.StockQuantity,
	).Scan(&b.ID, &b.CreatedAt)
	return classify(err)
}

func (r *BookRepository) Get(ctx context.Context, id int) (*models.Book, error) {
	var b models.Book
	err := r.DB.QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books b WHERE b.id = $1`, id,
	).Scan(&b.ID, &b.CompanyID, &b.Name, &b.Author, &b.Category, &b.Language, &b.ISBN,
		&b.PurchasePrice, &b.SellingPrice, &b.StockQuantity, &b.DamagedQuantity, &b.LostQuantity,
		&b.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &b, nil
}

func (r *BookRepository) scanBooks(ctx context.Context, query string, args ...interface{}) ([]*models.Book, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Author, &b.Category, &b.Language,
			&b.ISBN, &b.PurchasePrice, &b.SellingPrice, &b.StockQuantity, &b.DamagedQuantity,
			&b.LostQuantity, &b.CreatedAt, &b.CompanyName); err != nil {
			return nil, err
		}
		books = append(books, &b)
	}
	return books, rows.Err()
}

func (r *BookRepository) List(ctx context.Context) ([]*models.Book, error) {
	return r.scanBooks(ctx,
		`SELECT `+bookColumns+`, c.name AS company_name
         FROM books b JOIN companies c ON b.company_id = c.id
         ORDER BY b.name`)
}

func (r *BookRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Book, error) {
	return r.scanBooks(ctx,
		`SELECT `+bookColumns+`, c.name AS company_name
         FROM books b JOIN companies c ON b.company_id = c.id
         WHERE b.company_id = $1 ORDER BY b.name`, companyID)
}

func (r *BookRepository) Update(ctx context.Context, id int, b *models.Book) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE books SET name=$1, author=$2, category=$3, language=$4, isbn=$5,
	                      purchase_price=$6, selling_price=$7
         WHERE id=$8`,
		b.Name, b.Author, b.Category, b.Language, b.ISBN,
		b.PurchasePrice, b.SellingPrice, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustStock applies a signed delta to stock_quantity and appends the
// paired audit row in the same transaction. Negative deltas are guarded
// against the book's available stock; positive deltas always succeed.
// Manual corrections are recorded as IN/OUT movements referencing
// ADJUSTMENT so the ledger stays exactly reconcilable.
func (r *BookRepository) AdjustStock(ctx context.Context, bookID, delta int, notes string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	movementType := models.MovementIn
	quantity := delta
	if delta < 0 {
		movementType = models.MovementOut
		quantity = -delta
	}

	// Positive deltas always succeed; removals are re-verified against
	// available stock inside the transaction.
	tag, err := tx.Exec(ctx,
		`UPDATE books SET stock_quantity = stock_quantity + $1
         WHERE id = $2 AND ($1 >= 0 OR stock_quantity - damaged_quantity - lost_quantity >= $3)`,
		delta, bookID, quantity)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, bookID); getErr != nil {
			return getErr
		}
		return ErrInsufficientStock
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO stock_movements(book_id, movement_type, quantity, reference_type, notes)
         VALUES($1, $2, $3, $4, $5)`,
		bookID, movementType, quantity, models.ReferenceAdjustment, notes)
	if err != nil {
		return classify(err)
	}

	return tx.Commit(ctx)
}

// MarkDamaged moves units from available stock into the damaged counter.
// stock_quantity is untouched; the movement row records the cause.
func (r *BookRepository) MarkDamaged(ctx context.Context, bookID, quantity int, notes string) error {
	return r.markCounter(ctx, bookID, quantity, notes, "damaged_quantity", models.MovementDamaged)
}

// MarkLost moves units from available stock into the lost counter.
func (r *BookRepository) MarkLost(ctx context.Context, bookID, quantity int, notes string) error {
	return r.markCounter(ctx, bookID, quantity, notes, "lost_quantity", models.MovementLost)
}

func (r *BookRepository) markCounter(ctx context.Context, bookID, quantity int, notes, column, movementType string) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE books SET `+column+` = `+column+` + $1
         WHERE id = $2 AND stock_quantity - damaged_quantity - lost_quantity >= $1`,
		quantity, bookID)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, bookID); getErr != nil {
			return getErr
		}
		return ErrInsufficientStock
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO stock_movements(book_id, movement_type, quantity, reference_type, notes)
         VALUES($1, $2, $3, $4, $5)`,
		bookID, movementType, quantity, models.ReferenceAdjustment, notes)
	if err != nil {
		return classify(err)
	}

	return tx.Commit(ctx)
}
