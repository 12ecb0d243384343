package repositories

import (
	"context"
	"fmt"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SaleRepository struct {
	DB *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{DB: db}
}

// FormatInvoiceNumber renders a company-scoped sequence value as a
// human-readable invoice number.
func FormatInvoiceNumber(companyID, sequence int) string {
	return fmt.Sprintf("INV-%03d-%06d", companyID, sequence)
}

// nextInvoiceNumber bumps the company's counter inside the caller's
// transaction. The upsert-increment is atomic, so concurrent sales for
// the same company never see the same value.
func nextInvoiceNumber(ctx context.Context, tx pgx.Tx, companyID int) (string, error) {
	var seq int
	err := tx.QueryRow(ctx,
		`INSERT INTO invoice_counters(company_id, last_value) VALUES($1, 1)
         ON CONFLICT (company_id) DO UPDATE SET last_value = invoice_counters.last_value + 1
         RETURNING last_value`, companyID).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("failed to allocate invoice number: %w", classify(err))
	}
	return FormatInvoiceNumber(companyID, seq), nil
}

// Create runs the whole sale workflow in one transaction: allocate the
// invoice number, insert the header, then per cart line insert the item,
// decrement the book's stock and append the OUT movement. The decrement
// re-verifies available stock; a stale cart aborts everything with
// ErrInsufficientStock.
func (r *SaleRepository) Create(ctx context.Context, sale *models.Sale, items []models.SaleItem) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	// A sale may only reference a customer owned by the same company.
	if sale.CustomerID != nil {
		var one int
		err = tx.QueryRow(ctx,
			`SELECT 1 FROM customers WHERE id = $1 AND company_id = $2`,
			*sale.CustomerID, sale.CompanyID).Scan(&one)
		if err != nil {
			if classify(err) == ErrNotFound {
				return fmt.Errorf("customer %d does not belong to company %d: %w",
					*sale.CustomerID, sale.CompanyID, ErrConstraint)
			}
			return classify(err)
		}
	}

	if sale.InvoiceNo == "" {
		sale.InvoiceNo, err = nextInvoiceNumber(ctx, tx, sale.CompanyID)
		if err != nil {
			return err
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO sales(company_id, customer_id, invoice_no, sale_date,
	                       total_amount, discount, tax_amount, final_amount, payment_status, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, created_at`,
		sale.CompanyID, sale.CustomerID, sale.InvoiceNo, sale.SaleDate,
		sale.TotalAmount, sale.Discount, sale.TaxAmount, sale.FinalAmount,
		sale.PaymentStatus, sale.Notes,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return classify(err)
	}

	for i := range items {
		item := &items[i]
		item.SaleID = sale.ID

		err = tx.QueryRow(ctx,
			`INSERT INTO sale_items(sale_id, book_id, quantity, price_per_unit, total_price)
             VALUES($1, $2, $3, $4, $5) RETURNING id`,
			item.SaleID, item.BookID, item.Quantity, item.PricePerUnit, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return classify(err)
		}

		tag, err := tx.Exec(ctx,
			`UPDATE books SET stock_quantity = stock_quantity - $1
             WHERE id = $2 AND company_id = $3
               AND stock_quantity - damaged_quantity - lost_quantity >= $1`,
			item.Quantity, item.BookID, sale.CompanyID)
		if err != nil {
			return classify(err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("book %d: %w", item.BookID, ErrInsufficientStock)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO stock_movements(book_id, movement_type, quantity, reference_type, reference_id)
             VALUES($1, $2, $3, $4, $5)`,
			item.BookID, models.MovementOut, item.Quantity, models.ReferenceSale, sale.ID)
		if err != nil {
			return classify(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *SaleRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Sale, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT s.id, s.company_id, s.customer_id, s.invoice_no, s.sale_date, s.total_amount,
	            s.discount, s.tax_amount, s.final_amount, s.payment_status, s.notes, s.created_at,
	            COALESCE(c.name, '') AS customer_name, comp.name AS company_name
         FROM sales s
         LEFT JOIN customers c ON s.customer_id = c.id
         JOIN companies comp ON s.company_id = comp.id
         WHERE s.company_id = $1
         ORDER BY s.sale_date DESC, s.id DESC`, companyID)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.CustomerID, &s.InvoiceNo, &s.SaleDate,
			&s.TotalAmount, &s.Discount, &s.TaxAmount, &s.FinalAmount, &s.PaymentStatus,
			&s.Notes, &s.CreatedAt, &s.CustomerName, &s.CompanyName); err != nil {
			return nil, err
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// GetWithDetails reconstructs the full invoice view: header, company,
// nullable customer and line items joined with their books.
func (r *SaleRepository) GetWithDetails(ctx context.Context, id int) (*models.SaleWithDetails, error) {
	var d models.SaleWithDetails
	err := r.DB.QueryRow(ctx,
		`SELECT s.id, s.company_id, s.customer_id, s.invoice_no, s.sale_date, s.total_amount,
	            s.discount, s.tax_amount, s.final_amount, s.payment_status, s.notes, s.created_at,
	            COALESCE(c.name, ''), COALESCE(c.phone, ''), COALESCE(c.address, ''), COALESCE(c.gst_no, ''),
	            comp.id, comp.name, comp.registration_no, comp.address, comp.phone, comp.email, comp.gst_no
         FROM sales s
         LEFT JOIN customers c ON s.customer_id = c.id
         JOIN companies comp ON s.company_id = comp.id
         WHERE s.id = $1`, id,
	).Scan(&d.ID, &d.CompanyID, &d.CustomerID, &d.InvoiceNo, &d.SaleDate, &d.TotalAmount,
		&d.Discount, &d.TaxAmount, &d.FinalAmount, &d.PaymentStatus, &d.Notes, &d.CreatedAt,
		&d.CustomerName, &d.CustomerPhone, &d.CustomerAddress, &d.CustomerGSTNo,
		&d.Company.ID, &d.Company.Name, &d.Company.RegistrationNo, &d.Company.Address,
		&d.Company.Phone, &d.Company.Email, &d.Company.GSTNo)
	if err != nil {
		return nil, classify(err)
	}
	d.CompanyName = d.Company.Name

	rows, err := r.DB.Query(ctx,
		`SELECT si.id, si.sale_id, si.book_id, si.quantity, si.price_per_unit, si.total_price,
	            b.name AS book_name, b.author AS book_author
         FROM sale_items si JOIN books b ON si.book_id = b.id
         WHERE si.sale_id = $1
         ORDER BY si.id`, id)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.BookID, &item.Quantity,
			&item.PricePerUnit, &item.TotalPrice, &item.BookName, &item.BookAuthor); err != nil {
			return nil, err
		}
		d.Items = append(d.Items, item)
	}
	return &d, rows.Err()
}
