package repositories

import (
	"context"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	DB *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *models.Company) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO companies(name, registration_no, address, phone, email, gst_no)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		c.Name, c.RegistrationNo, c.Address, c.Phone, c.Email, c.GSTNo,
	).Scan(&c.ID, &c.CreatedAt)
	return classify(err)
}

func (r *CompanyRepository) Get(ctx context.Context, id int) (*models.Company, error) {
	var c models.Company
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, registration_no, address, phone, email, gst_no, created_at
         FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.RegistrationNo, &c.Address, &c.Phone, &c.Email, &c.GSTNo, &c.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, registration_no, address, phone, email, gst_no, created_at
         FROM companies ORDER BY name`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.RegistrationNo, &c.Address, &c.Phone,
			&c.Email, &c.GSTNo, &c.CreatedAt); err != nil {
			return nil, err
		}
		companies = append(companies, &c)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, id int, c *models.Company) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE companies SET name=$1, registration_no=$2, address=$3, phone=$4, email=$5, gst_no=$6
         WHERE id=$7`,
		c.Name, c.RegistrationNo, c.Address, c.Phone, c.Email, c.GSTNo, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a company and everything it owns in one transaction.
// Children go first so foreign keys never block the delete: movements
// referencing the company's books, then sale items, sales, purchases,
// customers, books, the invoice counter and finally the company row.
func (r *CompanyRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`DELETE FROM stock_movements WHERE book_id IN (SELECT id FROM books WHERE company_id = $1)`,
		`DELETE FROM sale_items WHERE sale_id IN (SELECT id FROM sales WHERE company_id = $1)`,
		`DELETE FROM sales WHERE company_id = $1`,
		`DELETE FROM purchases WHERE company_id = $1`,
		`DELETE FROM customers WHERE company_id = $1`,
		`DELETE FROM books WHERE company_id = $1`,
		`DELETE FROM invoice_counters WHERE company_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, id); err != nil {
			return classify(err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
