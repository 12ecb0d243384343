package repositories

import (
	"context"

	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO customers(company_id, name, phone, email, address, gst_no)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		c.CompanyID, c.Name, c.Phone, c.Email, c.Address, c.GSTNo,
	).Scan(&c.ID, &c.CreatedAt)
	return classify(err)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	var c models.Customer
	err := r.DB.QueryRow(ctx,
		`SELECT id, company_id, name, phone, email, address, gst_no, created_at
         FROM customers WHERE id = $1`, id,
	).Scan(&c.ID, &c.CompanyID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.GSTNo, &c.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

func (r *CustomerRepository) scanCustomers(ctx context.Context, query string, args ...interface{}) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.GSTNo, &c.CreatedAt, &c.CompanyName); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	return r.scanCustomers(ctx,
		`SELECT c.id, c.company_id, c.name, c.phone, c.email, c.address, c.gst_no, c.created_at,
	            comp.name AS company_name
         FROM customers c JOIN companies comp ON c.company_id = comp.id
         ORDER BY c.name`)
}

func (r *CustomerRepository) ListByCompany(ctx context.Context, companyID int) ([]*models.Customer, error) {
	return r.scanCustomers(ctx,
		`SELECT c.id, c.company_id, c.name, c.phone, c.email, c.address, c.gst_no, c.created_at,
	            comp.name AS company_name
         FROM customers c JOIN companies comp ON c.company_id = comp.id
         WHERE c.company_id = $1 ORDER BY c.name`, companyID)
}

func (r *CustomerRepository) Update(ctx context.Context, id int, c *models.Customer) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE customers SET name=$1, phone=$2, email=$3, address=$4, gst_no=$5
         WHERE id=$6`,
		c.Name, c.Phone, c.Email, c.Address, c.GSTNo, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
