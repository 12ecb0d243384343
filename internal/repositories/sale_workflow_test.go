package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"bookstore-backend/internal/database"
	"bookstore-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by TEST_DATABASE_URL and
// applies migrations. Tests using it are skipped when the variable is
// unset so the suite stays runnable without a database.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("set TEST_DATABASE_URL to run database tests")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.NewMigrator(pool).RunMigrations(context.Background()))
	return pool
}

// seedCompany creates a company and registers its cascade delete so
// each test leaves the database as it found it.
func seedCompany(t *testing.T, pool *pgxpool.Pool, name string) int {
	t.Helper()

	repo := NewCompanyRepository(pool)
	c := &models.Company{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	t.Cleanup(func() { repo.Delete(context.Background(), c.ID) })
	return c.ID
}

func seedBook(t *testing.T, pool *pgxpool.Pool, companyID, stock int) *models.Book {
	t.Helper()

	repo := NewBookRepository(pool)
	b := &models.Book{
		CompanyID:     companyID,
		Name:          "Godaan",
		Author:        "Premchand",
		Language:      "Hindi",
		SellingPrice:  100,
		StockQuantity: stock,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func seedCustomer(t *testing.T, pool *pgxpool.Pool, companyID int) *models.Customer {
	t.Helper()

	repo := NewCustomerRepository(pool)
	c := &models.Customer{CompanyID: companyID, Name: "Ravi Kumar"}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func bookStock(t *testing.T, pool *pgxpool.Pool, bookID int) int {
	t.Helper()

	b, err := NewBookRepository(pool).Get(context.Background(), bookID)
	require.NoError(t, err)
	return b.StockQuantity
}

func bookMovements(t *testing.T, pool *pgxpool.Pool, bookID int) []models.StockMovement {
	t.Helper()

	rows, err := NewStockMovementRepository(pool).ListByBook(context.Background(), bookID)
	require.NoError(t, err)

	movements := make([]models.StockMovement, 0, len(rows))
	for _, m := range rows {
		movements = append(movements, *m)
	}
	return movements
}

func TestSaleWorkflowCommitsHeaderItemsStockAndMovement(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	companyID := seedCompany(t, pool, "Akshara Books")
	book := seedBook(t, pool, companyID, 10)
	customer := seedCustomer(t, pool, companyID)

	repo := NewSaleRepository(pool)
	sale := &models.Sale{
		CompanyID:     companyID,
		CustomerID:    &customer.ID,
		SaleDate:      time.Now(),
		TotalAmount:   300,
		FinalAmount:   300,
		PaymentStatus: models.PaymentCompleted,
	}
	items := []models.SaleItem{
		{BookID: book.ID, Quantity: 3, PricePerUnit: 100, TotalPrice: 300},
	}

	require.NoError(t, repo.Create(ctx, sale, items))
	assert.Equal(t, FormatInvoiceNumber(companyID, 1), sale.InvoiceNo)
	assert.Equal(t, 7, bookStock(t, pool, book.ID))

	movements := bookMovements(t, pool, book.ID)
	require.Len(t, movements, 1)
	assert.Equal(t, models.MovementOut, movements[0].MovementType)
	assert.Equal(t, 3, movements[0].Quantity)
	assert.Equal(t, models.ReferenceSale, movements[0].ReferenceType)
	require.NotNil(t, movements[0].ReferenceID)
	assert.Equal(t, sale.ID, *movements[0].ReferenceID)

	details, err := repo.GetWithDetails(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, details.FinalAmount)
	assert.Equal(t, "Ravi Kumar", details.CustomerName)
	require.Len(t, details.Items, 1)
	assert.Equal(t, "Godaan", details.Items[0].BookName)
}

func TestSaleWorkflowRejectsInsufficientStockUnchanged(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	companyID := seedCompany(t, pool, "Akshara Books")
	book := seedBook(t, pool, companyID, 10)

	repo := NewSaleRepository(pool)
	sale := &models.Sale{
		CompanyID:     companyID,
		SaleDate:      time.Now(),
		TotalAmount:   2000,
		FinalAmount:   2000,
		PaymentStatus: models.PaymentCompleted,
	}
	items := []models.SaleItem{
		{BookID: book.ID, Quantity: 20, PricePerUnit: 100, TotalPrice: 2000},
	}

	err := repo.Create(ctx, sale, items)
	require.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 10, bookStock(t, pool, book.ID))
	assert.Empty(t, bookMovements(t, pool, book.ID))

	sales, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaleWorkflowRollsBackWholeCartOnLaterLineFailure(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	companyID := seedCompany(t, pool, "Akshara Books")
	book := seedBook(t, pool, companyID, 10)

	repo := NewSaleRepository(pool)
	sale := &models.Sale{
		CompanyID:     companyID,
		SaleDate:      time.Now(),
		TotalAmount:   500,
		FinalAmount:   500,
		PaymentStatus: models.PaymentCompleted,
	}
	items := []models.SaleItem{
		{BookID: book.ID, Quantity: 3, PricePerUnit: 100, TotalPrice: 300},
		{BookID: book.ID + 1000000, Quantity: 2, PricePerUnit: 100, TotalPrice: 200},
	}

	err := repo.Create(ctx, sale, items)
	require.Error(t, err)

	// The first line's decrement and movement must be rolled back too.
	assert.Equal(t, 10, bookStock(t, pool, book.ID))
	assert.Empty(t, bookMovements(t, pool, book.ID))

	sales, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestSaleWorkflowRejectsCustomerOfAnotherCompany(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	companyID := seedCompany(t, pool, "Akshara Books")
	otherCompanyID := seedCompany(t, pool, "Saraswati Pustak")
	book := seedBook(t, pool, companyID, 10)
	foreignCustomer := seedCustomer(t, pool, otherCompanyID)

	repo := NewSaleRepository(pool)
	sale := &models.Sale{
		CompanyID:     companyID,
		CustomerID:    &foreignCustomer.ID,
		SaleDate:      time.Now(),
		TotalAmount:   100,
		FinalAmount:   100,
		PaymentStatus: models.PaymentCompleted,
	}
	items := []models.SaleItem{
		{BookID: book.ID, Quantity: 1, PricePerUnit: 100, TotalPrice: 100},
	}

	err := repo.Create(ctx, sale, items)
	require.ErrorIs(t, err, ErrConstraint)

	assert.Equal(t, 10, bookStock(t, pool, book.ID))
	sales, err := repo.ListByCompany(ctx, companyID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestLedgerReconciliationAcrossWorkflows(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	companyID := seedCompany(t, pool, "Akshara Books")
	book := seedBook(t, pool, companyID, 0)
	bookRepo := NewBookRepository(pool)

	purchase := &models.Purchase{
		CompanyID:    companyID,
		BookID:       book.ID,
		SupplierName: "Rupa Distributors",
		Quantity:     5,
		PricePerUnit: 60,
		TotalAmount:  300,
		PurchaseDate: time.Now(),
	}
	require.NoError(t, NewPurchaseRepository(pool).Create(ctx, purchase))

	require.NoError(t, bookRepo.AdjustStock(ctx, book.ID, 4, "shelf recount"))
	require.NoError(t, bookRepo.AdjustStock(ctx, book.ID, -1, "billing correction"))

	sale := &models.Sale{
		CompanyID:     companyID,
		SaleDate:      time.Now(),
		TotalAmount:   200,
		FinalAmount:   200,
		PaymentStatus: models.PaymentCompleted,
	}
	items := []models.SaleItem{
		{BookID: book.ID, Quantity: 2, PricePerUnit: 100, TotalPrice: 200},
	}
	require.NoError(t, NewSaleRepository(pool).Create(ctx, sale, items))

	require.NoError(t, bookRepo.MarkDamaged(ctx, book.ID, 1, "water damage"))

	// 0 +5 +4 -1 -2 = 6; marking damage never touches stock_quantity.
	b, err := bookRepo.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, b.StockQuantity)
	assert.Equal(t, 1, b.DamagedQuantity)
	assert.Equal(t, 5, b.AvailableStock())

	movements := bookMovements(t, pool, book.ID)
	require.Len(t, movements, 5)
	assert.Equal(t, 6, models.NetStockChange(movements))
}
