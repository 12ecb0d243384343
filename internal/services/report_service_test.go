package services

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"bookstore-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSaleDetails() *models.SaleWithDetails {
	customerID := 3
	d := &models.SaleWithDetails{
		CustomerPhone:   "9876543210",
		CustomerAddress: "12 Market Road",
		Company: models.Company{
			ID:      1,
			Name:    "Akshara Books",
			Address: "45 College Street, Kolkata",
			Phone:   "+91 33 1234 5678",
			GSTNo:   "19ABCDE1234F1Z5",
		},
		Items: []models.SaleItem{
			{BookID: 1, BookName: "Midnight's Children", BookAuthor: "Salman Rushdie", Quantity: 2, PricePerUnit: 450, TotalPrice: 900},
			{BookID: 2, BookName: "The God of Small Things", BookAuthor: "Arundhati Roy", Quantity: 1, PricePerUnit: 350, TotalPrice: 350},
		},
	}
	d.ID = 10
	d.CompanyID = 1
	d.CustomerID = &customerID
	d.CustomerName = "Ravi Kumar"
	d.InvoiceNo = "INV-001-000010"
	d.SaleDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	d.TotalAmount = 1250
	d.Discount = 50
	d.TaxAmount = 60
	d.FinalAmount = 1260
	d.PaymentStatus = models.PaymentCompleted
	return d
}

func TestGenerateInvoicePDF(t *testing.T) {
	svc := NewReportService(nil, nil, nil)

	data, err := svc.GenerateInvoicePDF(sampleSaleDetails())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestGenerateInvoicePDFWalkIn(t *testing.T) {
	svc := NewReportService(nil, nil, nil)

	d := sampleSaleDetails()
	d.CustomerID = nil
	d.CustomerName = ""

	data, err := svc.GenerateInvoicePDF(d)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestCreateInvoiceZip(t *testing.T) {
	svc := NewReportService(nil, nil, nil)

	pdfs := map[string][]byte{
		"INV-001-000001": []byte("%PDF-1.4 first"),
		"INV-001-000002": []byte("%PDF-1.4 second"),
	}

	data, err := svc.CreateInvoiceZip(pdfs)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	names := []string{zr.File[0].Name, zr.File[1].Name}
	assert.Contains(t, names, "INV-001-000001.pdf")
	assert.Contains(t, names, "INV-001-000002.pdf")
}

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))

	long := "गोदान एक प्रसिद्ध हिंदी उपन्यास है जो किसान जीवन का चित्रण करता है"
	got := truncate(long, 40)
	runes := []rune(got)
	assert.Len(t, runes, 40)
	assert.Equal(t, "...", string(runes[37:]))
	assert.Equal(t, []rune(long)[:37], runes[:37])
}

func TestGenerateInvoicePDFDevanagariTitles(t *testing.T) {
	svc := NewReportService(nil, nil, nil)

	d := sampleSaleDetails()
	d.Items = []models.SaleItem{
		{BookID: 1, BookName: "गोदान एक प्रसिद्ध हिंदी उपन्यास है जो किसान जीवन का चित्रण करता है",
			BookAuthor: "मुंशी प्रेमचंद जी महाराज जी", Quantity: 1, PricePerUnit: 250, TotalPrice: 250},
	}

	data, err := svc.GenerateInvoicePDF(d)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
