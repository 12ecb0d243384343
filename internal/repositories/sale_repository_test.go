package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-001-000001", FormatInvoiceNumber(1, 1))
	assert.Equal(t, "INV-042-000137", FormatInvoiceNumber(42, 137))
	assert.Equal(t, "INV-1000-1000000", FormatInvoiceNumber(1000, 1000000))
}
