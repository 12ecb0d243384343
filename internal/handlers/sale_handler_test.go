package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestHandlersRejectMalformedID(t *testing.T) {
	saleHandler := &SaleHandler{}
	bookHandler := &BookHandler{}
	companyHandler := &CompanyHandler{}
	customerHandler := &CustomerHandler{}

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"get sale", saleHandler.GetSale},
		{"download invoice", saleHandler.DownloadInvoice},
		{"get book", bookHandler.GetBook},
		{"delete book", bookHandler.DeleteBook},
		{"get company", companyHandler.GetCompany},
		{"get customer", customerHandler.GetCustomer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "not-a-number"})
			rec := httptest.NewRecorder()

			tc.handler(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
