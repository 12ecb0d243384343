package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bookstore-backend/internal/models"
	"bookstore-backend/internal/services"
	"bookstore-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type SaleHandler struct {
	Service *services.SaleService
	Reports *services.ReportService
}

func NewSaleHandler(s *services.SaleService, reports *services.ReportService) *SaleHandler {
	return &SaleHandler{Service: s, Reports: reports}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.CreateSale(context.Background(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.GetSale(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))

	sales, err := h.Service.ListSales(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, sales)
}

// DownloadInvoice renders the sale as a PDF attachment
func (h *SaleHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := h.Service.GetSale(context.Background(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	pdfData, err := h.Reports.GenerateInvoicePDF(sale)
	if err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, sale.InvoiceNo))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfData)))
	w.Write(pdfData)
}
