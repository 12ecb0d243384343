package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"bookstore-backend/internal/services"
	"bookstore-backend/internal/timeutil"
	"bookstore-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))

	summary, err := h.Service.GetDashboard(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) StockCSV(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))

	data, err := h.Service.GenerateStockCSV(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("stock_report_%s.csv", timeutil.FormatIST(timeutil.Now(), timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}

func (h *ReportHandler) SalesCSV(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))

	data, err := h.Service.GenerateSalesCSV(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("sales_report_%s.csv", timeutil.FormatIST(timeutil.Now(), timeutil.DateLayout))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
}

// InvoicesZip bundles every invoice of a company into one download
func (h *ReportHandler) InvoicesZip(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))
	if companyID <= 0 {
		http.Error(w, "company_id parameter is required", http.StatusBadRequest)
		return
	}

	pdfs, err := h.Service.GenerateBulkInvoicePDFs(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(pdfs) == 0 {
		http.Error(w, "no invoices found", http.StatusNotFound)
		return
	}

	zipData, err := h.Service.CreateInvoiceZip(pdfs)
	if err != nil {
		http.Error(w, "Failed to create ZIP", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(zipData)))
	w.Write(zipData)
}
