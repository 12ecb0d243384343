package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"bookstore-backend/internal/models"
	"bookstore-backend/internal/services"
	"bookstore-backend/pkg/utils"
)

type PurchaseHandler struct {
	Service *services.PurchaseService
}

func NewPurchaseHandler(s *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{Service: s}
}

func (h *PurchaseHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	purchase, err := h.Service.RecordPurchase(context.Background(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	companyID, _ := strconv.Atoi(r.URL.Query().Get("company_id"))

	purchases, err := h.Service.ListPurchases(context.Background(), companyID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, purchases)
}

// LatestPrice returns the most recent purchase price for a book, used to
// pre-fill the purchase form.
func (h *PurchaseHandler) LatestPrice(w http.ResponseWriter, r *http.Request) {
	bookID, _ := strconv.Atoi(r.URL.Query().Get("book_id"))

	price, err := h.Service.LatestPrice(context.Background(), bookID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]float64{"price_per_unit": price})
}
