package api

import (
	"database/sql"
	"errors"
	"net/http"

	"pharmacare/m/domain"
	"pharmacare/m/internal/orders"
)

func (h *Handler) createSalesTransaction(w http.ResponseWriter, r *http.Request) {
	var req orders.CreateSalesTransactionInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.orders.CreateSalesTransaction(r.Context(), req)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) listSalesTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := []domain.SalesTransaction{}
	if err := h.db.Select(&transactions, `SELECT id, transaction_date, total_amount, customer_id, created_at FROM sales_transactions ORDER BY transaction_date DESC, id DESC`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list sales transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}

type salesTransactionDetail struct {
	domain.SalesTransaction
	Items []domain.SalesTransactionItem `json:"items"`
}

func (h *Handler) getSalesTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var transaction domain.SalesTransaction
	err = h.db.Get(&transaction, `SELECT id, transaction_date, total_amount, customer_id, created_at FROM sales_transactions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "sales transaction not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load sales transaction")
		return
	}

	items := []domain.SalesTransactionItem{}
	if err := h.db.Select(&items, `SELECT id, transaction_id, product_id, quantity, unit_price, subtotal, created_at FROM sales_transaction_items WHERE transaction_id = ? ORDER BY id ASC`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load sales transaction items")
		return
	}

	respondJSON(w, http.StatusOK, salesTransactionDetail{SalesTransaction: transaction, Items: items})
}
