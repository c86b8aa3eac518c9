package api

import (
	"fmt"
	"net/http"
	"testing"

	"pharmacare/m/domain"
)

func TestCreateSalesTransactionEndpoint(t *testing.T) {
	h, db := newTestHandler(t)
	productID := insertTestProduct(t, db, "Paracetamol", 20, "12.50", "2030-12-31")

	rec := doRequest(t, h, http.MethodPost, "/sales", map[string]any{
		"customer_id": nil,
		"items": []map[string]any{
			{"product_id": productID, "quantity": 7, "unit_price": 12.5},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created domain.SalesTransaction
	decodeBody(t, rec, &created)
	if got := created.TotalAmount.String(); got != "87.50" {
		t.Errorf("total_amount = %s, want 87.50", got)
	}

	// The detail view returns the persisted items.
	rec = doRequest(t, h, http.MethodGet, fmt.Sprintf("/sales/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("detail status = %d", rec.Code)
	}
	var detail struct {
		domain.SalesTransaction
		Items []domain.SalesTransactionItem `json:"items"`
	}
	decodeBody(t, rec, &detail)
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 7 {
		t.Errorf("detail items = %+v", detail.Items)
	}
}

func TestCreateSalesTransactionNormalizesPricePrecision(t *testing.T) {
	h, db := newTestHandler(t)
	productID := insertTestProduct(t, db, "Loratadine", 10, "1.00", "2030-12-31")

	// Prices arrive rounded to two decimals, so the stored total always
	// equals the sum of the stored subtotals.
	rec := doRequest(t, h, http.MethodPost, "/sales", map[string]any{
		"customer_id": nil,
		"items": []map[string]any{
			{"product_id": productID, "quantity": 1, "unit_price": "1.005"},
			{"product_id": productID, "quantity": 1, "unit_price": "1.005"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created domain.SalesTransaction
	decodeBody(t, rec, &created)

	var total string
	if err := db.Get(&total, `SELECT total_amount FROM sales_transactions WHERE id = ?`, created.ID); err != nil {
		t.Fatalf("read total: %v", err)
	}
	var subtotals []string
	if err := db.Select(&subtotals, `SELECT subtotal FROM sales_transaction_items WHERE transaction_id = ?`, created.ID); err != nil {
		t.Fatalf("read subtotals: %v", err)
	}
	if total != "2.02" {
		t.Errorf("total_amount = %s, want 2.02", total)
	}
	if len(subtotals) != 2 || subtotals[0] != "1.01" || subtotals[1] != "1.01" {
		t.Errorf("subtotals = %v, want [1.01 1.01]", subtotals)
	}
}

func TestCreateSalesTransactionEndpointErrors(t *testing.T) {
	h, db := newTestHandler(t)
	productID := insertTestProduct(t, db, "Omeprazole", 2, "4.00", "2030-12-31")

	rec := doRequest(t, h, http.MethodPost, "/sales", map[string]any{
		"customer_id": nil,
		"items": []map[string]any{
			{"product_id": productID, "quantity": 5, "unit_price": 4},
		},
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	want := "Insufficient stock for product Omeprazole. Available: 2, Required: 5"
	if got := errorMessage(t, rec); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	rec = doRequest(t, h, http.MethodPost, "/sales", map[string]any{
		"customer_id": nil,
		"items": []map[string]any{
			{"product_id": 999, "quantity": 1, "unit_price": 1},
		},
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := errorMessage(t, rec); got != "Product with id 999 not found" {
		t.Errorf("message = %q", got)
	}

	rec = doRequest(t, h, http.MethodPost, "/sales", map[string]any{
		"customer_id": nil,
		"items":       []map[string]any{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListSalesTransactions(t *testing.T) {
	h, db := newTestHandler(t)
	productID := insertTestProduct(t, db, "Cetirizine", 50, "3.00", "2030-12-31")

	for i := 0; i < 2; i++ {
		rec := doRequest(t, h, http.MethodPost, "/sales", map[string]any{
			"customer_id": nil,
			"items": []map[string]any{
				{"product_id": productID, "quantity": 1, "unit_price": 3},
			},
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d", rec.Code)
		}
	}

	rec := doRequest(t, h, http.MethodGet, "/sales", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var transactions []domain.SalesTransaction
	decodeBody(t, rec, &transactions)
	if len(transactions) != 2 {
		t.Errorf("transactions = %d, want 2", len(transactions))
	}

	rec = doRequest(t, h, http.MethodGet, "/sales/9999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing transaction status = %d, want 404", rec.Code)
	}
}
