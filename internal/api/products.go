package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pharmacare/m/domain"
)

type productRequest struct {
	Name           *string       `json:"name"`
	CurrentStock   *int64        `json:"current_stock"`
	SellingPrice   *domain.Money `json:"selling_price"`
	PurchasePrice  *domain.Money `json:"purchase_price"`
	ExpirationDate *string       `json:"expiration_date"`
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.CurrentStock == nil || *req.CurrentStock < 0 {
		respondError(w, http.StatusBadRequest, "current_stock must be zero or greater")
		return
	}
	if req.SellingPrice == nil || req.SellingPrice.Sign() <= 0 {
		respondError(w, http.StatusBadRequest, "selling_price must be positive")
		return
	}
	if req.PurchasePrice == nil || req.PurchasePrice.Sign() <= 0 {
		respondError(w, http.StatusBadRequest, "purchase_price must be positive")
		return
	}
	if req.ExpirationDate == nil {
		respondError(w, http.StatusBadRequest, "expiration_date is required")
		return
	}
	expiration, err := time.Parse("2006-01-02", *req.ExpirationDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "expiration_date must be in YYYY-MM-DD format")
		return
	}
	today, _ := time.Parse("2006-01-02", time.Now().UTC().Format("2006-01-02"))
	if expiration.Before(today) {
		respondError(w, http.StatusBadRequest, "Expiration date must be in the future")
		return
	}

	var id int64
	err = h.db.QueryRowx(`INSERT INTO products (name, current_stock, selling_price, purchase_price, expiration_date) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		*req.Name, *req.CurrentStock, *req.SellingPrice, *req.PurchasePrice, *req.ExpirationDate).Scan(&id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create product")
		return
	}

	var product domain.Product
	if err := h.db.Get(&product, `SELECT id, name, current_stock, selling_price, purchase_price, expiration_date, created_at FROM products WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load product")
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	var (
		clauses []string
		args    []any
	)

	if r.URL.Query().Get("include_expired") != "true" {
		clauses = append(clauses, "expiration_date >= ?")
		args = append(args, time.Now().UTC().Format("2006-01-02"))
	}

	if threshold := strings.TrimSpace(r.URL.Query().Get("low_stock_threshold")); threshold != "" {
		n, err := strconv.ParseInt(threshold, 10, 64)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "low_stock_threshold must be a non-negative integer")
			return
		}
		clauses = append(clauses, "current_stock < ?")
		args = append(args, n)
	}

	query := `SELECT id, name, current_stock, selling_price, purchase_price, expiration_date, created_at FROM products`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name ASC"

	products := []domain.Product{}
	if err := h.db.Select(&products, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM products WHERE id = ?)`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load product")
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Product with id %d not found", id))
		return
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		sets []string
		args []any
	)
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			respondError(w, http.StatusBadRequest, "name must not be empty")
			return
		}
		sets = append(sets, "name = ?")
		args = append(args, *req.Name)
	}
	if req.CurrentStock != nil {
		if *req.CurrentStock < 0 {
			respondError(w, http.StatusBadRequest, "current_stock must be zero or greater")
			return
		}
		sets = append(sets, "current_stock = ?")
		args = append(args, *req.CurrentStock)
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.Sign() <= 0 {
			respondError(w, http.StatusBadRequest, "selling_price must be positive")
			return
		}
		sets = append(sets, "selling_price = ?")
		args = append(args, *req.SellingPrice)
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.Sign() <= 0 {
			respondError(w, http.StatusBadRequest, "purchase_price must be positive")
			return
		}
		sets = append(sets, "purchase_price = ?")
		args = append(args, *req.PurchasePrice)
	}
	if req.ExpirationDate != nil {
		if _, err := time.Parse("2006-01-02", *req.ExpirationDate); err != nil {
			respondError(w, http.StatusBadRequest, "expiration_date must be in YYYY-MM-DD format")
			return
		}
		sets = append(sets, "expiration_date = ?")
		args = append(args, *req.ExpirationDate)
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := h.db.Exec(`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
			respondError(w, http.StatusInternalServerError, "unable to update product")
			return
		}
	}

	var product domain.Product
	err = h.db.Get(&product, `SELECT id, name, current_stock, selling_price, purchase_price, expiration_date, created_at FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Product with id %d not found", id))
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}
