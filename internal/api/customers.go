package api

import (
	"fmt"
	"net/http"
	"strings"

	"pharmacare/m/domain"
)

type contactRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (c contactRequest) validEmail() bool {
	return c.Email == nil || strings.TrimSpace(*c.Email) == "" || strings.Contains(*c.Email, "@")
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !req.validEmail() {
		respondError(w, http.StatusBadRequest, "email is invalid")
		return
	}

	var id int64
	err := h.db.QueryRowx(`INSERT INTO customers (name, phone, email, address) VALUES (?, ?, ?, ?) RETURNING id`,
		*req.Name, nullIfEmpty(req.Phone), nullIfEmpty(req.Email), nullIfEmpty(req.Address)).Scan(&id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create customer")
		return
	}

	var customer domain.Customer
	if err := h.db.Get(&customer, `SELECT id, name, phone, email, address, created_at FROM customers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load customer")
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers := []domain.Customer{}
	if err := h.db.Select(&customers, `SELECT id, name, phone, email, address, created_at FROM customers ORDER BY name ASC`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = ?)`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load customer")
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Customer with id %d not found", id))
		return
	}

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.validEmail() {
		respondError(w, http.StatusBadRequest, "email is invalid")
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
	if req.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, nullIfEmpty(req.Phone))
	}
	if req.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, nullIfEmpty(req.Email))
	}
	if req.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, nullIfEmpty(req.Address))
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := h.db.Exec(`UPDATE customers SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
			respondError(w, http.StatusInternalServerError, "unable to update customer")
			return
		}
	}

	var customer domain.Customer
	if err := h.db.Get(&customer, `SELECT id, name, phone, email, address, created_at FROM customers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load customer")
		return
	}
	respondJSON(w, http.StatusOK, customer)
}
