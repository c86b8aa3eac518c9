package api

import (
	"fmt"
	"net/http"
	"strings"

	"pharmacare/m/domain"
)

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
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
	err := h.db.QueryRowx(`INSERT INTO suppliers (name, phone, email, address) VALUES (?, ?, ?, ?) RETURNING id`,
		*req.Name, nullIfEmpty(req.Phone), nullIfEmpty(req.Email), nullIfEmpty(req.Address)).Scan(&id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create supplier")
		return
	}

	var supplier domain.Supplier
	if err := h.db.Get(&supplier, `SELECT id, name, phone, email, address, created_at FROM suppliers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load supplier")
		return
	}
	respondJSON(w, http.StatusCreated, supplier)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers := []domain.Supplier{}
	if err := h.db.Select(&suppliers, `SELECT id, name, phone, email, address, created_at FROM suppliers ORDER BY name ASC`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list suppliers")
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}

	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id = ?)`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load supplier")
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Supplier with id %d not found", id))
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
		if _, err := h.db.Exec(`UPDATE suppliers SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
			respondError(w, http.StatusInternalServerError, "unable to update supplier")
			return
		}
	}

	var supplier domain.Supplier
	if err := h.db.Get(&supplier, `SELECT id, name, phone, email, address, created_at FROM suppliers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load supplier")
		return
	}
	respondJSON(w, http.StatusOK, supplier)
}
