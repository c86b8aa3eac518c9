package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pharmacare/m/domain"
	"pharmacare/m/internal/orders"
)

func (h *Handler) createPrescription(w http.ResponseWriter, r *http.Request) {
	var req orders.CreatePrescriptionInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.orders.CreatePrescription(r.Context(), req)
	if err != nil {
		h.respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) listPrescriptions(w http.ResponseWriter, r *http.Request) {
	var (
		clauses []string
		args    []any
	)

	if patient := strings.TrimSpace(r.URL.Query().Get("patient_name")); patient != "" {
		clauses = append(clauses, "patient_name LIKE ?")
		args = append(args, "%"+patient+"%")
	}
	if doctor := strings.TrimSpace(r.URL.Query().Get("doctor_name")); doctor != "" {
		clauses = append(clauses, "doctor_name LIKE ?")
		args = append(args, "%"+doctor+"%")
	}
	if start := strings.TrimSpace(r.URL.Query().Get("start_date")); start != "" {
		if _, err := time.Parse("2006-01-02", start); err != nil {
			respondError(w, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
			return
		}
		clauses = append(clauses, "prescription_date >= ?")
		args = append(args, start)
	}
	if end := strings.TrimSpace(r.URL.Query().Get("end_date")); end != "" {
		if _, err := time.Parse("2006-01-02", end); err != nil {
			respondError(w, http.StatusBadRequest, "end_date must be in YYYY-MM-DD format")
			return
		}
		clauses = append(clauses, "prescription_date <= ?")
		args = append(args, end)
	}

	query := `SELECT id, patient_name, doctor_name, prescription_date, created_at FROM prescriptions`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY prescription_date DESC"

	prescriptions := []domain.Prescription{}
	if err := h.db.Select(&prescriptions, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list prescriptions")
		return
	}
	respondJSON(w, http.StatusOK, prescriptions)
}

type prescriptionDetail struct {
	domain.Prescription
	Medicines []domain.PrescriptionMedicine `json:"medicines"`
}

func (h *Handler) getPrescription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid prescription id")
		return
	}

	var prescription domain.Prescription
	err = h.db.Get(&prescription, `SELECT id, patient_name, doctor_name, prescription_date, created_at FROM prescriptions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "prescription not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load prescription")
		return
	}

	medicines := []domain.PrescriptionMedicine{}
	if err := h.db.Select(&medicines, `SELECT id, prescription_id, product_id, dosage, instructions, created_at FROM prescription_medicines WHERE prescription_id = ? ORDER BY id ASC`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load prescription medicines")
		return
	}

	respondJSON(w, http.StatusOK, prescriptionDetail{Prescription: prescription, Medicines: medicines})
}

type prescriptionUpdateRequest struct {
	PatientName      *string `json:"patient_name"`
	DoctorName       *string `json:"doctor_name"`
	PrescriptionDate *string `json:"prescription_date"`
}

func (h *Handler) updatePrescription(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid prescription id")
		return
	}

	var exists bool
	if err := h.db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM prescriptions WHERE id = ?)`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load prescription")
		return
	}
	if !exists {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Prescription with id %d not found", id))
		return
	}

	var req prescriptionUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		sets []string
		args []any
	)
	if req.PatientName != nil {
		if strings.TrimSpace(*req.PatientName) == "" {
			respondError(w, http.StatusBadRequest, "patient_name must not be empty")
			return
		}
		sets = append(sets, "patient_name = ?")
		args = append(args, *req.PatientName)
	}
	if req.DoctorName != nil {
		if strings.TrimSpace(*req.DoctorName) == "" {
			respondError(w, http.StatusBadRequest, "doctor_name must not be empty")
			return
		}
		sets = append(sets, "doctor_name = ?")
		args = append(args, *req.DoctorName)
	}
	if req.PrescriptionDate != nil {
		if _, err := time.Parse("2006-01-02", *req.PrescriptionDate); err != nil {
			respondError(w, http.StatusBadRequest, "prescription_date must be in YYYY-MM-DD format")
			return
		}
		sets = append(sets, "prescription_date = ?")
		args = append(args, *req.PrescriptionDate)
	}

	if len(sets) > 0 {
		args = append(args, id)
		if _, err := h.db.Exec(`UPDATE prescriptions SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
			respondError(w, http.StatusInternalServerError, "unable to update prescription")
			return
		}
	}

	var prescription domain.Prescription
	if err := h.db.Get(&prescription, `SELECT id, patient_name, doctor_name, prescription_date, created_at FROM prescriptions WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load prescription")
		return
	}
	respondJSON(w, http.StatusOK, prescription)
}
