package orders

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharmacare/m/domain"
)

type PrescriptionMedicineInput struct {
	ProductID    int64   `json:"product_id"`
	Dosage       string  `json:"dosage"`
	Instructions *string `json:"instructions"`
}

type CreatePrescriptionInput struct {
	PatientName      string                      `json:"patient_name"`
	DoctorName       string                      `json:"doctor_name"`
	PrescriptionDate string                      `json:"prescription_date"`
	Medicines        []PrescriptionMedicineInput `json:"medicines"`
}

func validatePrescriptionInput(in CreatePrescriptionInput) error {
	if strings.TrimSpace(in.PatientName) == "" {
		return invalidInput("patient_name is required")
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		return invalidInput("doctor_name is required")
	}
	if _, err := time.Parse("2006-01-02", in.PrescriptionDate); err != nil {
		return invalidInput("prescription_date must be in YYYY-MM-DD format")
	}
	if len(in.Medicines) == 0 {
		return invalidInput("at least one medicine is required")
	}
	for _, m := range in.Medicines {
		if strings.TrimSpace(m.Dosage) == "" {
			return invalidInput("dosage is required for product %d", m.ProductID)
		}
	}
	return nil
}

// CreatePrescription persists a prescription and its medicine lines in one
// transaction. Referenced products are validated for existence inside the
// same transaction; prescriptions never touch stock.
func (s *Service) CreatePrescription(ctx context.Context, in CreatePrescriptionInput) (*domain.Prescription, error) {
	if err := validatePrescriptionInput(in); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := validatePrescriptionReferences(tx, in.Medicines); err != nil {
		return nil, err
	}

	var prescriptionID int64
	err = tx.QueryRowx(`INSERT INTO prescriptions (patient_name, doctor_name, prescription_date) VALUES (?, ?, ?) RETURNING id`,
		in.PatientName, in.DoctorName, in.PrescriptionDate).Scan(&prescriptionID)
	if err != nil {
		return nil, err
	}

	for _, m := range in.Medicines {
		_, err := tx.Exec(`INSERT INTO prescription_medicines (prescription_id, product_id, dosage, instructions) VALUES (?, ?, ?, ?)`,
			prescriptionID, m.ProductID, m.Dosage, m.Instructions)
		if err != nil {
			return nil, err
		}
	}

	var created domain.Prescription
	if err := tx.Get(&created, `SELECT id, patient_name, doctor_name, prescription_date, created_at FROM prescriptions WHERE id = ?`, prescriptionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("prescription created",
		zap.Int64("prescription_id", prescriptionID),
		zap.Int("medicines", len(in.Medicines)),
	)
	return &created, nil
}
