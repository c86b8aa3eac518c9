package domain

type Prescription struct {
	ID               int64  `db:"id" json:"id"`
	PatientName      string `db:"patient_name" json:"patient_name"`
	DoctorName       string `db:"doctor_name" json:"doctor_name"`
	PrescriptionDate string `db:"prescription_date" json:"prescription_date"`
	CreatedAt        string `db:"created_at" json:"created_at"`
}

type PrescriptionMedicine struct {
	ID             int64   `db:"id" json:"id"`
	PrescriptionID int64   `db:"prescription_id" json:"prescription_id"`
	ProductID      int64   `db:"product_id" json:"product_id"`
	Dosage         string  `db:"dosage" json:"dosage"`
	Instructions   *string `db:"instructions" json:"instructions"`
	CreatedAt      string  `db:"created_at" json:"created_at"`
}
