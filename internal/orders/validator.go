package orders

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"pharmacare/m/domain"
)

// fetchProduct reads one product row inside the caller's transaction so the
// stock it reports stays consistent with the writes that follow.
func fetchProduct(tx *sqlx.Tx, id int64) (*domain.Product, bool, error) {
	var p domain.Product
	err := tx.Get(&p, `SELECT id, name, current_stock, selling_price, purchase_price, expiration_date, created_at FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

// validateSaleReferences checks, line by line in input order, that every
// referenced product exists and has enough stock. Fails on the first
// violation.
func validateSaleReferences(tx *sqlx.Tx, items []SaleItemInput) error {
	for _, it := range items {
		p, ok, err := fetchProduct(tx, it.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return saleProductNotFound(it.ProductID)
		}
		if p.CurrentStock < it.Quantity {
			return &InsufficientStockError{ProductName: p.Name, Available: p.CurrentStock, Required: it.Quantity}
		}
	}
	return nil
}

// validatePrescriptionReferences checks existence only; prescriptions do not
// consume stock.
func validatePrescriptionReferences(tx *sqlx.Tx, medicines []PrescriptionMedicineInput) error {
	for _, m := range medicines {
		_, ok, err := fetchProduct(tx, m.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return prescriptionProductNotFound(m.ProductID)
		}
	}
	return nil
}
