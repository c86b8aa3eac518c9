package orders

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"pharmacare/m/domain"
)

// Service runs the two multi-row order workflows against the store.
type Service struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewService(db *sqlx.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

type CreateSalesTransactionInput struct {
	CustomerID *int64          `json:"customer_id"`
	Items      []SaleItemInput `json:"items"`
}

func validateSaleInput(in CreateSalesTransactionInput) error {
	if len(in.Items) == 0 {
		return invalidInput("at least one item is required")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return invalidInput("quantity must be positive for product %d", it.ProductID)
		}
		if it.UnitPrice.Sign() <= 0 {
			return invalidInput("unit_price must be positive for product %d", it.ProductID)
		}
	}
	return nil
}

// CreateSalesTransaction persists a sale and its line items and decrements
// stock for every line, all in one transaction. Validation reads run inside
// the same transaction as the writes, and each decrement is guarded on the
// remaining stock so a concurrent sale can never drive it negative.
func (s *Service) CreateSalesTransaction(ctx context.Context, in CreateSalesTransactionInput) (*domain.SalesTransaction, error) {
	if err := validateSaleInput(in); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := validateSaleReferences(tx, in.Items); err != nil {
		return nil, err
	}

	lines, total := buildSaleTotals(in.Items)

	var transactionID int64
	err = tx.QueryRowx(`INSERT INTO sales_transactions (total_amount, customer_id) VALUES (?, ?) RETURNING id`,
		total, in.CustomerID).Scan(&transactionID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		_, err := tx.Exec(`INSERT INTO sales_transaction_items (transaction_id, product_id, quantity, unit_price, subtotal) VALUES (?, ?, ?, ?, ?)`,
			transactionID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal)
		if err != nil {
			return nil, err
		}

		res, err := tx.Exec(`UPDATE products SET current_stock = current_stock - ? WHERE id = ? AND current_stock >= ?`,
			line.Quantity, line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			// Stock moved between the validating read and the decrement.
			// Surface the same error the validator would have produced.
			p, ok, err := fetchProduct(tx, line.ProductID)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, saleProductNotFound(line.ProductID)
			}
			return nil, &InsufficientStockError{ProductName: p.Name, Available: p.CurrentStock, Required: line.Quantity}
		}
	}

	var created domain.SalesTransaction
	if err := tx.Get(&created, `SELECT id, transaction_date, total_amount, customer_id, created_at FROM sales_transactions WHERE id = ?`, transactionID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("sales transaction created",
		zap.Int64("transaction_id", transactionID),
		zap.Int("items", len(lines)),
		zap.String("total_amount", total.String()),
	)
	return &created, nil
}
