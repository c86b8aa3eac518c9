package domain

// SalesTransaction is the parent row of a multi-line sale. TotalAmount is
// derived from its items and must equal the sum of their subtotals.
type SalesTransaction struct {
	ID              int64  `db:"id" json:"id"`
	TransactionDate string `db:"transaction_date" json:"transaction_date"`
	TotalAmount     Money  `db:"total_amount" json:"total_amount"`
	CustomerID      *int64 `db:"customer_id" json:"customer_id"`
	CreatedAt       string `db:"created_at" json:"created_at"`
}

// SalesTransactionItem is one line of a sale. UnitPrice is the price at time
// of sale and may diverge from the product's current catalog price.
type SalesTransactionItem struct {
	ID            int64  `db:"id" json:"id"`
	TransactionID int64  `db:"transaction_id" json:"transaction_id"`
	ProductID     int64  `db:"product_id" json:"product_id"`
	Quantity      int64  `db:"quantity" json:"quantity"`
	UnitPrice     Money  `db:"unit_price" json:"unit_price"`
	Subtotal      Money  `db:"subtotal" json:"subtotal"`
	CreatedAt     string `db:"created_at" json:"created_at"`
}
