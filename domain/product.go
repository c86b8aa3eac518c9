package domain

type Product struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	CurrentStock   int64  `db:"current_stock" json:"current_stock"`
	SellingPrice   Money  `db:"selling_price" json:"selling_price"`
	PurchasePrice  Money  `db:"purchase_price" json:"purchase_price"`
	ExpirationDate string `db:"expiration_date" json:"expiration_date"`
	CreatedAt      string `db:"created_at" json:"created_at"`
}
