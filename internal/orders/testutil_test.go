package orders

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"pharmacare/m/domain"
	"pharmacare/m/internal/database"
	"pharmacare/m/internal/migrations"
)

func newTestService(t *testing.T) (*Service, *sqlx.DB) {
	t.Helper()
	db, err := database.Connect(":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, zap.NewNop()), db
}

func insertProduct(t *testing.T, db *sqlx.DB, name string, stock int64, sellingPrice string) int64 {
	t.Helper()
	var id int64
	err := db.QueryRowx(`INSERT INTO products (name, current_stock, selling_price, purchase_price, expiration_date) VALUES (?, ?, ?, ?, ?) RETURNING id`,
		name, stock, sellingPrice, "1.00", "2030-12-31").Scan(&id)
	if err != nil {
		t.Fatalf("insert product %s: %v", name, err)
	}
	return id
}

func productStock(t *testing.T, db *sqlx.DB, id int64) int64 {
	t.Helper()
	var stock int64
	if err := db.Get(&stock, `SELECT current_stock FROM products WHERE id = ?`, id); err != nil {
		t.Fatalf("read stock for product %d: %v", id, err)
	}
	return stock
}

func countRows(t *testing.T, db *sqlx.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func money(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q: %v", s, err)
	}
	return m
}
