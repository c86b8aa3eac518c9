package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"pharmacare/m/domain"
)

// LoadProducts ingests a product catalog CSV into the products table.
// Expected columns: name, current_stock, selling_price, purchase_price,
// expiration_date. Rows whose name already exists are skipped.
func LoadProducts(db *sqlx.DB, log *zap.Logger, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Warn("unable to open product catalog", zap.String("path", csvPath), zap.Error(err))
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Warn("unable to read product catalog header", zap.Error(err))
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Warn("unable to start product seed transaction", zap.Error(err))
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("unable to read product row", zap.Error(err))
			continue
		}
		if len(record) < 5 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil || stock < 0 {
			log.Warn("skipping product with invalid stock", zap.String("name", name))
			continue
		}
		selling, err := domain.MoneyFromString(strings.TrimSpace(record[2]))
		if err != nil {
			log.Warn("skipping product with invalid selling price", zap.String("name", name))
			continue
		}
		purchase, err := domain.MoneyFromString(strings.TrimSpace(record[3]))
		if err != nil {
			log.Warn("skipping product with invalid purchase price", zap.String("name", name))
			continue
		}
		expiration := strings.TrimSpace(record[4])

		var exists bool
		if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM products WHERE name = ?)`, name); err != nil {
			log.Warn("unable to check product", zap.String("name", name), zap.Error(err))
			continue
		}
		if exists {
			continue
		}

		if _, err := tx.Exec(`INSERT INTO products (name, current_stock, selling_price, purchase_price, expiration_date) VALUES (?, ?, ?, ?, ?)`,
			name, stock, selling, purchase, expiration); err != nil {
			log.Warn("unable to insert product", zap.String("name", name), zap.Error(err))
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Warn("unable to commit product seed", zap.Error(err))
	} else {
		log.Info("seeded product catalog", zap.Int("rows", rows))
	}
}
