package database

import (
	"context"
	"fmt"
)

const salesTableSQL = `
CREATE TABLE IF NOT EXISTS %s (
    id BIGINT PRIMARY KEY AUTO_INCREMENT,
    sale_date DATE NOT NULL,
    region VARCHAR(32) NOT NULL,
    person VARCHAR(64) NOT NULL,
    product VARCHAR(64) NOT NULL,
    category VARCHAR(64) NOT NULL,
    quantity INT NOT NULL,
    unit_price BIGINT NOT NULL,
    total_sales BIGINT NOT NULL,
    day_of_week VARCHAR(16) NOT NULL,
    month TINYINT NOT NULL,
    quarter TINYINT NOT NULL,
    INDEX idx_sale_date (sale_date),
    INDEX idx_region (region),
    INDEX idx_product (product)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// SetupSalesSchema creates the sales table if it does not exist
func (db *DB) SetupSalesSchema(ctx context.Context, table string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(salesTableSQL, table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// DropSalesSchema drops the sales table
func (db *DB) DropSalesSchema(ctx context.Context, table string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// CountSales returns the number of rows in the sales table
func (db *DB) CountSales(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}
