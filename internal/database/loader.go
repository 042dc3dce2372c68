package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/matthieukhl/salesgen/internal/models"
)

var salesColumns = []string{
	"sale_date", "region", "person", "product", "category",
	"quantity", "unit_price", "total_sales", "day_of_week", "month", "quarter",
}

// SalesLoader inserts records in multi-row batches
type SalesLoader struct {
	db        *DB
	table     string
	batchSize int
}

func NewSalesLoader(db *DB, table string, batchSize int) *SalesLoader {
	return &SalesLoader{db: db, table: table, batchSize: batchSize}
}

// Load inserts all records in a single transaction, so the table either
// receives the whole dataset or nothing. onBatch, if set, is called with
// the number of rows written so far.
func (l *SalesLoader) Load(ctx context.Context, records []models.SalesRecord, onBatch func(written int)) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(records); start += l.batchSize {
		end := min(start+l.batchSize, len(records))
		query, args := buildInsert(l.table, records[start:end])
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d: %w", start+1, end, err)
		}
		if onBatch != nil {
			onBatch(end)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func buildInsert(table string, records []models.SalesRecord) (string, []any) {
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(salesColumns)), ", ") + ")"

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", table, strings.Join(salesColumns, ", "))

	args := make([]any, 0, len(records)*len(salesColumns))
	for i, r := range records {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row)
		args = append(args,
			r.Date.Format(models.DateLayout),
			r.Region,
			r.Person,
			r.Product,
			r.Category,
			r.Quantity,
			r.UnitPrice,
			r.TotalSales,
			r.DayOfWeek.String(),
			r.Month,
			r.Quarter,
		)
	}
	return b.String(), args
}
