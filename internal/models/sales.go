package models

import (
	"strconv"
	"time"
)

// DateLayout is the on-disk date format of a sales record
const DateLayout = "2006-01-02"

// SalesRecord is one synthesized transaction
type SalesRecord struct {
	Date       time.Time    `json:"date" db:"sale_date"`
	Region     string       `json:"region" db:"region"`
	Person     string       `json:"person" db:"person"`
	Product    string       `json:"product" db:"product"`
	Category   string       `json:"category" db:"category"`
	Quantity   int          `json:"quantity" db:"quantity"`
	UnitPrice  int64        `json:"unit_price" db:"unit_price"`
	TotalSales int64        `json:"total_sales" db:"total_sales"`
	DayOfWeek  time.Weekday `json:"day_of_week" db:"day_of_week"`
	Month      int          `json:"month" db:"month"`
	Quarter    int          `json:"quarter" db:"quarter"`
}

// CSVHeader lists the exported columns in file order
var CSVHeader = []string{
	"Date",
	"Region",
	"Person",
	"Product",
	"Category",
	"Quantity",
	"UnitPrice",
	"TotalSales",
	"DayOfWeek",
	"Month",
	"Quarter",
}

// Quarter returns the calendar quarter (1-4) of a month (1-12)
func Quarter(month int) int {
	return (month-1)/3 + 1
}

// Row renders the record in CSVHeader order
func (r SalesRecord) Row() []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Region,
		r.Person,
		r.Product,
		r.Category,
		strconv.Itoa(r.Quantity),
		strconv.FormatInt(r.UnitPrice, 10),
		strconv.FormatInt(r.TotalSales, 10),
		r.DayOfWeek.String(),
		strconv.Itoa(r.Month),
		strconv.Itoa(r.Quarter),
	}
}
