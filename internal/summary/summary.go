// Package summary computes and prints headline figures of a sales dataset.
package summary

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/matthieukhl/salesgen/internal/models"
	"github.com/shopspring/decimal"
)

// Summary holds the totals of a dataset
type Summary struct {
	Records       int
	TotalRevenue  int64
	TotalQuantity int64
	First         time.Time
	Last          time.Time

	// AvgRevenue is revenue per record, truncated to whole yen
	AvgRevenue   int64
	AvgUnitPrice decimal.Decimal
	AvgQuantity  decimal.Decimal

	ByRegion   []Share
	ByCategory []Share
}

// Share is the revenue attributed to one label
type Share struct {
	Label   string
	Revenue int64
	Percent decimal.Decimal
}

// Summarize walks the records once; an empty input yields a zero Summary
func Summarize(records []models.SalesRecord) Summary {
	s := Summary{
		AvgUnitPrice: decimal.Zero,
		AvgQuantity:  decimal.Zero,
	}
	if len(records) == 0 {
		return s
	}

	byRegion := map[string]int64{}
	byCategory := map[string]int64{}
	var unitPrices int64

	s.Records = len(records)
	s.First, s.Last = records[0].Date, records[0].Date
	for _, r := range records {
		s.TotalRevenue += r.TotalSales
		s.TotalQuantity += int64(r.Quantity)
		unitPrices += r.UnitPrice
		byRegion[r.Region] += r.TotalSales
		byCategory[r.Category] += r.TotalSales
		if r.Date.Before(s.First) {
			s.First = r.Date
		}
		if r.Date.After(s.Last) {
			s.Last = r.Date
		}
	}

	n := decimal.NewFromInt(int64(s.Records))
	s.AvgRevenue = s.TotalRevenue / int64(s.Records)
	s.AvgUnitPrice = decimal.NewFromInt(unitPrices).Div(n).Round(2)
	s.AvgQuantity = decimal.NewFromInt(s.TotalQuantity).Div(n).Round(2)
	s.ByRegion = shares(byRegion, s.TotalRevenue)
	s.ByCategory = shares(byCategory, s.TotalRevenue)
	return s
}

// shares sorts by revenue descending, then label
func shares(totals map[string]int64, revenue int64) []Share {
	out := make([]Share, 0, len(totals))
	for label, v := range totals {
		pct := decimal.Zero
		if revenue > 0 {
			pct = decimal.NewFromInt(v).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(revenue)).Round(1)
		}
		out = append(out, Share{Label: label, Revenue: v, Percent: pct})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Print renders the summary block
func (s Summary) Print(w io.Writer) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n📊 Data summary\n%s\n", rule, rule)
	fmt.Fprintf(w, "Records:          %s\n", Group(int64(s.Records)))
	fmt.Fprintf(w, "Total revenue:    ¥%s\n", Group(s.TotalRevenue))
	fmt.Fprintf(w, "Avg per record:   ¥%s\n", Group(s.AvgRevenue))
	fmt.Fprintf(w, "Avg unit price:   ¥%s\n", s.AvgUnitPrice.StringFixed(2))
	fmt.Fprintf(w, "Avg quantity:     %s\n", s.AvgQuantity.StringFixed(2))
	if s.Records > 0 {
		fmt.Fprintf(w, "Period:           %s 〜 %s\n", s.First.Format(models.DateLayout), s.Last.Format(models.DateLayout))
	}
	printShares(w, "By region", s.ByRegion)
	printShares(w, "By category", s.ByCategory)
	fmt.Fprintf(w, "%s\n\n", rule)
}

func printShares(w io.Writer, title string, shares []Share) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, sh := range shares {
		fmt.Fprintf(w, "   %-12s ¥%s (%s%%)\n", sh.Label, Group(sh.Revenue), sh.Percent.StringFixed(1))
	}
}

// Group formats n with comma thousands separators
func Group(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
