package generator

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/matthieukhl/salesgen/internal/models"
)

const (
	defaultMinTransactions = 27
	defaultMaxTransactions = 30
	defaultMinQuantity     = 1
	defaultMaxQuantity     = 5
)

// ProgressFunc is called after each simulated day with the number of days
// done and the total number of days
type ProgressFunc func(done, total int)

// Option customizes a Generator
type Option func(*Generator)

// WithRange replaces the default date range
func WithRange(r DateRange) Option {
	return func(g *Generator) {
		g.dates = r
	}
}

// WithGrowthRate replaces the growth accumulated over the range
func WithGrowthRate(rate float64) Option {
	return func(g *Generator) {
		g.growth = rate
	}
}

// WithTransactionsPerDay sets the inclusive bounds of the daily transaction count
func WithTransactionsPerDay(lo, hi int) Option {
	return func(g *Generator) {
		g.minTx, g.maxTx = lo, hi
	}
}

// WithQuantityRange sets the inclusive bounds of a transaction's quantity
func WithQuantityRange(lo, hi int) Option {
	return func(g *Generator) {
		g.minQty, g.maxQty = lo, hi
	}
}

// WithProgress registers a per-day progress callback
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// Generator synthesizes sales records from fixed lookup tables.
// It is not safe for concurrent use; the Rand it draws from is shared state.
type Generator struct {
	tables   Tables
	regions  *WeightedChooser
	rng      Rand
	dates    DateRange
	growth   float64
	minTx    int
	maxTx    int
	minQty   int
	maxQty   int
	progress ProgressFunc
}

// New validates the tables and options and returns a ready Generator
func New(tables Tables, rng Rand, opts ...Option) (*Generator, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tables: %w", err)
	}

	g := &Generator{
		tables: tables,
		rng:    rng,
		dates:  DefaultRange(),
		growth: DefaultGrowthRate,
		minTx:  defaultMinTransactions,
		maxTx:  defaultMaxTransactions,
		minQty: defaultMinQuantity,
		maxQty: defaultMaxQuantity,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.dates.Validate(); err != nil {
		return nil, err
	}
	if g.minTx < 0 || g.minTx > g.maxTx {
		return nil, fmt.Errorf("transactions per day [%d, %d]: %w", g.minTx, g.maxTx, ErrInvalidBounds)
	}
	if g.minQty < 0 || g.minQty > g.maxQty {
		return nil, fmt.Errorf("quantity [%d, %d]: %w", g.minQty, g.maxQty, ErrInvalidBounds)
	}

	weights := make([]float64, len(tables.Regions))
	for i, r := range tables.Regions {
		weights[i] = r.Weight
	}
	chooser, err := NewWeightedChooser(weights)
	if err != nil {
		return nil, fmt.Errorf("region weights: %w", err)
	}
	g.regions = chooser

	return g, nil
}

// NewRand returns a PCG-backed source. Seed 0 picks a fresh seed from the
// clock, so two such runs produce different datasets.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Range returns the date range the Generator iterates
func (g *Generator) Range() DateRange {
	return g.dates
}

// GrowthRate returns the configured trend growth
func (g *Generator) GrowthRate() float64 {
	return g.growth
}

// Generate builds the full dataset, one day at a time in date order
func (g *Generator) Generate() []models.SalesRecord {
	total := g.dates.Len()
	avg := (g.minTx + g.maxTx) / 2
	records := make([]models.SalesRecord, 0, total*(avg+1))

	done := 0
	g.dates.Each(func(day time.Time) {
		records = append(records, g.GenerateDay(day)...)
		done++
		if g.progress != nil {
			g.progress(done, total)
		}
	})
	return records
}

// GenerateDay synthesizes the transactions of a single day
func (g *Generator) GenerateDay(date time.Time) []models.SalesRecord {
	day := Day(date)
	n := g.between(g.minTx, g.maxTx)

	f := dayFactors{
		seasonal: SeasonalFactor(day),
		weekday:  WeekdayFactor(day),
		trend:    g.dates.TrendFactor(day, g.growth),
	}

	records := make([]models.SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.transaction(day, f))
	}
	return records
}

// dayFactors are shared by every transaction of a day
type dayFactors struct {
	seasonal float64
	weekday  float64
	trend    float64
}

func (g *Generator) transaction(day time.Time, f dayFactors) models.SalesRecord {
	region := g.tables.Regions[g.regions.Pick(g.rng)]
	person := g.tables.Persons[g.rng.IntN(len(g.tables.Persons))]
	product := g.tables.Products[g.rng.IntN(len(g.tables.Products))]

	base := g.between64(product.MinPrice, product.MaxPrice)
	unitPrice := UnitPrice(base, f.seasonal, f.weekday, f.trend, person.Performance)
	quantity := g.between(g.minQty, g.maxQty)
	month := int(day.Month())

	return models.SalesRecord{
		Date:       day,
		Region:     region.Name,
		Person:     person.Name,
		Product:    product.Name,
		Category:   product.Category,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalSales: unitPrice * int64(quantity),
		DayOfWeek:  day.Weekday(),
		Month:      month,
		Quarter:    models.Quarter(month),
	}
}

// UnitPrice multiplies a base price by each factor in turn and truncates
// the result to an integer
func UnitPrice(base int64, factors ...float64) int64 {
	price := float64(base)
	for _, f := range factors {
		price *= f
	}
	price = math.Floor(price)
	if price < 0 {
		return 0
	}
	return int64(price)
}

// between draws uniformly from [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) between64(lo, hi int64) int64 {
	return lo + int64(g.rng.IntN(int(hi-lo+1)))
}
