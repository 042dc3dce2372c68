package generator

import (
	"fmt"

	"github.com/matthieukhl/salesgen/internal/models"
)

// Region is a selectable sales region with its relative weight
type Region struct {
	Name   string
	Weight float64
}

// Person is a sales person with a multiplicative skill factor
type Person struct {
	Name        string
	Performance float64
}

// Product carries its base price bounds and category
type Product struct {
	Name     string
	Category string
	MinPrice int64
	MaxPrice int64
}

// Tables holds the lookup tables a Generator draws from.
// Slices keep a stable order so seeded runs are reproducible.
type Tables struct {
	Regions  []Region
	Persons  []Person
	Products []Product
}

// DefaultTables returns the fixed tables of the demo dataset
func DefaultTables() Tables {
	return Tables{
		Regions: []Region{
			{Name: models.RegionHokkaido, Weight: 0.08},
			{Name: models.RegionTohoku, Weight: 0.10},
			{Name: models.RegionKanto, Weight: 0.35},
			{Name: models.RegionChubu, Weight: 0.15},
			{Name: models.RegionKinki, Weight: 0.20},
			{Name: models.RegionChugoku, Weight: 0.05},
			{Name: models.RegionShikoku, Weight: 0.03},
			{Name: models.RegionKyushu, Weight: 0.04},
		},
		Persons: []Person{
			{Name: models.PersonTanaka, Performance: 1.3},
			{Name: models.PersonSato, Performance: 1.2},
			{Name: models.PersonSuzuki, Performance: 1.0},
			{Name: models.PersonTakahashi, Performance: 1.1},
			{Name: models.PersonIto, Performance: 0.9},
			{Name: models.PersonWatanabe, Performance: 1.15},
			{Name: models.PersonYamamoto, Performance: 0.85},
			{Name: models.PersonNakamura, Performance: 1.05},
			{Name: models.PersonKobayashi, Performance: 1.25},
			{Name: models.PersonKato, Performance: 0.95},
		},
		Products: []Product{
			{Name: models.ProductA, Category: models.CategorySubscription, MinPrice: 30000, MaxPrice: 50000},
			{Name: models.ProductB, Category: models.CategoryOneTime, MinPrice: 50000, MaxPrice: 80000},
			{Name: models.ProductC, Category: models.CategorySubscription, MinPrice: 20000, MaxPrice: 40000},
			{Name: models.ProductD, Category: models.CategoryOneTime, MinPrice: 60000, MaxPrice: 100000},
			{Name: models.ProductE, Category: models.CategoryAddOn, MinPrice: 15000, MaxPrice: 30000},
			{Name: models.ServiceX, Category: models.CategoryMaintenance, MinPrice: 100000, MaxPrice: 200000},
			{Name: models.ServiceY, Category: models.CategoryMaintenance, MinPrice: 80000, MaxPrice: 150000},
		},
	}
}

// Validate reports the first configuration problem in the tables
func (t Tables) Validate() error {
	if len(t.Regions) == 0 {
		return fmt.Errorf("regions: %w", ErrEmptyTable)
	}
	if len(t.Persons) == 0 {
		return fmt.Errorf("persons: %w", ErrEmptyTable)
	}
	if len(t.Products) == 0 {
		return fmt.Errorf("products: %w", ErrEmptyTable)
	}

	total := 0.0
	for _, r := range t.Regions {
		if r.Weight < 0 {
			return fmt.Errorf("region %s weight %v: %w", r.Name, r.Weight, ErrInvalidWeight)
		}
		total += r.Weight
	}
	if total <= 0 {
		return fmt.Errorf("region weights sum to %v: %w", total, ErrInvalidWeight)
	}

	for _, p := range t.Persons {
		if p.Performance <= 0 {
			return fmt.Errorf("person %s: %w", p.Name, ErrInvalidPerformance)
		}
	}

	for _, p := range t.Products {
		if p.MinPrice < 0 || p.MinPrice > p.MaxPrice {
			return fmt.Errorf("product %s [%d, %d]: %w", p.Name, p.MinPrice, p.MaxPrice, ErrInvalidPriceRange)
		}
		if p.Category == "" {
			return fmt.Errorf("product %s: %w", p.Name, ErrMissingCategory)
		}
	}
	return nil
}

// CategoryOf returns the category of a product and whether the product is known
func (t Tables) CategoryOf(product string) (string, bool) {
	for _, p := range t.Products {
		if p.Name == product {
			return p.Category, true
		}
	}
	return "", false
}

// PerformanceOf returns the skill factor of a person and whether the person is known
func (t Tables) PerformanceOf(person string) (float64, bool) {
	for _, p := range t.Persons {
		if p.Name == person {
			return p.Performance, true
		}
	}
	return 0, false
}

// ProductByName looks up a product entry
func (t Tables) ProductByName(name string) (Product, bool) {
	for _, p := range t.Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}
