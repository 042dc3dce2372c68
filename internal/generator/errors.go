package generator

import "errors"

var (
	// ErrEmptyTable is returned when a lookup table has no entries.
	ErrEmptyTable = errors.New("generator: empty lookup table")
	// ErrInvalidWeight is returned when region weights cannot form a distribution.
	ErrInvalidWeight = errors.New("generator: invalid selection weight")
	// ErrInvalidPerformance is returned for a non-positive person factor.
	ErrInvalidPerformance = errors.New("generator: invalid performance factor")
	// ErrInvalidPriceRange is returned when a product's min price exceeds its max.
	ErrInvalidPriceRange = errors.New("generator: invalid price range")
	// ErrMissingCategory is returned for a product without a category.
	ErrMissingCategory = errors.New("generator: product has no category")
	// ErrInvalidRange is returned for a date range spanning zero or fewer days.
	ErrInvalidRange = errors.New("generator: invalid date range")
	// ErrInvalidBounds is returned for an empty count or quantity interval.
	ErrInvalidBounds = errors.New("generator: invalid draw bounds")
	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("generator: nil random source")
)
