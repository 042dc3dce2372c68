// Package generator synthesizes the daily sales dataset.
//
// A Generator walks every calendar day of a closed DateRange, draws a random
// number of transactions for the day and prices each one by composing the
// seasonal, weekday, trend and person factors over a base price drawn from
// the product's price range. All randomness comes from the injected Rand, so
// a seeded source reproduces a dataset exactly.
package generator
