// Package analytics computes the dashboard aggregates shown next to the catalog
// lists: product counts, stock and average margin per category or brand, and a
// summary of how a product price moved over its history.
package analytics
