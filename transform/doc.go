// Package transform provides the dataset operations of the toolkit.
// This package implements:
// - Append: row concatenation over position-compatible schemas
// - Merge: key-based left join pulling new columns
// - SortBy: stable in-place row ordering by one attribute
// - DummyEncode: one-of-k recoding of a nominal attribute
// - NormalizeMissing: token to missing-sentinel rewriting
package transform
