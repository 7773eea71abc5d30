// Package arff reads and writes the ARFF text format.
// This package implements:
// - a dense-format parser producing dataset values
// - a serializer whose output the parser round-trips
// - file entry points with load-time missing-value normalization
//
// Sparse data rows and DATE attributes are rejected with clean errors.
package arff
