// Package jsonio exports datasets as JSON rows and loads them back.
//
// This package implements:
// - Dataset to JSON rendering as an array of name/value objects
// - JSON row loading under a caller-supplied relation and schema
// - Missing cells as JSON null in both directions
//
// JSON objects carry no attribute order, kinds or relation name, so
// loading requires the schema the data was written under.
package jsonio
