// Package dataset provides the relational in-memory model for ARFF data.
// This package implements:
// - Attribute, Schema and Dataset types with kind-tagged cells
// - Schema lookups by attribute name
// - Structural validation shared by all transforms
package dataset
