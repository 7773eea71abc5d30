// Package csvio exports datasets as CSV text.
//
// This package implements:
// - CSV rendering with a header row of attribute names
// - The ? marker for missing cells
// - Writer, string and file entry points
//
// CSV carries no relation name, description or attribute kinds; exports
// are one-way.
package csvio
