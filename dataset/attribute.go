package dataset

import (
	"fmt"
	"strings"
)

// Kind identifies the declared type of an attribute.
type Kind int

const (
	KindNumeric Kind = iota
	KindInteger
	KindString
	KindNominal
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindNominal:
		return "nominal"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Attribute describes one column: its name, its kind and, for nominal
// attributes, the ordered domain of admissible labels.
type Attribute struct {
	Name   string
	Kind   Kind
	Labels []string
}

// ScalarAttribute builds an attribute from a scalar ARFF type keyword.
// REAL and NUMERIC map to KindNumeric, INTEGER to KindInteger and STRING
// to KindString; matching is case-insensitive. DATE is recognized but not
// supported and fails with ErrUnsupportedFeature; any other keyword fails
// with ErrInvalidSchema.
func ScalarAttribute(name, keyword string) (Attribute, error) {
	if name == "" {
		return Attribute{}, fmt.Errorf("%w: attribute name is empty", ErrInvalidSchema)
	}
	switch strings.ToUpper(keyword) {
	case "REAL", "NUMERIC":
		return Attribute{Name: name, Kind: KindNumeric}, nil
	case "INTEGER":
		return Attribute{Name: name, Kind: KindInteger}, nil
	case "STRING":
		return Attribute{Name: name, Kind: KindString}, nil
	case "DATE":
		return Attribute{}, fmt.Errorf("%w: DATE attribute %q", ErrUnsupportedFeature, name)
	default:
		return Attribute{}, fmt.Errorf("%w: unknown type %q for attribute %q", ErrInvalidSchema, keyword, name)
	}
}

// NominalAttribute builds a nominal attribute over an ordered label domain.
// The domain must be non-empty and free of duplicates.
func NominalAttribute(name string, labels []string) (Attribute, error) {
	if name == "" {
		return Attribute{}, fmt.Errorf("%w: attribute name is empty", ErrInvalidSchema)
	}
	if len(labels) == 0 {
		return Attribute{}, fmt.Errorf("%w: nominal attribute %q has an empty domain", ErrInvalidSchema, name)
	}
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if seen[label] {
			return Attribute{}, fmt.Errorf("%w: duplicate label %q in attribute %q", ErrInvalidSchema, label, name)
		}
		seen[label] = true
	}
	return Attribute{Name: name, Kind: KindNominal, Labels: append([]string(nil), labels...)}, nil
}

// Equal reports whether two attributes agree on name, kind and, for
// nominal attributes, on the exact label order.
func (a Attribute) Equal(b Attribute) bool {
	if a.Name != b.Name || a.Kind != b.Kind || len(a.Labels) != len(b.Labels) {
		return false
	}
	for i := range a.Labels {
		if a.Labels[i] != b.Labels[i] {
			return false
		}
	}
	return true
}

// clone returns a copy whose label slice does not alias the receiver's.
func (a Attribute) clone() Attribute {
	c := a
	c.Labels = append([]string(nil), a.Labels...)
	return c
}
