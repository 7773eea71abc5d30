package dataset

import (
	"errors"
	"testing"
)

func TestScalarAttributeKinds(t *testing.T) {
	cases := []struct {
		keyword string
		want    Kind
	}{
		{"REAL", KindNumeric},
		{"NUMERIC", KindNumeric},
		{"real", KindNumeric},
		{"numeric", KindNumeric},
		{"INTEGER", KindInteger},
		{"integer", KindInteger},
		{"STRING", KindString},
		{"String", KindString},
	}

	for _, c := range cases {
		attr, err := ScalarAttribute("col", c.keyword)
		if err != nil {
			t.Fatalf("ScalarAttribute(%q) failed: %v", c.keyword, err)
		}
		if attr.Kind != c.want {
			t.Errorf("Keyword %q: expected kind %s, got %s", c.keyword, c.want, attr.Kind)
		}
		if attr.Labels != nil {
			t.Errorf("Keyword %q: expected nil labels, got %v", c.keyword, attr.Labels)
		}
	}
}

func TestScalarAttributeDate(t *testing.T) {
	_, err := ScalarAttribute("when", "DATE")
	if !errors.Is(err, ErrUnsupportedFeature) {
		t.Errorf("Expected ErrUnsupportedFeature, got %v", err)
	}
}

func TestScalarAttributeUnknownKeyword(t *testing.T) {
	_, err := ScalarAttribute("col", "RELATIONAL")
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}

func TestScalarAttributeEmptyName(t *testing.T) {
	_, err := ScalarAttribute("", "NUMERIC")
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}

func TestNominalAttribute(t *testing.T) {
	labels := []string{"red", "green", "blue"}
	attr, err := NominalAttribute("color", labels)
	if err != nil {
		t.Fatalf("NominalAttribute failed: %v", err)
	}
	if attr.Kind != KindNominal {
		t.Errorf("Expected kind nominal, got %s", attr.Kind)
	}

	// The attribute must keep its own copy of the domain.
	labels[0] = "mutated"
	if attr.Labels[0] != "red" {
		t.Errorf("Expected label copy to stay 'red', got %q", attr.Labels[0])
	}
}

func TestNominalAttributeEmptyDomain(t *testing.T) {
	_, err := NominalAttribute("color", nil)
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}

func TestNominalAttributeDuplicateLabel(t *testing.T) {
	_, err := NominalAttribute("color", []string{"red", "blue", "red"})
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema, got %v", err)
	}
}

func TestAttributeEqual(t *testing.T) {
	a, _ := NominalAttribute("color", []string{"red", "blue"})
	b, _ := NominalAttribute("color", []string{"red", "blue"})
	if !a.Equal(b) {
		t.Error("Expected identical nominal attributes to be equal")
	}

	reordered, _ := NominalAttribute("color", []string{"blue", "red"})
	if a.Equal(reordered) {
		t.Error("Expected differing label order to break equality")
	}

	numeric, _ := ScalarAttribute("color", "NUMERIC")
	if a.Equal(numeric) {
		t.Error("Expected differing kinds to break equality")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindNumeric, "numeric"},
		{KindInteger, "integer"},
		{KindString, "string"},
		{KindNominal, "nominal"},
		{KindDate, "date"},
		{Kind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d): expected %q, got %q", int(c.kind), c.want, got)
		}
	}
}
