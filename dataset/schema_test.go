package dataset

import (
	"errors"
	"testing"
)

func testSchema(t *testing.T) Schema {
	t.Helper()
	outlook, err := NominalAttribute("outlook", []string{"sunny", "overcast", "rainy"})
	if err != nil {
		t.Fatalf("Failed to build outlook: %v", err)
	}
	temperature, err := ScalarAttribute("temperature", "NUMERIC")
	if err != nil {
		t.Fatalf("Failed to build temperature: %v", err)
	}
	humidity, err := ScalarAttribute("humidity", "INTEGER")
	if err != nil {
		t.Fatalf("Failed to build humidity: %v", err)
	}
	comment, err := ScalarAttribute("comment", "STRING")
	if err != nil {
		t.Fatalf("Failed to build comment: %v", err)
	}
	return Schema{outlook, temperature, humidity, comment}
}

func TestSchemaIndexOf(t *testing.T) {
	s := testSchema(t)

	if i := s.IndexOf("outlook"); i != 0 {
		t.Errorf("Expected index 0, got %d", i)
	}
	if i := s.IndexOf("humidity"); i != 2 {
		t.Errorf("Expected index 2, got %d", i)
	}
	if i := s.IndexOf("pressure"); i != -1 {
		t.Errorf("Expected -1 for absent attribute, got %d", i)
	}
}

func TestSchemaContains(t *testing.T) {
	s := testSchema(t)

	if !s.Contains("temperature") {
		t.Error("Expected schema to contain 'temperature'")
	}
	if s.Contains("pressure") {
		t.Error("Did not expect schema to contain 'pressure'")
	}
}

func TestSchemaKindOf(t *testing.T) {
	s := testSchema(t)

	kind, err := s.KindOf("humidity")
	if err != nil {
		t.Fatalf("KindOf failed: %v", err)
	}
	if kind != KindInteger {
		t.Errorf("Expected integer, got %s", kind)
	}

	if _, err := s.KindOf("pressure"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Expected ErrAttributeNotFound, got %v", err)
	}
}

func TestSchemaIsNominal(t *testing.T) {
	s := testSchema(t)

	nominal, err := s.IsNominal("outlook")
	if err != nil {
		t.Fatalf("IsNominal failed: %v", err)
	}
	if !nominal {
		t.Error("Expected 'outlook' to be nominal")
	}

	nominal, err = s.IsNominal("temperature")
	if err != nil {
		t.Fatalf("IsNominal failed: %v", err)
	}
	if nominal {
		t.Error("Did not expect 'temperature' to be nominal")
	}

	if _, err := s.IsNominal("pressure"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Expected ErrAttributeNotFound, got %v", err)
	}
}

func TestSchemaLabelsOf(t *testing.T) {
	s := testSchema(t)

	labels, err := s.LabelsOf("outlook")
	if err != nil {
		t.Fatalf("LabelsOf failed: %v", err)
	}
	if len(labels) != 3 || labels[0] != "sunny" {
		t.Errorf("Unexpected labels: %v", labels)
	}

	// Returned slice is a copy.
	labels[0] = "mutated"
	again, _ := s.LabelsOf("outlook")
	if again[0] != "sunny" {
		t.Errorf("Expected domain to stay 'sunny', got %q", again[0])
	}

	// Non-nominal attributes yield nil without an error.
	labels, err = s.LabelsOf("temperature")
	if err != nil {
		t.Fatalf("LabelsOf on non-nominal failed: %v", err)
	}
	if labels != nil {
		t.Errorf("Expected nil labels for non-nominal, got %v", labels)
	}

	if _, err := s.LabelsOf("pressure"); !errors.Is(err, ErrAttributeNotFound) {
		t.Errorf("Expected ErrAttributeNotFound, got %v", err)
	}
}

func TestSchemaValidate(t *testing.T) {
	if err := testSchema(t).Validate(); err != nil {
		t.Errorf("Expected valid schema, got %v", err)
	}

	if err := (Schema{}).Validate(); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema for empty schema, got %v", err)
	}

	dup := Schema{
		{Name: "a", Kind: KindNumeric},
		{Name: "a", Kind: KindString},
	}
	if err := dup.Validate(); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema for duplicate names, got %v", err)
	}

	bareNominal := Schema{{Name: "color", Kind: KindNominal}}
	if err := bareNominal.Validate(); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema for empty nominal domain, got %v", err)
	}

	labeledNumeric := Schema{{Name: "x", Kind: KindNumeric, Labels: []string{"a"}}}
	if err := labeledNumeric.Validate(); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("Expected ErrInvalidSchema for labeled numeric, got %v", err)
	}
}

func TestSchemaClone(t *testing.T) {
	s := testSchema(t)
	c := s.Clone()

	c[0].Name = "sky"
	c[0].Labels[0] = "mutated"

	if s[0].Name != "outlook" {
		t.Errorf("Expected original name 'outlook', got %q", s[0].Name)
	}
	if s[0].Labels[0] != "sunny" {
		t.Errorf("Expected original label 'sunny', got %q", s[0].Labels[0])
	}
}
