package dataset

import (
	"errors"
	"fmt"
	"testing"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New("weather", testSchema(t), []Row{
		{"sunny", 21.5, int64(60), "clear morning"},
		{"rainy", 17.0, int64(90), nil},
		{"overcast", 19.2, int64(75), "steady drizzle"},
	}, "daily observations")
	if err != nil {
		t.Fatalf("Failed to build dataset: %v", err)
	}
	return ds
}

func TestNewDataset(t *testing.T) {
	ds := testDataset(t)

	if ds.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", ds.NumRows())
	}
	if ds.NumAttributes() != 4 {
		t.Errorf("Expected 4 attributes, got %d", ds.NumAttributes())
	}
}

func TestNewDatasetRejectsEmptyRelation(t *testing.T) {
	_, err := New("", testSchema(t), nil, "")
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("Expected ErrSchemaViolation, got %v", err)
	}
}

func TestNewDatasetRejectsRaggedRows(t *testing.T) {
	_, err := New("weather", testSchema(t), []Row{
		{"sunny", 21.5, int64(60), "ok"},
		{"rainy", 17.0},
	}, "")
	if !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("Expected ErrSchemaViolation, got %v", err)
	}
}

func TestNewDatasetAllowsZeroRows(t *testing.T) {
	ds, err := New("weather", testSchema(t), nil, "")
	if err != nil {
		t.Fatalf("Expected empty dataset to build, got %v", err)
	}
	if err := ds.ValidateShape(); err != nil {
		t.Errorf("Expected empty dataset shape to validate, got %v", err)
	}
}

func TestDatasetValidate(t *testing.T) {
	ds := testDataset(t)
	if err := ds.Validate(); err != nil {
		t.Errorf("Expected dataset to validate, got %v", err)
	}
	if !ds.IsValid() {
		t.Error("Expected IsValid to report true")
	}

	empty := &Dataset{Relation: "weather", Schema: testSchema(t)}
	if err := empty.Validate(); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("Expected ErrSchemaViolation for zero rows, got %v", err)
	}
	if empty.IsValid() {
		t.Error("Expected IsValid to report false for zero rows")
	}

	noSchema := &Dataset{Relation: "weather", Rows: []Row{{1.0}}}
	if err := noSchema.Validate(); !errors.Is(err, ErrSchemaViolation) {
		t.Errorf("Expected ErrSchemaViolation for empty schema, got %v", err)
	}
}

func TestDatasetCloneIndependence(t *testing.T) {
	ds := testDataset(t)
	c := ds.Clone()

	c.Rows[0][0] = "rainy"
	c.Schema[0].Labels[0] = "mutated"
	c.Relation = "copy"

	if ds.Rows[0][0] != "sunny" {
		t.Errorf("Expected original cell 'sunny', got %v", ds.Rows[0][0])
	}
	if ds.Schema[0].Labels[0] != "sunny" {
		t.Errorf("Expected original label 'sunny', got %q", ds.Schema[0].Labels[0])
	}
	if ds.Relation != "weather" {
		t.Errorf("Expected original relation 'weather', got %q", ds.Relation)
	}
}

func TestDatasetEqual(t *testing.T) {
	a := testDataset(t)
	b := testDataset(t)

	if !a.Equal(b) {
		t.Error("Expected identical datasets to be equal")
	}

	b.Rows[1][1] = 17.5
	if a.Equal(b) {
		t.Error("Expected differing cell to break equality")
	}

	c := testDataset(t)
	c.Description = "other notes"
	if a.Equal(c) {
		t.Error("Expected differing description to break equality")
	}

	if a.Equal(nil) {
		t.Error("Expected nil comparison to report false")
	}
}

func TestIsMissing(t *testing.T) {
	if !IsMissing(nil) {
		t.Error("Expected nil cell to be missing")
	}
	if IsMissing("?") {
		t.Error("Did not expect literal '?' string to be missing")
	}
	if IsMissing(0.0) {
		t.Error("Did not expect zero to be missing")
	}
}

func BenchmarkDatasetClone(b *testing.B) {
	schema := Schema{
		{Name: "id", Kind: KindInteger},
		{Name: "value", Kind: KindNumeric},
		{Name: "label", Kind: KindNominal, Labels: []string{"a", "b", "c"}},
	}
	rows := make([]Row, 1000)
	for i := range rows {
		rows[i] = Row{int64(i), float64(i) * 0.5, "b"}
	}
	ds, err := New("bench", schema, rows, "")
	if err != nil {
		b.Fatalf("Failed to build dataset: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ds.Clone()
	}
}

func BenchmarkSchemaIndexOf(b *testing.B) {
	schema := make(Schema, 50)
	for i := range schema {
		schema[i] = Attribute{Name: fmt.Sprintf("attr_%d", i), Kind: KindNumeric}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = schema.IndexOf("attr_49")
	}
}
