package dataset

import (
	"fmt"
	"math"
)

// Row holds one record's cells in schema order. A cell is a float64
// (numeric), an int64 (integer), a string (string or nominal value) or
// nil, the missing sentinel.
type Row []any

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	return append(Row(nil), r...)
}

// IsMissing reports whether a cell holds the missing sentinel.
func IsMissing(v any) bool { return v == nil }

// Dataset is an ARFF relation held in memory: a named, ordered schema plus
// positionally aligned rows and an optional free-text description.
type Dataset struct {
	Relation    string
	Schema      Schema
	Rows        []Row
	Description string
}

// New builds a dataset and enforces the structural invariants: a relation
// name, a well-formed schema and rows whose widths match it. Zero rows are
// permitted so an empty shell can be filled by later appends. The dataset
// takes ownership of schema and rows.
func New(relation string, schema Schema, rows []Row, description string) (*Dataset, error) {
	if relation == "" {
		return nil, fmt.Errorf("%w: relation name is empty", ErrSchemaViolation)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != len(schema) {
			return nil, fmt.Errorf("%w: row %d has %d values, schema has %d attributes",
				ErrSchemaViolation, i, len(row), len(schema))
		}
	}
	return &Dataset{
		Relation:    relation,
		Schema:      schema,
		Rows:        rows,
		Description: description,
	}, nil
}

// ValidateShape checks the relation name, the schema and that every row's
// width equals the schema width. Unlike Validate it accepts zero rows, so
// append targets can start out empty.
func (d *Dataset) ValidateShape() error {
	if d == nil {
		return fmt.Errorf("%w: dataset is nil", ErrSchemaViolation)
	}
	if d.Relation == "" {
		return fmt.Errorf("%w: relation name is empty", ErrSchemaViolation)
	}
	if len(d.Schema) == 0 {
		return fmt.Errorf("%w: schema has no attributes", ErrSchemaViolation)
	}
	if err := d.Schema.Validate(); err != nil {
		return err
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Schema) {
			return fmt.Errorf("%w: row %d has %d values, schema has %d attributes",
				ErrSchemaViolation, i, len(row), len(d.Schema))
		}
	}
	return nil
}

// Validate checks the dataset is structurally sound: a relation name, a
// non-empty schema, at least one row and per-row widths equal to the
// schema width. The first failed check is returned as an ErrSchemaViolation.
func (d *Dataset) Validate() error {
	if err := d.ValidateShape(); err != nil {
		return err
	}
	if len(d.Rows) == 0 {
		return fmt.Errorf("%w: dataset %q has no rows", ErrSchemaViolation, d.Relation)
	}
	return nil
}

// IsValid reports whether Validate passes.
func (d *Dataset) IsValid() bool {
	return d.Validate() == nil
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int { return len(d.Rows) }

// NumAttributes returns the number of schema attributes.
func (d *Dataset) NumAttributes() int { return len(d.Schema) }

// Clone returns a deep copy; schema and rows share no memory with the
// receiver.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Row, len(d.Rows))
	for i := range d.Rows {
		rows[i] = d.Rows[i].Clone()
	}
	return &Dataset{
		Relation:    d.Relation,
		Schema:      d.Schema.Clone(),
		Rows:        rows,
		Description: d.Description,
	}
}

// Equal reports structural equality: relation, description, schema and
// every cell.
func (d *Dataset) Equal(other *Dataset) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Relation != other.Relation || d.Description != other.Description {
		return false
	}
	if len(d.Schema) != len(other.Schema) || len(d.Rows) != len(other.Rows) {
		return false
	}
	for i := range d.Schema {
		if !d.Schema[i].Equal(other.Schema[i]) {
			return false
		}
	}
	for i := range d.Rows {
		if len(d.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range d.Rows[i] {
			if !cellsEqual(d.Rows[i][j], other.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}

// cellsEqual compares two cells by value; a NaN pair counts as equal.
func cellsEqual(a, b any) bool {
	if af, ok := a.(float64); ok {
		bf, ok := b.(float64)
		if !ok {
			return false
		}
		return af == bf || (math.IsNaN(af) && math.IsNaN(bf))
	}
	return a == b
}
