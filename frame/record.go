package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// ToRecord converts a dataset to an Arrow record. Missing cells become
// nulls; the relation name and description ride in schema metadata. The
// caller owns the record and must Release it.
func ToRecord(ds *dataset.Dataset) (arrow.Record, error) {
	if err := ds.ValidateShape(); err != nil {
		return nil, err
	}
	fields, err := arrowFields(ds.Schema)
	if err != nil {
		return nil, err
	}
	md := schemaMetadata(ds)
	schema := arrow.NewSchema(fields, &md)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	for j, attr := range ds.Schema {
		if err := appendColumn(builder.Field(j), attr, ds.Rows, j); err != nil {
			return nil, err
		}
	}
	return builder.NewRecord(), nil
}

func schemaMetadata(ds *dataset.Dataset) arrow.Metadata {
	keys := []string{relationKey}
	values := []string{ds.Relation}
	if ds.Description != "" {
		keys = append(keys, descriptionKey)
		values = append(values, ds.Description)
	}
	return arrow.NewMetadata(keys, values)
}

func appendColumn(b array.Builder, attr dataset.Attribute, rows []dataset.Row, col int) error {
	switch attr.Kind {
	case dataset.KindNumeric:
		fb := b.(*array.Float64Builder)
		for i, row := range rows {
			if dataset.IsMissing(row[col]) {
				fb.AppendNull()
				continue
			}
			v, ok := row[col].(float64)
			if !ok {
				return cellTypeError(attr, i, row[col])
			}
			fb.Append(v)
		}
	case dataset.KindInteger:
		ib := b.(*array.Int64Builder)
		for i, row := range rows {
			if dataset.IsMissing(row[col]) {
				ib.AppendNull()
				continue
			}
			v, ok := row[col].(int64)
			if !ok {
				return cellTypeError(attr, i, row[col])
			}
			ib.Append(v)
		}
	case dataset.KindString, dataset.KindNominal:
		sb := b.(*array.StringBuilder)
		for i, row := range rows {
			if dataset.IsMissing(row[col]) {
				sb.AppendNull()
				continue
			}
			v, ok := row[col].(string)
			if !ok {
				return cellTypeError(attr, i, row[col])
			}
			if attr.Kind == dataset.KindNominal && !contains(attr.Labels, v) {
				return fmt.Errorf("%w: row %d: %q outside the domain of %q",
					dataset.ErrSchemaViolation, i, v, attr.Name)
			}
			sb.Append(v)
		}
	default:
		return fmt.Errorf("%w: cannot encode %s attribute %q",
			dataset.ErrUnsupportedFeature, attr.Kind, attr.Name)
	}
	return nil
}

func cellTypeError(attr dataset.Attribute, row int, v any) error {
	return fmt.Errorf("%w: row %d: %s attribute %q holds %T",
		dataset.ErrInvalidArgument, row, attr.Kind, attr.Name, v)
}

// FromRecord rebuilds a dataset from an Arrow record. Records carry no
// relation name of their own, so the caller supplies it together with the
// dataset schema the record must match.
func FromRecord(relation string, schema dataset.Schema, rec arrow.Record) (*dataset.Dataset, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", dataset.ErrInvalidArgument)
	}
	expected, err := SchemaToArrow(schema)
	if err != nil {
		return nil, err
	}
	if err := matchSchema(rec.Schema(), expected); err != nil {
		return nil, err
	}
	rows, err := decodeRows(schema, rec)
	if err != nil {
		return nil, err
	}
	return dataset.New(relation, schema.Clone(), rows, "")
}

// matchSchema checks a record's Arrow schema against the expected field
// layout by name and type.
func matchSchema(actual, expected *arrow.Schema) error {
	if actual.NumFields() != expected.NumFields() {
		return fmt.Errorf("%w: record has %d columns, schema has %d",
			dataset.ErrSchemaMismatch, actual.NumFields(), expected.NumFields())
	}
	for i := 0; i < actual.NumFields(); i++ {
		af, ef := actual.Field(i), expected.Field(i)
		if af.Name != ef.Name {
			return fmt.Errorf("%w: column %d is named %q, schema has %q",
				dataset.ErrSchemaMismatch, i, af.Name, ef.Name)
		}
		if !arrow.TypeEqual(af.Type, ef.Type) {
			return fmt.Errorf("%w: column %q has Arrow type %s, schema maps to %s",
				dataset.ErrSchemaMismatch, af.Name, af.Type, ef.Type)
		}
	}
	return nil
}

func decodeRows(schema dataset.Schema, rec arrow.Record) ([]dataset.Row, error) {
	n := int(rec.NumRows())
	rows := make([]dataset.Row, n)
	for i := range rows {
		rows[i] = make(dataset.Row, len(schema))
	}

	for j, attr := range schema {
		col := rec.Column(j)
		switch attr.Kind {
		case dataset.KindNumeric:
			c, ok := col.(*array.Float64)
			if !ok {
				return nil, columnTypeError(j, attr)
			}
			for i := 0; i < n; i++ {
				if !c.IsNull(i) {
					rows[i][j] = c.Value(i)
				}
			}
		case dataset.KindInteger:
			c, ok := col.(*array.Int64)
			if !ok {
				return nil, columnTypeError(j, attr)
			}
			for i := 0; i < n; i++ {
				if !c.IsNull(i) {
					rows[i][j] = c.Value(i)
				}
			}
		case dataset.KindString:
			c, ok := col.(*array.String)
			if !ok {
				return nil, columnTypeError(j, attr)
			}
			for i := 0; i < n; i++ {
				if !c.IsNull(i) {
					rows[i][j] = c.Value(i)
				}
			}
		case dataset.KindNominal:
			c, ok := col.(*array.String)
			if !ok {
				return nil, columnTypeError(j, attr)
			}
			for i := 0; i < n; i++ {
				if c.IsNull(i) {
					continue
				}
				v := c.Value(i)
				if !contains(attr.Labels, v) {
					return nil, fmt.Errorf("%w: row %d: %q outside the domain of %q",
						dataset.ErrSchemaViolation, i, v, attr.Name)
				}
				rows[i][j] = v
			}
		default:
			return nil, fmt.Errorf("%w: cannot decode %s attribute %q",
				dataset.ErrUnsupportedFeature, attr.Kind, attr.Name)
		}
	}
	return rows, nil
}

func columnTypeError(col int, attr dataset.Attribute) error {
	return fmt.Errorf("%w: column %d (%s) is not a %s array",
		dataset.ErrSchemaMismatch, col, attr.Name, attr.Kind)
}

func contains(labels []string, v string) bool {
	for _, label := range labels {
		if label == v {
			return true
		}
	}
	return false
}
