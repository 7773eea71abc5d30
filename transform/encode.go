package transform

import (
	"fmt"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// DummyEncode replaces the named nominal attribute with one numeric 0/1
// column per domain label, in place and at the same position. Per row the
// column matching the original value holds 1 and the rest hold 0; a
// missing or out-of-domain value yields all zeros, which is the expected
// outcome, not an error. It returns the mutated dataset and a copy of the
// domain so callers can map the new columns back to categories. A
// non-nominal attribute is reported through Warnf and the dataset comes
// back unchanged with a nil domain.
func (e *Engine) DummyEncode(ds *dataset.Dataset, name string) (*dataset.Dataset, []string, error) {
	if err := ds.ValidateShape(); err != nil {
		return nil, nil, err
	}
	col := ds.Schema.IndexOf(name)
	if col < 0 {
		return nil, nil, fmt.Errorf("%w: %q", dataset.ErrAttributeNotFound, name)
	}

	attr := ds.Schema[col]
	if attr.Kind != dataset.KindNominal {
		e.warnf("dummy encode: %q is %s, not nominal; dataset unchanged", name, attr.Kind)
		return ds, nil, nil
	}

	labels := append([]string(nil), attr.Labels...)

	schema := make(dataset.Schema, 0, len(ds.Schema)-1+len(labels))
	schema = append(schema, ds.Schema[:col]...)
	for _, label := range labels {
		schema = append(schema, dataset.Attribute{Name: label, Kind: dataset.KindNumeric})
	}
	schema = append(schema, ds.Schema[col+1:]...)

	for r, row := range ds.Rows {
		out := make(dataset.Row, 0, len(row)-1+len(labels))
		out = append(out, row[:col]...)
		for _, label := range labels {
			if cell, ok := row[col].(string); ok && cell == label {
				out = append(out, 1.0)
			} else {
				out = append(out, 0.0)
			}
		}
		out = append(out, row[col+1:]...)
		ds.Rows[r] = out
	}
	ds.Schema = schema

	return ds, labels, nil
}
