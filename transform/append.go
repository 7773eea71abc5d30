package transform

import (
	"fmt"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Append returns a new dataset holding a's rows followed by b's. The two
// schemas must agree position by position: equal names, equal label order
// for nominal pairs, equal kinds otherwise. Relation and description come
// from a; differing descriptions are reported through Warnf and a's wins.
// Either side may hold zero rows, so appending into an empty shell works.
func (e *Engine) Append(a, b *dataset.Dataset) (*dataset.Dataset, error) {
	if err := a.ValidateShape(); err != nil {
		return nil, err
	}
	if err := b.ValidateShape(); err != nil {
		return nil, err
	}
	if len(a.Schema) != len(b.Schema) {
		return nil, fmt.Errorf("%w: %d attributes vs %d",
			dataset.ErrSchemaMismatch, len(a.Schema), len(b.Schema))
	}
	for i := range a.Schema {
		if err := compatibleAt(a.Schema[i], b.Schema[i], i); err != nil {
			return nil, err
		}
	}
	if a.Description != b.Description {
		e.warnf("append: descriptions differ, keeping %q", a.Description)
	}

	rows := make([]dataset.Row, 0, len(a.Rows)+len(b.Rows))
	for _, row := range a.Rows {
		rows = append(rows, row.Clone())
	}
	for _, row := range b.Rows {
		rows = append(rows, row.Clone())
	}
	return &dataset.Dataset{
		Relation:    a.Relation,
		Schema:      a.Schema.Clone(),
		Rows:        rows,
		Description: a.Description,
	}, nil
}

// compatibleAt checks one schema position for append compatibility.
// Nominal pairs must share the exact label order; every other pair must
// share the kind.
func compatibleAt(a, b dataset.Attribute, pos int) error {
	if a.Name != b.Name {
		return fmt.Errorf("%w: position %d names %q vs %q",
			dataset.ErrSchemaMismatch, pos, a.Name, b.Name)
	}
	if a.Kind == dataset.KindNominal && b.Kind == dataset.KindNominal {
		if !a.Equal(b) {
			return fmt.Errorf("%w: position %d (%s) domains %v vs %v",
				dataset.ErrSchemaMismatch, pos, a.Name, a.Labels, b.Labels)
		}
		return nil
	}
	if a.Kind != b.Kind {
		return fmt.Errorf("%w: position %d (%s) kinds %s vs %s",
			dataset.ErrSchemaMismatch, pos, a.Name, a.Kind, b.Kind)
	}
	return nil
}
