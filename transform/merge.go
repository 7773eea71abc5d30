package transform

import (
	"fmt"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Merge left-joins the named secondary columns onto primary by joinKey.
// The key must exist on both sides and every requested column must exist
// in secondary and be absent from primary. Secondary is indexed by key
// once; on duplicate keys the last row wins. Primary rows without a match
// are dropped with a Warnf diagnostic naming the key. The result keeps
// primary's relation, appends the picked attributes in the given order
// and resets the description, which no longer describes either source.
func (e *Engine) Merge(primary, secondary *dataset.Dataset, joinKey string, columns []string) (*dataset.Dataset, error) {
	if err := primary.Validate(); err != nil {
		return nil, err
	}
	if err := secondary.Validate(); err != nil {
		return nil, err
	}

	keyPrimary := primary.Schema.IndexOf(joinKey)
	if keyPrimary < 0 {
		return nil, fmt.Errorf("%w: join key %q missing from %q",
			dataset.ErrAttributeNotFound, joinKey, primary.Relation)
	}
	keySecondary := secondary.Schema.IndexOf(joinKey)
	if keySecondary < 0 {
		return nil, fmt.Errorf("%w: join key %q missing from %q",
			dataset.ErrAttributeNotFound, joinKey, secondary.Relation)
	}

	pick := make([]int, 0, len(columns))
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		i := secondary.Schema.IndexOf(name)
		if i < 0 {
			return nil, fmt.Errorf("%w: column %q missing from %q",
				dataset.ErrAttributeNotFound, name, secondary.Relation)
		}
		if primary.Schema.Contains(name) || seen[name] {
			return nil, fmt.Errorf("%w: column %q already present in the merge result",
				dataset.ErrDuplicateAttribute, name)
		}
		seen[name] = true
		pick = append(pick, i)
	}

	// Single pass over the secondary side builds the join index.
	byKey := make(map[any]dataset.Row, len(secondary.Rows))
	for _, row := range secondary.Rows {
		byKey[row[keySecondary]] = row
	}

	schema := primary.Schema.Clone()
	for _, i := range pick {
		attr := secondary.Schema[i]
		attr.Labels = append([]string(nil), attr.Labels...)
		schema = append(schema, attr)
	}

	rows := make([]dataset.Row, 0, len(primary.Rows))
	for _, row := range primary.Rows {
		match, ok := byKey[row[keyPrimary]]
		if !ok {
			e.warnf("merge: no %q match for key %v, dropping row", joinKey, row[keyPrimary])
			continue
		}
		out := row.Clone()
		for _, i := range pick {
			out = append(out, match[i])
		}
		rows = append(rows, out)
	}

	return &dataset.Dataset{
		Relation: primary.Relation,
		Schema:   schema,
		Rows:     rows,
	}, nil
}
