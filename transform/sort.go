package transform

import (
	"fmt"
	"math"
	"sort"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// SortBy stably sorts the dataset's rows in ascending order of the named
// attribute and returns the same dataset. Numeric and integer attributes
// compare numerically, string and nominal attributes lexicographically;
// missing cells order before any value. Rows with equal keys keep their
// relative order.
func (e *Engine) SortBy(ds *dataset.Dataset, name string) (*dataset.Dataset, error) {
	if err := ds.ValidateShape(); err != nil {
		return nil, err
	}
	col := ds.Schema.IndexOf(name)
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", dataset.ErrAttributeNotFound, name)
	}

	kind := ds.Schema[col].Kind
	sort.SliceStable(ds.Rows, func(i, j int) bool {
		return lessCell(kind, ds.Rows[i][col], ds.Rows[j][col])
	})
	return ds, nil
}

// lessCell orders two cells of one column under the column's kind.
func lessCell(kind dataset.Kind, a, b any) bool {
	if dataset.IsMissing(a) {
		return !dataset.IsMissing(b)
	}
	if dataset.IsMissing(b) {
		return false
	}
	switch kind {
	case dataset.KindNumeric, dataset.KindInteger:
		return asFloat(a) < asFloat(b)
	default:
		return asString(a) < asString(b)
	}
}

// asFloat widens the numeric cell representations for comparison.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return math.NaN()
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
