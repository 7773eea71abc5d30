package jsonio

import (
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Marshal renders the dataset as a JSON array of objects, one object per
// row keyed by attribute name. Missing cells become null.
func Marshal(ds *dataset.Dataset) ([]byte, error) {
	if err := ds.ValidateShape(); err != nil {
		return nil, err
	}

	objects := make([]map[string]any, len(ds.Rows))
	for i, row := range ds.Rows {
		obj := make(map[string]any, len(ds.Schema))
		for j, attr := range ds.Schema {
			obj[attr.Name] = row[j]
		}
		objects[i] = obj
	}

	data, err := json.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("encode json rows: %w", err)
	}
	return data, nil
}

// WriteFile writes the dataset to path as JSON rows, replacing any
// existing file.
func WriteFile(path string, ds *dataset.Dataset) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// Unmarshal loads a JSON array of objects into a dataset under the given
// relation and schema. Absent keys and nulls load as missing; object keys
// outside the schema are ignored.
func Unmarshal(data []byte, relation string, schema dataset.Schema) (*dataset.Dataset, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	var objects []map[string]any
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("%w: decode json rows: %v", dataset.ErrInvalidArgument, err)
	}

	rows := make([]dataset.Row, len(objects))
	for i, obj := range objects {
		row := make(dataset.Row, len(schema))
		for j, attr := range schema {
			cell, err := cellFromJSON(attr, obj[attr.Name])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row[j] = cell
		}
		rows[i] = row
	}
	return dataset.New(relation, schema.Clone(), rows, "")
}

// cellFromJSON converts one decoded JSON value under the attribute's kind.
// JSON numbers arrive as float64; integer cells must hold a whole value in
// the int64 range.
func cellFromJSON(attr dataset.Attribute, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch attr.Kind {
	case dataset.KindNumeric:
		f, ok := v.(float64)
		if !ok {
			return nil, jsonTypeError(attr, v)
		}
		return f, nil
	case dataset.KindInteger:
		f, ok := v.(float64)
		if !ok {
			return nil, jsonTypeError(attr, v)
		}
		if f != math.Trunc(f) || f < -9223372036854775808.0 || f >= 9223372036854775808.0 {
			return nil, fmt.Errorf("%w: %v is not a valid %q cell", dataset.ErrSchemaViolation, f, attr.Name)
		}
		return int64(f), nil
	case dataset.KindString:
		s, ok := v.(string)
		if !ok {
			return nil, jsonTypeError(attr, v)
		}
		return s, nil
	case dataset.KindNominal:
		s, ok := v.(string)
		if !ok {
			return nil, jsonTypeError(attr, v)
		}
		for _, label := range attr.Labels {
			if label == s {
				return s, nil
			}
		}
		return nil, fmt.Errorf("%w: %q outside the domain of %q", dataset.ErrSchemaViolation, s, attr.Name)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s attribute %q",
			dataset.ErrUnsupportedFeature, attr.Kind, attr.Name)
	}
}

func jsonTypeError(attr dataset.Attribute, v any) error {
	return fmt.Errorf("%w: %s attribute %q holds %T", dataset.ErrSchemaViolation, attr.Kind, attr.Name, v)
}
