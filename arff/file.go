package arff

import (
	"fmt"
	"os"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// ResolveMissing normalizes the missing-value specification accepted by
// ReadFile: nil means no extra tokens, a string is a single token and a
// []string is a token set. Any other type fails with ErrInvalidArgument.
func ResolveMissing(spec any) ([]string, error) {
	switch v := spec.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return append([]string(nil), v...), nil
	default:
		return nil, fmt.Errorf("%w: missing specification must be nil, string or []string, got %T",
			dataset.ErrInvalidArgument, spec)
	}
}

// ReadFile loads an ARFF file. Raw data tokens matching the missing
// specification are normalized to the missing sentinel during the load,
// before any transform sees the dataset.
func ReadFile(path string, missing any) (*dataset.Dataset, error) {
	tokens, err := ResolveMissing(missing)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arff: %w", err)
	}
	ds, err := ParseWithMissing(data, tokens)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// WriteFile serializes the dataset to path, replacing any existing file.
func WriteFile(path string, ds *dataset.Dataset) error {
	data, err := Serialize(ds)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write arff: %w", err)
	}
	return nil
}
