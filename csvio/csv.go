package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Write renders the dataset as CSV on w: a header row of attribute names
// followed by one record per data row. Missing cells become the ? marker;
// quoting is left to the CSV writer.
func Write(w io.Writer, ds *dataset.Dataset) error {
	if err := ds.ValidateShape(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, len(ds.Schema))
	for i, attr := range ds.Schema {
		header[i] = attr.Name
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(ds.Schema))
	for i, row := range ds.Rows {
		for j, cell := range row {
			text, err := cellText(cell)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			record[j] = text
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// String renders the dataset as a CSV string.
func String(ds *dataset.Dataset) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile writes the dataset to path as CSV, replacing any existing
// file.
func WriteFile(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := Write(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func cellText(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "?", nil
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64), nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	case int:
		return strconv.Itoa(c), nil
	case string:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unsupported cell type %T", dataset.ErrInvalidArgument, v)
	}
}
