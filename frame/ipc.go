package frame

import (
	"bytes"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/ipc"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Marshal serializes a dataset to Arrow IPC stream bytes.
func Marshal(ds *dataset.Dataset) ([]byte, error) {
	rec, err := ToRecord(ds)
	if err != nil {
		return nil, err
	}
	defer rec.Release()

	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf, ipc.WithSchema(rec.Schema()))
	defer writer.Close()

	if err := writer.Write(rec); err != nil {
		return nil, fmt.Errorf("write ipc record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close ipc writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal reads the first record of an Arrow IPC stream back into a
// dataset. The relation name and description are recovered from the
// schema metadata Marshal writes.
func Unmarshal(data []byte) (*dataset.Dataset, error) {
	reader, err := ipc.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open ipc stream: %w", err)
	}
	defer reader.Release()

	if !reader.Next() {
		if reader.Err() != nil {
			return nil, reader.Err()
		}
		return nil, fmt.Errorf("%w: ipc stream holds no record", dataset.ErrInvalidArgument)
	}
	rec := reader.Record()

	schema, err := SchemaFromArrow(rec.Schema())
	if err != nil {
		return nil, err
	}
	rows, err := decodeRows(schema, rec)
	if err != nil {
		return nil, err
	}

	md := rec.Schema().Metadata()
	relation := ""
	if i := md.FindKey(relationKey); i >= 0 {
		relation = md.Values()[i]
	}
	if relation == "" {
		return nil, fmt.Errorf("%w: ipc schema carries no relation name", dataset.ErrInvalidSchema)
	}
	description := ""
	if i := md.FindKey(descriptionKey); i >= 0 {
		description = md.Values()[i]
	}
	return dataset.New(relation, schema, rows, description)
}

// WriteIPCFile writes the dataset to path as an Arrow IPC stream,
// replacing any existing file.
func WriteIPCFile(path string, ds *dataset.Dataset) error {
	data, err := Marshal(ds)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write ipc: %w", err)
	}
	return nil
}

// ReadIPCFile loads a dataset from an Arrow IPC stream file.
func ReadIPCFile(path string) (*dataset.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ipc: %w", err)
	}
	ds, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ds, nil
}
