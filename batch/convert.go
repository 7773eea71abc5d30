package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/VanDung-dev/ARFF-Engine/arff"
	"github.com/VanDung-dev/ARFF-Engine/csvio"
	"github.com/VanDung-dev/ARFF-Engine/dataset"
	"github.com/VanDung-dev/ARFF-Engine/frame"
	"github.com/VanDung-dev/ARFF-Engine/jsonio"
	"github.com/VanDung-dev/ARFF-Engine/transform"
)

// Converter is the conversion the CLI runs, single file or batched:
// load a dataset file, normalize missing tokens, write it back out in
// the configured format.
type Converter struct {
	// Missing lists raw tokens normalized to the missing sentinel.
	Missing []string
	// Format names the output encoding: arff, csv, json or ipc.
	Format string
}

// Convert implements ConvertFunc.
func (c Converter) Convert(ctx context.Context, source, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ds, err := c.Load(source)
	if err != nil {
		return err
	}
	return c.Write(target, ds)
}

// Load reads a dataset file by extension: .arff as ARFF text, .arrow or
// .ipc as an Arrow IPC stream. Missing tokens apply in both cases; for
// IPC input they run as a post-load pass over string cells.
func (c Converter) Load(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".arff":
		return arff.ReadFile(path, c.Missing)
	case ".arrow", ".ipc":
		ds, err := frame.ReadIPCFile(path)
		if err != nil {
			return nil, err
		}
		if len(c.Missing) > 0 {
			transform.New().NormalizeMissing(ds, c.Missing)
		}
		return ds, nil
	default:
		return nil, fmt.Errorf("%w: no reader for %q files", dataset.ErrUnsupportedFeature, filepath.Ext(path))
	}
}

// Write stores the dataset at path in the converter's format.
func (c Converter) Write(path string, ds *dataset.Dataset) error {
	switch c.Format {
	case "arff":
		return arff.WriteFile(path, ds)
	case "csv":
		return csvio.WriteFile(path, ds)
	case "json":
		return jsonio.WriteFile(path, ds)
	case "ipc":
		return frame.WriteIPCFile(path, ds)
	default:
		return fmt.Errorf("%w: unknown output format %q", dataset.ErrInvalidArgument, c.Format)
	}
}

// Extension returns the file extension for an output format, including
// the dot.
func Extension(format string) string {
	if format == "ipc" {
		return ".arrow"
	}
	return "." + format
}

// TargetPath places the converted name of source in dir, swapping the
// extension for the format's. An empty dir keeps the source directory.
func TargetPath(source, dir, format string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, base+Extension(format))
}
