package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VanDung-dev/ARFF-Engine/arff"
	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

const sampleARFF = `@RELATION readings
@ATTRIBUTE sensor {s1,s2}
@ATTRIBUTE value NUMERIC
@DATA
s1,1.5
s2,NA
s1,2.25
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sampleARFF), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestConverterARFFToCSV(t *testing.T) {
	dir := t.TempDir()
	source := writeSample(t, dir, "in.arff")
	target := filepath.Join(dir, "out.csv")

	c := Converter{Missing: []string{"NA"}, Format: "csv"}
	if err := c.Convert(context.Background(), source, target); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "sensor,value\n") {
		t.Errorf("Expected a header row, got %q", out)
	}
	if !strings.Contains(out, "s2,?\n") {
		t.Errorf("Expected the NA cell as ?, got %q", out)
	}
}

func TestConverterIPCRoundTrip(t *testing.T) {
	dir := t.TempDir()
	source := writeSample(t, dir, "in.arff")
	ipcPath := filepath.Join(dir, "mid.arrow")
	back := filepath.Join(dir, "back.arff")

	toIPC := Converter{Missing: []string{"NA"}, Format: "ipc"}
	if err := toIPC.Convert(context.Background(), source, ipcPath); err != nil {
		t.Fatalf("Convert to ipc failed: %v", err)
	}

	toARFF := Converter{Format: "arff"}
	if err := toARFF.Convert(context.Background(), ipcPath, back); err != nil {
		t.Fatalf("Convert from ipc failed: %v", err)
	}

	original, err := arff.ReadFile(source, "NA")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	reloaded, err := arff.ReadFile(back, nil)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !reloaded.Equal(original) {
		t.Errorf("IPC round trip changed the dataset\noriginal: %+v\nreloaded: %+v", original, reloaded)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	c := Converter{Format: "csv"}
	_, err := c.Load("data.txt")
	if !errors.Is(err, dataset.ErrUnsupportedFeature) {
		t.Errorf("Expected ErrUnsupportedFeature, got %v", err)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	ds, err := dataset.New("r",
		dataset.Schema{{Name: "a", Kind: dataset.KindNumeric}},
		[]dataset.Row{{1.0}}, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c := Converter{Format: "xml"}
	if err := c.Write(filepath.Join(t.TempDir(), "out.xml"), ds); !errors.Is(err, dataset.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestTargetPath(t *testing.T) {
	cases := []struct {
		source   string
		dir      string
		format   string
		expected string
	}{
		{filepath.Join("data", "in.arff"), "", "csv", filepath.Join("data", "in.csv")},
		{"in.arff", filepath.Join("tmp", "out"), "ipc", filepath.Join("tmp", "out", "in.arrow")},
		{filepath.Join("a", "b.arrow"), "", "arff", filepath.Join("a", "b.arff")},
		{"plain.arff", "", "json", "plain.json"},
	}
	for _, c := range cases {
		if got := TargetPath(c.source, c.dir, c.format); got != c.expected {
			t.Errorf("TargetPath(%q, %q, %q): expected %q, got %q",
				c.source, c.dir, c.format, c.expected, got)
		}
	}
}

func TestPoolConvertsBatch(t *testing.T) {
	dir := t.TempDir()
	sources := []string{
		writeSample(t, dir, "one.arff"),
		writeSample(t, dir, "two.arff"),
	}
	broken := filepath.Join(dir, "broken.arff")
	if err := os.WriteFile(broken, []byte("@DATA\nno header\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	sources = append(sources, broken)

	c := Converter{Missing: []string{"NA"}, Format: "csv"}
	jobs := make([]Job, len(sources))
	for i, source := range sources {
		jobs[i] = Job{Source: source, Target: TargetPath(source, "", "csv")}
	}

	pool := New(2, c.Convert)
	results := pool.Run(context.Background(), jobs)

	for i := 0; i < 2; i++ {
		if results[i].Err != nil {
			t.Errorf("Job %d: unexpected error %v", i, results[i].Err)
		}
		if _, err := os.Stat(jobs[i].Target); err != nil {
			t.Errorf("Job %d: missing output: %v", i, err)
		}
	}
	if results[2].Err == nil {
		t.Error("Expected the malformed file to fail")
	}

	stats := pool.Stats()
	if stats.Completed != 2 || stats.Failed != 1 {
		t.Errorf("Expected 2 completed, 1 failed, got %+v", stats)
	}
}
