package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/VanDung-dev/ARFF-Engine/arff"
	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// GeneratorConfig holds configuration for the dataset generator.
type GeneratorConfig struct {
	OutFile     string
	Relation    string
	Rows        int
	NumericCols int
	IntegerCols int
	NominalCols int
	StringCols  int
	Labels      int
	MissingPct  float64
	Seed        int64
}

func main() {
	config := parseFlags()

	fmt.Println("=== ARFF Engine Dataset Generator ===")
	fmt.Printf("Relation: %s\n", config.Relation)
	fmt.Printf("Rows: %d\n", config.Rows)
	fmt.Printf("Columns: %d numeric, %d integer, %d nominal, %d string\n",
		config.NumericCols, config.IntegerCols, config.NominalCols, config.StringCols)
	fmt.Printf("Missing: %.1f%%\n", config.MissingPct*100)
	fmt.Println()

	start := time.Now()

	ds, err := generate(config)
	if err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	if err := arff.WriteFile(config.OutFile, ds); err != nil {
		log.Fatalf("Failed to write %s: %v", config.OutFile, err)
	}

	info, err := os.Stat(config.OutFile)
	if err != nil {
		log.Fatalf("Failed to stat %s: %v", config.OutFile, err)
	}

	fmt.Printf("Wrote %s (%d rows, %d bytes) in %v\n",
		config.OutFile, ds.NumRows(), info.Size(), time.Since(start).Round(time.Millisecond))
}

func parseFlags() GeneratorConfig {
	config := GeneratorConfig{}

	flag.StringVar(&config.OutFile, "o", "generated.arff", "Output ARFF file")
	flag.StringVar(&config.Relation, "relation", "synthetic", "Relation name")
	flag.IntVar(&config.Rows, "rows", 10000, "Number of data rows")
	flag.IntVar(&config.NumericCols, "numeric", 4, "Number of NUMERIC attributes")
	flag.IntVar(&config.IntegerCols, "integer", 2, "Number of INTEGER attributes")
	flag.IntVar(&config.NominalCols, "nominal", 2, "Number of nominal attributes")
	flag.IntVar(&config.StringCols, "string", 1, "Number of STRING attributes")
	flag.IntVar(&config.Labels, "labels", 5, "Domain size of each nominal attribute")
	flag.Float64Var(&config.MissingPct, "missing", 0.05, "Fraction of cells left missing (0..1)")
	flag.Int64Var(&config.Seed, "seed", 1, "Random seed (same seed, same dataset)")

	flag.Parse()

	return config
}

func generate(config GeneratorConfig) (*dataset.Dataset, error) {
	rng := rand.New(rand.NewSource(config.Seed))

	schema := buildSchema(config)
	rows := make([]dataset.Row, config.Rows)
	for r := range rows {
		row := make(dataset.Row, len(schema))
		for c, attr := range schema {
			if rng.Float64() < config.MissingPct {
				continue
			}
			row[c] = cell(rng, attr, r)
		}
		rows[r] = row
	}

	description := fmt.Sprintf("Synthetic dataset generated with seed %d.", config.Seed)
	return dataset.New(config.Relation, schema, rows, description)
}

func buildSchema(config GeneratorConfig) dataset.Schema {
	var schema dataset.Schema
	for i := 0; i < config.NumericCols; i++ {
		schema = append(schema, dataset.Attribute{Name: fmt.Sprintf("num%d", i), Kind: dataset.KindNumeric})
	}
	for i := 0; i < config.IntegerCols; i++ {
		schema = append(schema, dataset.Attribute{Name: fmt.Sprintf("int%d", i), Kind: dataset.KindInteger})
	}
	for i := 0; i < config.NominalCols; i++ {
		labels := make([]string, config.Labels)
		for j := range labels {
			labels[j] = fmt.Sprintf("cat%d_%d", i, j)
		}
		schema = append(schema, dataset.Attribute{Name: fmt.Sprintf("nom%d", i), Kind: dataset.KindNominal, Labels: labels})
	}
	for i := 0; i < config.StringCols; i++ {
		schema = append(schema, dataset.Attribute{Name: fmt.Sprintf("str%d", i), Kind: dataset.KindString})
	}
	return schema
}

func cell(rng *rand.Rand, attr dataset.Attribute, row int) any {
	switch attr.Kind {
	case dataset.KindNumeric:
		return rng.NormFloat64() * 10
	case dataset.KindInteger:
		return int64(rng.Intn(100000))
	case dataset.KindNominal:
		return attr.Labels[rng.Intn(len(attr.Labels))]
	default:
		return fmt.Sprintf("entry %d for %s", row, attr.Name)
	}
}
