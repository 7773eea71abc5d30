package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Describe a dataset file",
	Long: `Prints the relation name, row count and attribute layout of an ARFF or
Arrow IPC dataset file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	missing := 0
	for _, row := range ds.Rows {
		for _, cell := range row {
			if dataset.IsMissing(cell) {
				missing++
			}
		}
	}

	cmd.Printf("Relation: %s\n", ds.Relation)
	cmd.Printf("Rows: %d\n", ds.NumRows())
	cmd.Printf("Missing cells: %d\n", missing)
	cmd.Printf("Attributes: %d\n", ds.NumAttributes())

	width := 0
	for _, attr := range ds.Schema {
		if len(attr.Name) > width {
			width = len(attr.Name)
		}
	}
	for _, attr := range ds.Schema {
		line := fmt.Sprintf("  %-*s %s", width, attr.Name, attr.Kind)
		if attr.Kind == dataset.KindNominal {
			line += " {" + strings.Join(attr.Labels, ", ") + "}"
		}
		cmd.Println(line)
	}

	if ds.Description != "" {
		cmd.Println("Description:")
		for _, line := range strings.Split(ds.Description, "\n") {
			cmd.Println("  " + line)
		}
	}
	return nil
}
