package main

import (
	"github.com/spf13/cobra"
)

var (
	sortBy     string
	sortOutput string
	sortFormat string
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort a dataset by one attribute",
	Long: `Stable-sorts the rows by the named attribute. Numeric and integer
attributes order numerically, all others by string value; missing cells
sort before present ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVar(&sortBy, "by", "", "attribute to sort by")
	sortCmd.Flags().StringVarP(&sortOutput, "output", "o", "", "output path (default ARFF on stdout)")
	sortCmd.Flags().StringVarP(&sortFormat, "format", "f", "", "output format for --output (default from config)")
	_ = sortCmd.MarkFlagRequired("by")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	out, err := engineFor(cmd).SortBy(ds, sortBy)
	if err != nil {
		return err
	}
	return writeResult(cmd, out, sortOutput, resolveFormat(sortFormat))
}
