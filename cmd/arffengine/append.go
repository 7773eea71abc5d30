package main

import (
	"github.com/spf13/cobra"
)

var (
	appendOutput string
	appendFormat string
)

var appendCmd = &cobra.Command{
	Use:   "append [base] [extra]",
	Short: "Append the rows of one dataset to another",
	Long: `Appends the rows of the second dataset to the first. Both datasets must
share the same attribute layout: names, kinds and nominal domains, in
order.`,
	Args: cobra.ExactArgs(2),
	RunE: runAppend,
}

func init() {
	appendCmd.Flags().StringVarP(&appendOutput, "output", "o", "", "output path (default ARFF on stdout)")
	appendCmd.Flags().StringVarP(&appendFormat, "format", "f", "", "output format for --output (default from config)")
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	base, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	extra, err := loadDataset(args[1])
	if err != nil {
		return err
	}
	out, err := engineFor(cmd).Append(base, extra)
	if err != nil {
		return err
	}
	return writeResult(cmd, out, appendOutput, resolveFormat(appendFormat))
}
