package main

import (
	"github.com/spf13/cobra"
)

var (
	mergeKey     string
	mergeColumns []string
	mergeOutput  string
	mergeFormat  string
)

var mergeCmd = &cobra.Command{
	Use:   "merge [primary] [secondary]",
	Short: "Merge columns from a second dataset by key",
	Long: `Joins the named columns of the secondary dataset onto the primary by a
shared key attribute. Primary rows keep their order; rows whose key has
no match in the secondary are dropped with a warning.`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeKey, "key", "k", "", "join key attribute present in both datasets")
	mergeCmd.Flags().StringSliceVarP(&mergeColumns, "columns", "c", nil, "secondary columns to bring over")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output path (default ARFF on stdout)")
	mergeCmd.Flags().StringVarP(&mergeFormat, "format", "f", "", "output format for --output (default from config)")
	_ = mergeCmd.MarkFlagRequired("key")
	_ = mergeCmd.MarkFlagRequired("columns")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	primary, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	secondary, err := loadDataset(args[1])
	if err != nil {
		return err
	}
	out, err := engineFor(cmd).Merge(primary, secondary, mergeKey, mergeColumns)
	if err != nil {
		return err
	}
	return writeResult(cmd, out, mergeOutput, resolveFormat(mergeFormat))
}
