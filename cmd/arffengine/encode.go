package main

import (
	"github.com/spf13/cobra"
)

var (
	encodeAttribute string
	encodeOutput    string
	encodeFormat    string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "One-of-k encode a nominal attribute",
	Long: `Replaces a nominal attribute with one numeric 0/1 column per domain
label, in place. Missing cells encode as all zeros.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeAttribute, "attribute", "a", "", "nominal attribute to encode")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output path (default ARFF on stdout)")
	encodeCmd.Flags().StringVarP(&encodeFormat, "format", "f", "", "output format for --output (default from config)")
	_ = encodeCmd.MarkFlagRequired("attribute")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}
	out, labels, err := engineFor(cmd).DummyEncode(ds, encodeAttribute)
	if err != nil {
		return err
	}
	cmd.PrintErrf("encoded %q into %d columns\n", encodeAttribute, len(labels))
	return writeResult(cmd, out, encodeOutput, resolveFormat(encodeFormat))
}
