package main

import (
	"github.com/spf13/cobra"

	"github.com/VanDung-dev/ARFF-Engine/arff"
	"github.com/VanDung-dev/ARFF-Engine/batch"
	"github.com/VanDung-dev/ARFF-Engine/config"
	"github.com/VanDung-dev/ARFF-Engine/dataset"
	"github.com/VanDung-dev/ARFF-Engine/transform"
)

var (
	cfgPath      string
	missingFlags []string

	// cfg holds the effective configuration for the running command. It
	// is loaded once per invocation in the persistent pre-run.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "arffengine",
	Short: "Load, transform and convert ARFF datasets",
	Long: `arffengine loads ARFF datasets, applies row and column transforms and
converts between ARFF, CSV, JSON and Arrow IPC files.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "arffengine.toml", "path to the TOML config file")
	rootCmd.PersistentFlags().StringSliceVar(&missingFlags, "missing", nil, "unquoted cell tokens read as missing values")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("missing") {
		cfg.Missing = missingFlags
	}
	return nil
}

// resolveFormat picks the per-command format flag when set and falls
// back to the configured default otherwise.
func resolveFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Format
}

// engineFor returns a transform engine whose warnings go to the
// command's error stream.
func engineFor(cmd *cobra.Command) *transform.Engine {
	e := transform.New()
	e.Warnf = func(format string, args ...any) {
		cmd.PrintErrf("warning: "+format+"\n", args...)
	}
	return e
}

// loadDataset reads an ARFF or Arrow IPC file with the configured
// missing-value tokens.
func loadDataset(path string) (*dataset.Dataset, error) {
	return batch.Converter{Missing: cfg.Missing}.Load(path)
}

// writeResult stores the dataset at path in the given format. An empty
// path prints the dataset as ARFF text on the command's output stream.
func writeResult(cmd *cobra.Command, ds *dataset.Dataset, path, format string) error {
	if path == "" {
		data, err := arff.Serialize(ds)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return batch.Converter{Format: format}.Write(path, ds)
}
