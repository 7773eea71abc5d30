package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VanDung-dev/ARFF-Engine/batch"
	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

var (
	convertFormat string
	convertOutput string
	convertOutDir string
	convertJobs   int
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert dataset files between formats",
	Long: `Converts ARFF or Arrow IPC dataset files to ARFF, CSV, JSON or Arrow
IPC. Multiple inputs convert concurrently on a worker pool, each to a
sibling file with the target format's extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "output format: arff, csv, json or ipc (default from config)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output path, single input only")
	convertCmd.Flags().StringVar(&convertOutDir, "out-dir", "", "directory for converted files")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", 0, "concurrent conversions, 0 means one per CPU")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	format := resolveFormat(convertFormat)
	conv := batch.Converter{Missing: cfg.Missing, Format: format}

	if convertOutput != "" {
		if len(args) != 1 {
			return fmt.Errorf("%w: --output takes exactly one input file", dataset.ErrInvalidArgument)
		}
		if err := conv.Convert(cmd.Context(), args[0], convertOutput); err != nil {
			return err
		}
		cmd.Printf("converted %s -> %s\n", args[0], convertOutput)
		return nil
	}

	jobs := make([]batch.Job, len(args))
	for i, source := range args {
		jobs[i] = batch.Job{Source: source, Target: batch.TargetPath(source, convertOutDir, format)}
	}

	workers := convertJobs
	if workers == 0 {
		workers = cfg.Jobs
	}
	pool := batch.New(workers, conv.Convert)
	results := pool.Run(cmd.Context(), jobs)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			cmd.PrintErrf("failed %s: %v\n", res.Source, res.Err)
			continue
		}
		cmd.Printf("converted %s -> %s (%v)\n", res.Source, res.Target, res.Duration)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}
