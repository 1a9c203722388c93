// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/base-converter/internal/batch"
	"github.com/pdiddy/base-converter/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input-file]",
	Short: "Convert a file of numbers, one per line",
	Long: `Batch reads based numbers from a file, one per line, and converts each
to the target base. Converted values go to --output (or stdout), one per
line; per-line status and a summary go to stderr. Blank lines and lines
starting with '#' are skipped. With --detect each line's source base is
taken from its radix prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	defaults := convertConfig(cmd)
	detect, _ := cmd.Flags().GetBool("detect")
	output, _ := cmd.Flags().GetString("output")

	cfg := types.BatchConfig{
		SourceBase: defaults.SourceBase,
		TargetBase: defaults.TargetBase,
		Detect:     detect || defaults.SourceBase == 0,
		OutputPath: output,
	}

	result, err := batch.ProcessFile(cfg, args[0], os.Stderr)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d line(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().Int("from", 0, "source base for every line (0 = detect from prefix)")
	batchCmd.Flags().Int("to", 0, "target base (default from config, normally 10)")
	batchCmd.Flags().Bool("detect", false, "detect each line's base from its radix prefix")
	batchCmd.Flags().String("output", "", "file for converted values (default stdout)")

	rootCmd.AddCommand(batchCmd)
}
