// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch converts files of based numbers line by line, streaming
// per-line status and returning a summary.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/base-converter/internal/baseconv"
	"github.com/pdiddy/base-converter/pkg/types"
)

// Result holds the outcome of a batch conversion run.
type Result struct {
	Converted int
	Failed    int
	Skipped   int
}

// Total returns the total number of lines processed.
func (r Result) Total() int {
	return r.Converted + r.Failed + r.Skipped
}

// HasFailures reports whether any lines failed conversion.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Process reads based numbers from r, one per line, converts each to
// the configured target base, and writes converted values to out, one
// per line. Blank lines and lines starting with '#' are skipped. Lines
// that fail validation are reported on status and omitted from out.
// Per-line status and the final summary go to status.
func Process(cfg types.BatchConfig, r io.Reader, out, status io.Writer) (Result, error) {
	var result Result

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			result.Skipped++
			continue
		}

		sourceBase := cfg.SourceBase
		if cfg.Detect {
			sourceBase = baseconv.DetectBase(line)
		}

		converted, err := baseconv.ConvertBase(line, sourceBase, cfg.TargetBase)
		if err != nil {
			fmt.Fprintf(status, "failed:    line %d: %q (%v)\n", lineNo, line, err)
			result.Failed++
			continue
		}

		if _, err := fmt.Fprintln(out, converted); err != nil {
			return result, fmt.Errorf("writing output: %w", err)
		}
		fmt.Fprintf(status, "converted: line %d: %s -> %s\n", lineNo, line, converted)
		result.Converted++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprintf(status, "\nBatch summary: %d converted, %d failed, %d skipped (total: %d)\n",
		result.Converted, result.Failed, result.Skipped, result.Total())
	return result, nil
}

// ProcessFile opens inputPath and runs Process. When cfg.OutputPath is
// set the converted values are written there, otherwise to stdout.
func ProcessFile(cfg types.BatchConfig, inputPath string, status io.Writer) (Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return Result{}, fmt.Errorf("creating %s: %w", cfg.OutputPath, err)
		}
		defer f.Close()
		out = f
	}

	return Process(cfg, in, out, status)
}
