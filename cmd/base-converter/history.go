// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/base-converter/internal/history"
	"github.com/pdiddy/base-converter/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the operation history (list, export, clear)",
	Long: `History manages a local SQLite database of completed conversions and
calculations. Use subcommands to list recorded operations, export them
to YAML or JSON, or clear the database.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded operations, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), queryOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.OperationRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No history recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-8s  %-30s  %-6s  %-6s  %-22s  %s\n",
		"ID", "Kind", "Expression", "From", "To", "Result", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range records {
		expr := r.Expression
		if len(expr) > 30 {
			expr = expr[:27] + "..."
		}
		result := r.Result
		if len(result) > 22 {
			result = result[:19] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-6d  %-8s  %-30s  %-6d  %-6d  %-22s  %s\n",
			r.ID, r.Kind, expr, r.SourceBase, r.TargetBase, result,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(os.Stdout, "\n%d operations\n", len(records))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to YAML or JSON",
	Long: `Export writes the full history (or a filtered subset) to export.yaml or
export.json in the history directory. Supports the same filter flags as
list for partial exports.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := historyConfig(cmd)
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to", filepath.Join(cfg.HistoryDir, "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to", filepath.Join(cfg.HistoryDir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(historyConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

// --- shared helpers ---

// historyConfig resolves the history settings from flags and config.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history.dir")
	}
	maxResults, _ := cmd.Flags().GetInt("limit")
	if maxResults <= 0 {
		maxResults = viper.GetInt("history.max_results")
	}

	return types.HistoryConfig{
		HistoryDir: dir,
		MaxResults: maxResults,
		Disabled:   viper.GetBool("history.disabled"),
	}
}

func queryOptsFromFlags(cmd *cobra.Command) history.QueryOptions {
	kind, _ := cmd.Flags().GetString("kind")
	base, _ := cmd.Flags().GetInt("base")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.QueryOptions{
		Kind:       types.OperationKind(kind),
		Base:       base,
		MaxResults: limit,
	}
}

// recordOperation stores a completed operation unless history is
// disabled. Recording failures are warnings, not command failures.
func recordOperation(cmd *cobra.Command, rec types.OperationRecord) {
	noHistory, _ := cmd.Flags().GetBool("no-history")
	cfg := historyConfig(cmd)
	if noHistory || cfg.Disabled {
		return
	}

	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
}

func init() {
	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("kind", "", "filter by operation kind: convert or calc")
		c.Flags().Int("base", 0, "filter by source or target base")
		c.Flags().Int("limit", 0, "maximum number of results")
	}
	historyListCmd.Flags().Bool("json", false, "output results as JSON")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
