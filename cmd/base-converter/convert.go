// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/base-converter/internal/baseconv"
	"github.com/pdiddy/base-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [number]",
	Short: "Convert a number from one base to another",
	Long: `Convert parses a number in the source base and renders it in the target
base. With --from 0 (the default) the source base is detected from the
radix prefix: 0x is 16, 0b is 2, 0o is 8, anything else is 10.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	number := args[0]
	cfg := convertConfig(cmd)

	from := cfg.SourceBase
	if from == 0 {
		from = baseconv.DetectBase(number)
	}

	result, err := baseconv.ConvertBase(number, from, cfg.TargetBase)
	if err != nil {
		return err
	}
	fmt.Println(result)

	recordOperation(cmd, types.OperationRecord{
		Kind:       types.KindConvert,
		Expression: number,
		SourceBase: from,
		TargetBase: cfg.TargetBase,
		Result:     result,
	})
	return nil
}

// convertConfig resolves conversion defaults from flags and config.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	from, _ := cmd.Flags().GetInt("from")
	if from == 0 {
		from = viper.GetInt("convert.source_base")
	}
	to, _ := cmd.Flags().GetInt("to")
	if to == 0 {
		to = viper.GetInt("convert.target_base")
	}

	return types.ConvertConfig{
		SourceBase: from,
		TargetBase: to,
	}
}

func init() {
	convertCmd.Flags().Int("from", 0, "source base (0 = detect from prefix)")
	convertCmd.Flags().Int("to", 0, "target base (default from config, normally 10)")

	rootCmd.AddCommand(convertCmd)
}
