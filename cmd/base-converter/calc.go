// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/base-converter/internal/baseconv"
	"github.com/pdiddy/base-converter/pkg/types"
)

var calcCmd = &cobra.Command{
	Use:   "calc [op] [a] [b]",
	Short: "Compute a op b with both operands and the result in one base",
	Long: `Calc parses both operands in the given base, applies the operation with
arbitrary-precision integer semantics, and prints the result in the same
base. Operations: add, subtract, multiply, divide, modulo, power (or the
symbols +, -, *, /, %, ^). Division truncates toward zero.`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	op, err := baseconv.ParseOp(args[0])
	if err != nil {
		return err
	}
	a, b := args[1], args[2]
	base, _ := cmd.Flags().GetInt("base")

	result, err := baseconv.Arithmetic(op, a, b, base)
	if err != nil {
		return err
	}
	fmt.Println(result)

	recordOperation(cmd, types.OperationRecord{
		Kind:       types.KindCalc,
		Expression: fmt.Sprintf("%s %s %s", a, op, b),
		SourceBase: base,
		TargetBase: base,
		Result:     result,
	})
	return nil
}

func init() {
	calcCmd.Flags().Int("base", 10, "base for both operands and the result")

	rootCmd.AddCommand(calcCmd)
}
