// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/base-converter/internal/baseconv"
)

var validateCmd = &cobra.Command{
	Use:   "validate [number]",
	Short: "Check that a number is well-formed for a base",
	Long: `Validate checks that every digit of the number maps to a value below the
base, that at most one leading sign appears, and that the input is not
empty. Exits non-zero when the number is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _ := cmd.Flags().GetInt("base")
		if err := baseconv.Validate(args[0], base); err != nil {
			return err
		}
		fmt.Printf("%s is a valid base-%d number\n", args[0], base)
		return nil
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect [number]",
	Short: "Guess the base of a number from its radix prefix",
	Long: `Detect prints the base implied by the number's radix prefix: 0x is 16,
0b is 2, 0o is 8, anything else is 10. This is a heuristic; unprefixed
hex digits still detect as 10.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(baseconv.DetectBase(args[0]))
	},
}

func init() {
	validateCmd.Flags().Int("base", 10, "base to validate against")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(detectCmd)
}
