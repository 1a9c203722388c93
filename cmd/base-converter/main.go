// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the base-converter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the base-converter CLI.
var rootCmd = &cobra.Command{
	Use:   "base-converter",
	Short: "Convert and compute numbers across bases 2-36",
	Long: `base-converter converts numeric values between bases 2 through 36 and
performs arbitrary-precision arithmetic on based numbers. Digits run 0-9
then A-Z; input is case-insensitive and output is uppercase.

Each operation is a subcommand: convert, calc, validate, detect, and
batch. Successful operations are recorded in a local history database;
use the history subcommand to list, export, or clear them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./base-converter.yaml or ~/.config/base-converter/config.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory for the history database (default: history)")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this operation in history")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("base-converter")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "base-converter"))
		}
	}

	viper.SetDefault("history.dir", "history")
	viper.SetDefault("history.max_results", 20)
	viper.SetDefault("convert.target_base", 10)

	viper.SetEnvPrefix("BASE_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
