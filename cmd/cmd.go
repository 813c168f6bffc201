// Package cmd defines the command-line interface for pepalyzer.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/pepalyzer/internal/contract"
	"github.com/huangsam/pepalyzer/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(signalsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("since", contract.DefaultSince, "Lower time bound in ISO8601, date, or time ago (e.g. '2 weeks ago')")
	rootCmd.PersistentFlags().String("until", "", "Upper time bound in ISO8601, date, or time ago")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or table or json or csv or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("order", string(schema.NumberOrder), "Ordering: number or activity")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of PEPs to display (0 = no limit)")
	rootCmd.PersistentFlags().Bool("metadata", true, "Read PEP documents and merge header metadata")
	rootCmd.PersistentFlags().Bool("signals", true, "Detect editorial signals in PEP documents")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
