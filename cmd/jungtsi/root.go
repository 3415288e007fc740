package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "jungtsi",
	Short: "Nine Palaces obstacle calculator",
	Long: "Jungtsi resolves years to their sexagenary signs and Mewa numbers\n" +
		"and evaluates the four obstacle conditions of the Nine Palaces\n" +
		"outer calculation for a person against a reference year.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(prosperityCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
