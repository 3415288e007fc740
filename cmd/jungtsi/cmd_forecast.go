package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jungtsi/internal/forecast"
	"jungtsi/internal/format"
)

var forecastFlags struct {
	birthYear int
	fromYear  int
	toYear    int
	age       int
	gender    string
	status    string
	workers   int
	output    string
}

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Scan a span of years for obstacle conditions",
	Long: "Evaluates every year in [from, to] as a reference year for the subject.\n" +
		"The --age flag is the subject's age in the from year; it advances by one\n" +
		"per year across the span.",
	RunE: runForecast,
}

func init() {
	f := forecastCmd.Flags()
	f.IntVar(&forecastFlags.birthYear, "birth-year", 0, "Subject's birth year (required)")
	f.IntVar(&forecastFlags.fromYear, "from", 0, "First reference year of the span (required)")
	f.IntVar(&forecastFlags.toYear, "to", 0, "Last reference year of the span (required)")
	f.IntVar(&forecastFlags.age, "age", 0, "Subject's age in the from year (required)")
	f.StringVar(&forecastFlags.gender, "gender", "", "Subject's gender: male or female (required)")
	f.StringVar(&forecastFlags.status, "status", "", "Social status (default general)")
	f.IntVar(&forecastFlags.workers, "workers", forecast.DefaultWorkers, "Concurrent evaluation workers")
	f.StringVar(&forecastFlags.output, "output", "table", "Output format: table, markdown or json")

	_ = forecastCmd.MarkFlagRequired("birth-year")
	_ = forecastCmd.MarkFlagRequired("from")
	_ = forecastCmd.MarkFlagRequired("to")
	_ = forecastCmd.MarkFlagRequired("age")
	_ = forecastCmd.MarkFlagRequired("gender")
}

func runForecast(cmd *cobra.Command, _ []string) error {
	results, err := forecast.Run(cmd.Context(), forecast.Input{
		BirthYear: forecastFlags.birthYear,
		FromYear:  forecastFlags.fromYear,
		ToYear:    forecastFlags.toYear,
		Age:       forecastFlags.age,
		Gender:    forecastFlags.gender,
		Status:    forecastFlags.status,
		Workers:   forecastFlags.workers,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch forecastFlags.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "markdown":
		fmt.Fprintln(out, format.Forecast(results, format.Markdown))
	case "table":
		fmt.Fprintln(out, format.Forecast(results, format.ASCII))
	default:
		return fmt.Errorf("unknown output format %q", forecastFlags.output)
	}
	return nil
}
