package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jungtsi/internal/format"
	"jungtsi/internal/report"
)

var calculateFlags struct {
	birthYear   int
	currentYear int
	age         int
	gender      string
	status      string
	output      string
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Evaluate the obstacle report for one person and one reference year",
	RunE:  runCalculate,
}

func init() {
	f := calculateCmd.Flags()
	f.IntVar(&calculateFlags.birthYear, "birth-year", 0, "Subject's birth year (required)")
	f.IntVar(&calculateFlags.currentYear, "current-year", 0, "Reference year to evaluate against (required)")
	f.IntVar(&calculateFlags.age, "age", 0, "Subject's age (required)")
	f.StringVar(&calculateFlags.gender, "gender", "", "Subject's gender: male or female (required)")
	f.StringVar(&calculateFlags.status, "status", "", "Social status: general, official, monastic, lay_practitioner, sex_worker")
	f.StringVar(&calculateFlags.output, "output", "table", "Output format: table, markdown or json")

	_ = calculateCmd.MarkFlagRequired("birth-year")
	_ = calculateCmd.MarkFlagRequired("current-year")
	_ = calculateCmd.MarkFlagRequired("age")
	_ = calculateCmd.MarkFlagRequired("gender")
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	rep, err := report.Build(report.Input{
		BirthYear:     calculateFlags.birthYear,
		ReferenceYear: calculateFlags.currentYear,
		Age:           calculateFlags.age,
		Gender:        calculateFlags.gender,
		Status:        calculateFlags.status,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch calculateFlags.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "markdown":
		fmt.Fprintln(out, format.Report(rep, format.Markdown))
	case "table":
		fmt.Fprintln(out, format.Report(rep, format.ASCII))
	default:
		return fmt.Errorf("unknown output format %q", calculateFlags.output)
	}
	return nil
}
