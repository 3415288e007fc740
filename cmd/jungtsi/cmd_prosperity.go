package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jungtsi/internal/format"
	"jungtsi/internal/prosperity"
	"jungtsi/internal/report"
)

var prosperityFlags struct {
	eventType string
	eventDate string
	eventHour int
	output    string
}

var prosperityCmd = &cobra.Command{
	Use:   "prosperity",
	Short: "Assess the auspiciousness of an event date and hour",
	RunE:  runProsperity,
}

func init() {
	f := prosperityCmd.Flags()
	f.StringVar(&prosperityFlags.eventType, "event-type", "", "Event type, e.g. birthday, undertaking, funeral (required)")
	f.StringVar(&prosperityFlags.eventDate, "date", "", "Event date as YYYY-MM-DD (required)")
	f.IntVar(&prosperityFlags.eventHour, "hour", 12, "Hour of the event, 0-23")
	f.StringVar(&prosperityFlags.output, "output", "table", "Output format: table, markdown or json")

	_ = prosperityCmd.MarkFlagRequired("event-type")
	_ = prosperityCmd.MarkFlagRequired("date")
}

func runProsperity(cmd *cobra.Command, _ []string) error {
	eventType, err := prosperity.ParseEventType(prosperityFlags.eventType)
	if err != nil {
		return err
	}
	eventDate, err := time.Parse("2006-01-02", prosperityFlags.eventDate)
	if err != nil {
		return fmt.Errorf("--date must be YYYY-MM-DD")
	}
	if y := eventDate.Year(); y < report.MinYear || y > report.MaxYear {
		return fmt.Errorf("event year must be between %d and %d", report.MinYear, report.MaxYear)
	}

	assessment, err := prosperity.Assess(eventType, eventDate, prosperityFlags.eventHour)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch prosperityFlags.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	case "markdown":
		fmt.Fprintln(out, format.Assessment(assessment, format.Markdown))
	case "table":
		fmt.Fprintln(out, format.Assessment(assessment, format.ASCII))
	default:
		return fmt.Errorf("unknown output format %q", prosperityFlags.output)
	}
	return nil
}
