package main

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"jungtsi/internal/format"
	"jungtsi/internal/report"
	"jungtsi/internal/store"
)

var historyFlags struct {
	dbPath string
	limit  int
}

var historyCmd = &cobra.Command{
	Use:   "history [report-id]",
	Short: "List archived reports, or show one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyFlags.dbPath, "db", store.DefaultDBPath, "Path to the report archive database")
	f.IntVar(&historyFlags.limit, "limit", 0, "Maximum number of reports to list (0 = default)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	archive, err := store.Open(historyFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer archive.Close()

	out := cmd.OutOrStdout()

	if len(args) == 1 {
		rec, err := archive.Get(args[0])
		if err != nil {
			return err
		}
		var rep report.Report
		if err := json.Unmarshal(rec.Payload, &rep); err != nil {
			return fmt.Errorf("decode archived report: %w", err)
		}
		fmt.Fprintf(out, "Report %s (archived %s)\n\n", rec.ID, rec.CreatedAt)
		fmt.Fprintln(out, format.Report(&rep, format.ASCII))
		return nil
	}

	recs, err := archive.List(historyFlags.limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(out, "No archived reports.")
		return nil
	}

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"ID", "Birth", "Reference", "Age", "Gender", "Status", "Obstacles", "Created"})
	for _, rec := range recs {
		w.AppendRow(table.Row{
			rec.ID, rec.BirthYear, rec.ReferenceYear, rec.Age,
			rec.Gender, rec.Status, rec.TriggeredCount, rec.CreatedAt,
		})
	}
	fmt.Fprintln(out, w.Render())
	return nil
}
