// Package format renders reports and assessments for terminals. Tables
// go through go-pretty; a Mode selects fixed-width ASCII or Markdown
// output from the same data.
package format

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"jungtsi/internal/forecast"
	"jungtsi/internal/mewa"
	"jungtsi/internal/prosperity"
	"jungtsi/internal/report"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

func newWriter(m Mode) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// Report renders the full obstacle report: both year profiles, the
// Mewa numbers, and the findings with triggered ones detailed last.
func Report(r *report.Report, m Mode) string {
	var b strings.Builder

	b.WriteString("Astrological profile\n")
	pw := newWriter(m)
	pw.AppendHeader(table.Row{"", "Year", "Sign", "Position"})
	pw.AppendRow(table.Row{"Subject", r.SubjectProfile.Year, r.SubjectLabel, r.SubjectProfile.Position})
	pw.AppendRow(table.Row{"Reference", r.ReferenceProfile.Year, r.ReferenceLabel, r.ReferenceProfile.Position})
	b.WriteString(render(pw, m))
	b.WriteString("\n\nMewa numbers\n")

	mw := newWriter(m)
	mw.AppendHeader(table.Row{"Role", "Subject", "Reference"})
	mw.AppendRow(table.Row{"Life", mewaCell(r.SubjectMewas.Life), mewaCell(r.ReferenceMewas.Life)})
	mw.AppendRow(table.Row{"Body", mewaCell(r.SubjectMewas.Body), mewaCell(r.ReferenceMewas.Body)})
	mw.AppendRow(table.Row{"Power", mewaCell(r.SubjectMewas.Power), mewaCell(r.ReferenceMewas.Power)})
	b.WriteString(render(mw, m))

	fmt.Fprintf(&b, "\n\nObstacles for reference year %d\n", r.ReferenceProfile.Year)
	fw := newWriter(m)
	fw.AppendHeader(table.Row{"Code", "Obstacle", "Triggered"})
	for _, f := range r.Findings {
		fw.AppendRow(table.Row{string(f.Kind), f.Name, yesNo(f.Triggered)})
	}
	b.WriteString(render(fw, m))
	b.WriteString("\n")

	triggered := r.TriggeredFindings()
	if len(triggered) == 0 {
		b.WriteString("\nNo obstacles detected. The reference year conditions are favorable.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n%d obstacle(s) detected:\n", len(triggered))
	for i, f := range triggered {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, f.Name, f.Kind)
		if f.Interpretation != "" {
			fmt.Fprintf(&b, "   %s\n", f.Interpretation)
		} else {
			b.WriteString("   (no interpretation defined for this match)\n")
		}
	}
	return b.String()
}

// Assessment renders a prosperity assessment.
func Assessment(a *prosperity.Assessment, m Mode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Prosperity assessment: %s on %s, hour %d\n", a.EventType, a.EventDate, a.EventHour)
	w := newWriter(m)
	w.AppendHeader(table.Row{"Factor", "Value"})
	w.AppendRow(table.Row{"Verdict", string(a.Verdict)})
	w.AppendRow(table.Row{"Event year sign", a.EventProfile.Label()})
	w.AppendRow(table.Row{"Day element", string(a.DayElement)})
	w.AppendRow(table.Row{"Hour animal", string(a.HourAnimal)})
	w.AppendRow(table.Row{"Hour element", string(a.HourElement)})
	b.WriteString(render(w, m))
	b.WriteString("\n\nReasoning:\n")
	for _, line := range a.Reasoning {
		fmt.Fprintf(&b, "  - %s\n", line)
	}
	return b.String()
}

// Forecast renders a multi-year scan as one row per reference year.
func Forecast(results []forecast.YearResult, m Mode) string {
	var b strings.Builder

	w := newWriter(m)
	w.AppendHeader(table.Row{"Year", "Sign", "Age", "Obstacles"})
	obstacleYears := 0
	for _, res := range results {
		cell := "-"
		if len(res.TriggeredKinds) > 0 {
			obstacleYears++
			codes := make([]string, len(res.TriggeredKinds))
			for i, k := range res.TriggeredKinds {
				codes[i] = string(k)
			}
			cell = strings.Join(codes, ", ")
		}
		w.AppendRow(table.Row{res.Year, res.Label, res.Age, cell})
	}
	b.WriteString(render(w, m))
	fmt.Fprintf(&b, "\n\n%d of %d years carry at least one obstacle.\n", obstacleYears, len(results))
	return b.String()
}

// mewaCell shows a Mewa value as "4 Green (Wood)".
func mewaCell(v mewa.Value) string {
	return fmt.Sprintf("%d %s (%s)", v.Number, v.Color, v.Element)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
