package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
	"jungtsi/internal/report"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Self-check the sexagenary and Mewa tables against known anchors",
	RunE:  runVerify,
}

// verifyAnchors are years with well-attested signs used as fixed points.
var verifyAnchors = []struct {
	year  int
	label string
}{
	{1984, "Wood-Yang-Rat"},
	{1990, "Metal-Yang-Horse"},
	{2000, "Metal-Yang-Dragon"},
	{2024, "Wood-Yang-Dragon"},
}

func runVerify(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	failures := 0

	check := func(name string, ok bool, detail string) {
		status := "ok"
		if !ok {
			status = "FAIL"
			failures++
		}
		fmt.Fprintf(out, "%-28s %s", name, status)
		if !ok && detail != "" {
			fmt.Fprintf(out, "  %s", detail)
		}
		fmt.Fprintln(out)
	}

	for _, a := range verifyAnchors {
		got := cycle.Resolve(a.year).Label()
		check(fmt.Sprintf("anchor %d", a.year), got == a.label,
			fmt.Sprintf("got %s, want %s", got, a.label))
	}

	periodic := true
	var periodicDetail string
	for y := report.MinYear; y+60 <= report.MaxYear; y++ {
		a, b := cycle.Resolve(y), cycle.Resolve(y+60)
		if a.Label() != b.Label() || a.Position != b.Position {
			periodic = false
			periodicDetail = fmt.Sprintf("%d and %d diverge", y, y+60)
			break
		}
	}
	check("60-year periodicity", periodic, periodicDetail)

	mewaAnchor := mewa.FromPosition(0)
	check("mewa anchor position 0",
		mewaAnchor.Life.Number == 1 && mewaAnchor.Body.Number == 4 && mewaAnchor.Power.Number == 7,
		fmt.Sprintf("got %d/%d/%d, want 1/4/7",
			mewaAnchor.Life.Number, mewaAnchor.Body.Number, mewaAnchor.Power.Number))

	rotation := true
	var rotationDetail string
	for pos := 0; pos < 60; pos++ {
		p := mewa.FromPosition(pos)
		if p.Body.Number != mewa.Rotate(p.Life.Number, 3) || p.Power.Number != mewa.Rotate(p.Body.Number, 3) {
			rotation = false
			rotationDetail = fmt.Sprintf("position %d breaks the +3 relation", pos)
			break
		}
		for _, n := range []int{p.Life.Number, p.Body.Number, p.Power.Number} {
			if n < 1 || n > 9 {
				rotation = false
				rotationDetail = fmt.Sprintf("position %d yields number %d", pos, n)
			}
		}
	}
	check("mewa +3 rotation", rotation, rotationDetail)

	colors := true
	var colorDetail string
	for n := 1; n <= 9; n++ {
		c := mewa.ColorOf(n)
		if c == "" {
			colors = false
			colorDetail = fmt.Sprintf("number %d has no color", n)
			break
		}
		if mewa.ElementOf(c) == "" {
			colors = false
			colorDetail = fmt.Sprintf("color %s has no element", c)
			break
		}
	}
	check("color and element tables", colors, colorDetail)

	if failures > 0 {
		return fmt.Errorf("%d verification check(s) failed", failures)
	}
	fmt.Fprintln(out, "\nAll checks passed.")
	return nil
}
