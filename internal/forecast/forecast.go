// Package forecast evaluates the obstacle set across a span of
// reference years, answering "which coming years are obstacle years
// for this person". Years are evaluated by a bounded worker pool and
// results keep year order regardless of scheduling.
package forecast

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"jungtsi/internal/obstacle"
	"jungtsi/internal/report"
)

// DefaultWorkers bounds the pool when the caller does not.
const DefaultWorkers = 4

// Input describes one scan. Age is the subject's age in FromYear and
// advances by one for each subsequent year.
type Input struct {
	BirthYear int
	FromYear  int
	ToYear    int
	Age       int
	Gender    string
	Status    string
	Workers   int
}

// YearResult is the obstacle outcome of one reference year.
type YearResult struct {
	Year           int                 `json:"year"`
	Label          string              `json:"label"`
	Age            int                 `json:"age"`
	Findings       [4]obstacle.Finding `json:"findings"`
	TriggeredKinds []obstacle.Kind     `json:"triggered_kinds"`
}

// Run scans the span. Every year goes through the full validated
// pipeline, so a span that walks the age past the supported maximum
// fails the same way a single bad request would.
func Run(ctx context.Context, in Input) ([]YearResult, error) {
	if in.ToYear < in.FromYear {
		return nil, fmt.Errorf("invalid span: to-year %d before from-year %d", in.ToYear, in.FromYear)
	}

	workers := in.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	years := in.ToYear - in.FromYear + 1
	results := make([]YearResult, years)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < years; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			year := in.FromYear + i
			r, err := report.Build(report.Input{
				BirthYear:     in.BirthYear,
				ReferenceYear: year,
				Age:           in.Age + i,
				Gender:        in.Gender,
				Status:        in.Status,
			})
			if err != nil {
				return fmt.Errorf("year %d: %w", year, err)
			}

			res := YearResult{
				Year:     year,
				Label:    r.ReferenceLabel,
				Age:      in.Age + i,
				Findings: r.Findings,
			}
			for _, f := range r.Findings {
				if f.Triggered {
					res.TriggeredKinds = append(res.TriggeredKinds, f.Kind)
				}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
