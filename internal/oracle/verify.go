package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/zapponejosh/whatday/internal/calendar"
	"github.com/zapponejosh/whatday/internal/doomsday"
)

// VerifyOptions controls which dates Verify samples.
type VerifyOptions struct {
	Samples  int    // Number of random dates to check
	FromYear int    // First year sampled, inclusive
	ToYear   int    // Last year sampled, inclusive
	Seed     uint64 // Seed for the date sampler
}

// Mismatch is a date on which the Doomsday result and the oracle disagree.
type Mismatch struct {
	Year     int
	Month    int
	Day      int
	Doomsday string
	Oracle   string
}

// Report summarises a verification run.
type Report struct {
	Checked    int
	Mismatches []Mismatch
}

// OK reports whether every checked date matched.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Validate checks the options.
func (o VerifyOptions) Validate() error {
	if o.Samples < 1 {
		return fmt.Errorf("samples must be positive, got %d", o.Samples)
	}
	if o.FromYear > o.ToYear {
		return fmt.Errorf("from year %d is after to year %d", o.FromYear, o.ToYear)
	}
	return nil
}

// Verify compares doomsday.CalculateWeekday with o on randomly sampled valid
// dates. Mismatches are collected and logged; errors from either side stop
// the run.
func Verify(ctx context.Context, o Oracle, opts VerifyOptions, logger *slog.Logger) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	span := opts.ToYear - opts.FromYear + 1
	report := &Report{}

	for i := 0; i < opts.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		year := opts.FromYear + rng.IntN(span)
		month := 1 + rng.IntN(12)
		day := 1 + rng.IntN(calendar.DaysInMonth(year, month))

		got, _, err := doomsday.CalculateWeekday(year, month, day)
		if err != nil {
			return report, fmt.Errorf("doomsday %04d-%02d-%02d: %w", year, month, day, err)
		}

		index, err := o.Weekday(ctx, year, month, day)
		if err != nil {
			return report, fmt.Errorf("oracle %04d-%02d-%02d: %w", year, month, day, err)
		}
		want := calendar.DayName(index)

		report.Checked++
		if got != want {
			m := Mismatch{Year: year, Month: month, Day: day, Doomsday: got, Oracle: want}
			report.Mismatches = append(report.Mismatches, m)
			logger.Warn("weekday mismatch",
				slog.Int("year", year),
				slog.Int("month", month),
				slog.Int("day", day),
				slog.String("doomsday", got),
				slog.String("oracle", want),
			)
		}
	}

	logger.Info("verification complete",
		slog.Int("checked", report.Checked),
		slog.Int("mismatches", len(report.Mismatches)),
	)

	return report, nil
}
