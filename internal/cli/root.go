// Package cli implements the whatday command line.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/whatday/internal/calendar"
	"github.com/zapponejosh/whatday/internal/config"
	"github.com/zapponejosh/whatday/internal/doomsday"
	"github.com/zapponejosh/whatday/internal/logger"
	"github.com/zapponejosh/whatday/internal/report"
)

// app carries state shared by all subcommands once the root has loaded it.
type app struct {
	now    func() time.Time
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the whatday command tree. now supplies today's date
// for fields that are not given.
func NewRootCmd(now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}
	a := &app{now: now}

	var (
		year, month, day int
		format           string
		strict           bool
	)

	rootCmd := &cobra.Command{
		Use:   "whatday [year] [month] [day]",
		Short: "Get the weekday of a date with the Doomsday method",
		Long: `whatday prints the weekday of a date and every step of the Doomsday
calculation that leads to it: century drift, decade drift, the month's
doomsday and the walk from it to the day.

Missing fields default to today. Positional values take precedence over
the --year, --month and --day flags.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger.Setup(cfg, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			positional, err := parsePositional(args)
			if err != nil {
				return err
			}

			flags := [3]*int{}
			for i, f := range []struct {
				name string
				v    *int
			}{{"year", &year}, {"month", &month}, {"day", &day}} {
				if cmd.Flags().Changed(f.name) {
					flags[i] = f.v
				}
			}

			date := resolveDate(positional, flags, a.now())
			y, m, d := date[0], date[1], date[2]

			if format == "" {
				format = a.cfg.OutputFormat
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}

			if strict && !calendar.ValidDate(y, m, d) {
				return fmt.Errorf("%s is not a calendar date", report.DateLabel(y, m, d))
			}

			weekday, path, err := doomsday.CalculateWeekday(y, m, d)
			if err != nil {
				return err
			}
			a.logger.Debug("weekday calculated",
				slog.String("date", report.DateLabel(y, m, d)),
				slog.String("weekday", weekday),
				slog.Int("steps", len(path)),
			)

			return report.Write(cmd.OutOrStdout(), format, y, m, d, weekday, path)
		},
	}

	f := rootCmd.Flags()
	f.IntVarP(&year, "year", "y", 0, "The year of the date. Default: today's year.")
	f.IntVarP(&month, "month", "m", 0, "The month of the date. Default: today's month.")
	f.IntVarP(&day, "day", "d", 0, "The day of the date. Default: today's day.")
	f.StringVarP(&format, "format", "f", "", "Output format: text, json or yaml. Default: $WHATDAY_FORMAT or text.")
	f.BoolVar(&strict, "strict", false, "Reject dates that do not exist, such as February 30th.")

	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the whatday command line.
func Execute() error {
	return NewRootCmd(time.Now).Execute()
}
