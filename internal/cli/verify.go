package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/whatday/internal/oracle"
	"github.com/zapponejosh/whatday/internal/report"
)

// Oracle names accepted by --oracle.
const (
	oracleSQLite = "sqlite"
	oracleZeller = "zeller"
	oracleTime   = "time"
)

func newVerifyCmd(a *app) *cobra.Command {
	opts := oracle.VerifyOptions{}
	var oracleName string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the Doomsday method against another calendar",
		Long: `verify samples random dates and compares the Doomsday weekday with an
independent oracle: SQLite's date functions, Zeller's congruence, or Go's
time package. Every mismatch is listed; any mismatch fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var o oracle.Oracle
			switch oracleName {
			case oracleSQLite:
				s, err := oracle.OpenSQLite(oracle.DefaultConfig(a.cfg.OracleDSN), a.logger)
				if err != nil {
					return err
				}
				defer s.Close()
				o = s
			case oracleZeller:
				o = oracle.Func(oracle.Zeller)
			case oracleTime:
				o = oracle.Func(oracle.StdTime)
			default:
				return fmt.Errorf("unknown oracle %q: use sqlite, zeller or time", oracleName)
			}

			result, err := oracle.Verify(ctx, o, opts, a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range result.Mismatches {
				fmt.Fprintf(out, "%s: doomsday says %s, %s says %s\n",
					report.DateLabel(m.Year, m.Month, m.Day), m.Doomsday, oracleName, m.Oracle)
			}
			fmt.Fprintf(out, "Checked %d dates between %d and %d against %s: %d mismatches\n",
				result.Checked, opts.FromYear, opts.ToYear, oracleName, len(result.Mismatches))

			if !result.OK() {
				return fmt.Errorf("%d of %d dates disagree with %s", len(result.Mismatches), result.Checked, oracleName)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Samples, "samples", "n", 1000, "Number of random dates to check")
	f.IntVar(&opts.FromYear, "from", 1, "First year to sample")
	f.IntVar(&opts.ToYear, "to", 9999, "Last year to sample")
	f.Uint64Var(&opts.Seed, "seed", 1, "Seed for the date sampler")
	f.StringVarP(&oracleName, "oracle", "o", oracleSQLite, "Oracle: sqlite, zeller or time")

	return cmd
}
