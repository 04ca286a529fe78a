package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/mps7/internal/report"
)

func newReportCommand(g *globalFlags) *cobra.Command {
	var format string
	var users []string
	var noEntries bool

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print entries, totals and balances for a log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Report.Format = format
			}
			if cmd.Flags().Changed("user") {
				ids, err := parseUserIDs(users)
				if err != nil {
					return err
				}
				cfg.Report.BalanceUsers = ids
			}
			if noEntries {
				cfg.Report.ShowEntries = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			res, err := parseFile(g.logger(cmd), args[0])
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), cfg.Report.Format, res, report.Options{
				Location:     loc,
				ShowEntries:  cfg.Report.ShowEntries,
				BalanceUsers: cfg.Report.BalanceUsers,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, csv or json")
	cmd.Flags().StringSliceVarP(&users, "user", "u", nil, "user id to print a balance for (repeatable)")
	cmd.Flags().BoolVar(&noEntries, "no-entries", false, "omit the per-record listing")

	return cmd
}
