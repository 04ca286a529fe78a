package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/mps7/internal/report"
)

func newBalanceCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <file> <user_id>...",
		Short: "Print the balance of one or more users",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseUserIDs(args[1:])
			if err != nil {
				return err
			}

			res, err := parseFile(g.logger(cmd), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, report.FormatBalance(res.State, id))
			}
			return nil
		},
	}
}

func parseUserIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", a, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
