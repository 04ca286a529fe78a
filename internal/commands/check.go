package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a log's framing and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseFile(g.logger(cmd), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %d, %d records, %d users, header count %d)\n",
				args[0], res.Header.Version, len(res.Entries), res.State.Len(), res.Header.RecordCount)
			return nil
		},
	}
}
