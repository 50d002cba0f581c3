package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path <source-id> <target-id>",
		Short: "Find the shortest link path between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			result, ok := cmdCtx.graph.FindPath(args[0], args[1])
			if !ok {
				return fmt.Errorf("no path from %q to %q", args[0], args[1])
			}

			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d hops)\n",
				strings.Join(result.Path, " -> "), result.Length)
			return nil
		},
	}
}
