package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCyclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cycles",
		Short: "Detect circular content dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			cycles := cmdCtx.graph.DetectCycles()
			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), cycles)
			}

			w := cmd.OutOrStdout()
			if len(cycles) == 0 {
				fmt.Fprintln(w, "No circular dependencies found")
				return nil
			}
			for i, cycle := range cycles {
				fmt.Fprintf(w, "%d. %s -> %s\n", i+1, strings.Join(cycle, " -> "), cycle[0])
			}
			fmt.Fprintf(w, "(%d cycles)\n", len(cycles))
			return nil
		},
	}
}
