package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrphansCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orphans",
		Short: "List nodes that nothing links to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			orphans := cmdCtx.graph.FindOrphans()
			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), orphans)
			}

			w := cmd.OutOrStdout()
			if len(orphans) == 0 {
				fmt.Fprintln(w, "No orphans found")
				return nil
			}

			t := newTable(w, "Node ID", "Reason", "Suggested Action")
			for _, o := range orphans {
				t.AppendRow([]any{o.NodeID, o.Reason, o.SuggestedAction})
			}
			t.Render()
			fmt.Fprintf(w, "(%d orphans)\n", len(orphans))
			return nil
		},
	}
}
