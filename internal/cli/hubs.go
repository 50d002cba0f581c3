package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHubsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hubs",
		Short: "List highly referenced nodes",
		Long: `List nodes whose in-degree meets the threshold, ranked descending.
Hubs are items whose removal or mis-edit has outsized impact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			minInDegree, err := cmd.Flags().GetInt("min-in-degree")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min-in-degree") {
				minInDegree = cmdCtx.cfg.Hubs.MinInDegree
			}

			hubs := cmdCtx.graph.FindHubs(minInDegree)
			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), hubs)
			}

			w := cmd.OutOrStdout()
			if len(hubs) == 0 {
				fmt.Fprintf(w, "No hubs with in-degree >= %d\n", minInDegree)
				return nil
			}

			t := newTable(w, "Rank", "Node ID", "Type", "In-Degree")
			for _, h := range hubs {
				t.AppendRow([]any{h.Rank, h.Node.ID, string(h.Node.Type), h.InDegree})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().Int("min-in-degree", 0, "minimum in-degree for a node to count as a hub (default from config)")
	return cmd
}
