package cli

import (
	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "Show graph cache occupancy and limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			stats := cmdCtx.graph.CacheStats()
			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), stats)
			}

			t := newTable(cmd.OutOrStdout(), "Store", "Size", "Max")
			t.AppendRow([]any{"nodes", stats.Nodes.Size, stats.Nodes.Max})
			t.AppendRow([]any{"edges", stats.Edges.Size, stats.Edges.Max})
			t.Render()
			return nil
		},
	}
}
