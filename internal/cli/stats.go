package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentgraph/internal/graph"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate graph statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			stats := cmdCtx.graph.Stats()
			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), stats)
			}

			w := cmd.OutOrStdout()
			t := newTable(w, "Metric", "Value")
			t.AppendRow([]any{"Total nodes", stats.TotalNodes})
			t.AppendRow([]any{"Total edges", stats.TotalEdges})
			t.AppendRow([]any{"Average in-degree", fmt.Sprintf("%.2f", stats.AverageInDegree)})
			t.AppendRow([]any{"Average out-degree", fmt.Sprintf("%.2f", stats.AverageOutDegree)})
			t.AppendRow([]any{"Orphans", stats.OrphanCount})
			t.AppendRow([]any{"Hubs", stats.HubCount})
			t.AppendRow([]any{"Circular dependencies", stats.CircularDependencyCount})
			t.Render()

			for _, line := range typeBreakdown(stats) {
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}

func typeBreakdown(stats *graph.GraphStats) []string {
	var lines []string

	nodeTypes := make([]string, 0, len(stats.NodesByType))
	for typ := range stats.NodesByType {
		nodeTypes = append(nodeTypes, string(typ))
	}
	sort.Strings(nodeTypes)
	for _, typ := range nodeTypes {
		lines = append(lines, fmt.Sprintf("nodes/%s: %d", typ, stats.NodesByType[graph.NodeType(typ)]))
	}

	edgeTypes := make([]string, 0, len(stats.EdgesByType))
	for typ := range stats.EdgesByType {
		edgeTypes = append(edgeTypes, string(typ))
	}
	sort.Strings(edgeTypes)
	for _, typ := range edgeTypes {
		lines = append(lines, fmt.Sprintf("edges/%s: %d", typ, stats.EdgesByType[graph.EdgeType(typ)]))
	}

	return lines
}
