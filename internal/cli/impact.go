package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newImpactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "impact <node-id>",
		Short: "Analyze the blast radius of changing or removing a node",
		Example: `  # What breaks if this article is removed?
  contentgraph impact article-paris-guide`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			report, ok := cmdCtx.graph.AnalyzeImpact(args[0])
			if !ok {
				return fmt.Errorf("node %q not found in graph", args[0])
			}

			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), report)
			}

			w := cmd.OutOrStdout()
			t := newTable(w, "Field", "Value")
			t.AppendRow([]any{"Node", report.NodeID})
			t.AppendRow([]any{"Direct dependents", len(report.DirectDependents)})
			t.AppendRow([]any{"Total impact", report.TotalImpact})
			t.AppendRow([]any{"Cascade risk", report.CascadeRisk.String()})
			t.Render()

			if len(report.DirectDependents) > 0 {
				fmt.Fprintf(w, "Dependents: %s\n", strings.Join(report.DirectDependents, ", "))
			}
			for _, action := range report.RecommendedActions {
				fmt.Fprintf(w, "- %s\n", action)
			}
			return nil
		},
	}
}
