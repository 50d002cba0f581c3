package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild the graph from the content directory and report results",
		Long: `Replay every content fixture file in the content directory into a fresh
graph and report per-item ingestion results. Malformed relations are listed
but never abort a batch.`,
		Example: `  # Rebuild from ./content
  contentgraph build

  # Rebuild from a specific directory as JSON
  contentgraph build --content-dir fixtures --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			if cmdCtx.cfg.Output == "json" {
				return renderJSON(cmd.OutOrStdout(), cmdCtx.reports)
			}

			w := cmd.OutOrStdout()
			t := newTable(w, "Content ID", "Nodes Created", "Edges Created", "Errors")
			var nodes, edges, errors int
			for _, r := range cmdCtx.reports {
				t.AppendRow([]any{r.ContentID, r.NodesCreated, r.EdgesCreated, len(r.Errors)})
				nodes += r.NodesCreated
				edges += r.EdgesCreated
				errors += len(r.Errors)
			}
			t.Render()

			for _, r := range cmdCtx.reports {
				for _, buildErr := range r.Errors {
					fmt.Fprintf(w, "warning: %s: %s\n", r.ContentID, buildErr.Error())
				}
			}
			fmt.Fprintf(w, "Ingested %d items: %d nodes, %d edges, %d errors\n",
				len(cmdCtx.reports), nodes, edges, errors)
			return nil
		},
	}
}
