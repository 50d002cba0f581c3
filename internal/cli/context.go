package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentgraph/internal/config"
	"github.com/leapstack-labs/contentgraph/internal/content"
	"github.com/leapstack-labs/contentgraph/internal/graph"
)

// commandContext bundles everything a command needs: the loaded config, the
// logger, and a graph rebuilt by replaying the content directory.
type commandContext struct {
	cfg     *config.Config
	logger  *slog.Logger
	graph   *graph.Graph
	reports []*graph.BuildReport
}

// newCommandContext loads the content directory and replays it into a fresh
// graph. The graph is process-local; every invocation rebuilds it from the
// authoritative content files.
func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	cfg := configFromContext(cmd.Context())
	logger := loggerFromContext(cmd.Context())

	contents, err := content.LoadDir(cmd.Context(), cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	g := graph.New(cfg.GraphOptions(logger))
	reports := make([]*graph.BuildReport, 0, len(contents))
	for _, c := range contents {
		reports = append(reports, g.BuildFromContent(c))
	}

	logger.Debug("graph rebuilt",
		"content_items", len(contents),
		"nodes", g.Len(),
		"edges", g.EdgeLen())

	return &commandContext{
		cfg:     cfg,
		logger:  logger,
		graph:   g,
		reports: reports,
	}, nil
}
