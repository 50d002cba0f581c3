// Package cli provides the contentgraph command-line interface: operational
// tooling that rebuilds the content dependency graph from content fixture
// files and runs read-only analyses over it.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contentgraph/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var cfgFile string

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contentgraph",
		Short: "Content dependency graph toolkit",
		Long: `contentgraph rebuilds the in-memory content dependency graph from a
directory of content fixture files and answers editorial questions about it:
what depends on an item, how risky is removing it, which items are orphaned,
and which are hubs whose edits cascade widely.`,
		Version:       Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", used)
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "path to config file (default: contentgraph.yaml discovered upward)")
	flags.String("content-dir", config.DefaultContentDir, "directory of content fixture files to replay")
	flags.String("output", config.DefaultOutput, "output format (table, json)")
	flags.Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newBuildCommand(),
		newStatsCommand(),
		newImpactCommand(),
		newOrphansCommand(),
		newHubsCommand(),
		newPathCommand(),
		newCyclesCommand(),
		newCacheCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return &config.Config{ContentDir: config.DefaultContentDir, Output: config.DefaultOutput}
}

func loggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
