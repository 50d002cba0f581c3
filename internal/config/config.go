// Package config provides configuration for the contentgraph tooling, loaded
// from a project file, environment variables and CLI flags.
package config

import (
	"log/slog"

	"github.com/leapstack-labs/contentgraph/internal/graph"
)

// Default configuration values.
const (
	DefaultContentDir     = "content"
	DefaultOutput         = "table"
	DefaultMaxNodes       = graph.DefaultMaxNodes
	DefaultMaxEdges       = graph.DefaultMaxEdges
	DefaultHubMinInDegree = graph.DefaultHubMinInDegree
)

// CacheConfig bounds the in-memory graph stores.
type CacheConfig struct {
	MaxNodes int `koanf:"max_nodes"`
	MaxEdges int `koanf:"max_edges"`
}

// HubConfig holds hub detection settings.
type HubConfig struct {
	MinInDegree int `koanf:"min_in_degree"`
}

// RiskConfig holds the cascade-risk tier cutoffs. Zero values fall back to
// the graph package defaults.
type RiskConfig struct {
	Medium       int `koanf:"medium"`
	High         int `koanf:"high"`
	Critical     int `koanf:"critical"`
	FanOutWeight int `koanf:"fan_out_weight"`
}

// Config is the loaded tool configuration.
type Config struct {
	// ContentDir is the directory of content fixture files to replay.
	ContentDir string `koanf:"content_dir"`
	// Output selects the render format (table, json).
	Output  string      `koanf:"output"`
	Verbose bool        `koanf:"verbose"`
	Cache   CacheConfig `koanf:"cache"`
	Hubs    HubConfig   `koanf:"hubs"`
	Risk    RiskConfig  `koanf:"risk"`
}

// GraphOptions converts the configuration into graph construction options.
func (c *Config) GraphOptions(logger *slog.Logger) graph.Options {
	return graph.Options{
		MaxNodes:       c.Cache.MaxNodes,
		MaxEdges:       c.Cache.MaxEdges,
		HubMinInDegree: c.Hubs.MinInDegree,
		Risk: graph.RiskThresholds{
			Medium:       c.Risk.Medium,
			High:         c.Risk.High,
			Critical:     c.Risk.Critical,
			FanOutWeight: c.Risk.FanOutWeight,
		},
		Logger: logger,
	}
}

// defaults returns the default configuration as a koanf confmap.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"content_dir":        DefaultContentDir,
		"output":             DefaultOutput,
		"verbose":            false,
		"cache.max_nodes":    DefaultMaxNodes,
		"cache.max_edges":    DefaultMaxEdges,
		"hubs.min_in_degree": DefaultHubMinInDegree,
	}
}
