package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names, checked in order.
const (
	ConfigFileName    = "contentgraph.yaml"
	ConfigFileNameAlt = "contentgraph.yml"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for a
// config file.
const maxUpwardSearchLevels = 10

var configFileUsed string

// GetConfigFileUsed returns the path of the config file loaded by the last
// Load call, or empty if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Load loads configuration from defaults, an optional config file,
// CONTENTGRAPH_-prefixed environment variables, and CLI flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
//
// When cfgFile is empty, contentgraph.yaml / contentgraph.yml is searched for
// upward from the working directory; a missing config file is not an error.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	configFileUsed = ""

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (explicit path, or discovered upward from CWD)
	if cfgFile == "" {
		cfgFile = findConfigFile()
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		configFileUsed = cfgFile
	}

	// 3. Environment variables: CONTENTGRAPH_CACHE__MAX_NODES -> cache.max_nodes
	if err := k.Load(env.Provider("CONTENTGRAPH_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "CONTENTGRAPH_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags override everything else
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// findConfigFile searches upward from the working directory for a config
// file. Returns empty string if none is found.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
