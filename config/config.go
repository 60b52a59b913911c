// Package config loads tool configuration for the packkit CLI and for
// embedding applications. Configuration comes from a YAML file with
// environment-variable overrides (PACKKIT_ prefix); every field has a
// usable default so a missing file is not an error.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/efeecllk/game-insights-sub001/errors"
)

// DetectorConfig tunes detection scoring
type DetectorConfig struct {
	MinConfidence      float64 `mapstructure:"min_confidence"`
	AmbiguityThreshold float64 `mapstructure:"ambiguity_threshold"`
	MaxAlternatives    int     `mapstructure:"max_alternatives"`
}

// BridgeConfig configures the NATS registry event bridge
type BridgeConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

// Config is the full tool configuration
type Config struct {
	Detector  DetectorConfig `mapstructure:"detector"`
	Bridge    BridgeConfig   `mapstructure:"bridge"`
	PackPaths []string       `mapstructure:"pack_paths"`
}

// Load reads configuration from the given file path. An empty path skips
// file loading and returns defaults plus environment overrides; a named
// file that cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("detector.min_confidence", 0.3)
	v.SetDefault("detector.ambiguity_threshold", 0.2)
	v.SetDefault("detector.max_alternatives", 3)
	v.SetDefault("bridge.enabled", false)
	v.SetDefault("bridge.url", "nats://localhost:4222")
	v.SetDefault("bridge.subject_prefix", "packs.events")
	v.SetDefault("pack_paths", []string{})

	v.SetEnvPrefix("PACKKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapInvalid(err, "Config", "Load", "config file read")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "config decode")
	}
	return &cfg, nil
}
