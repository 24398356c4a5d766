// Package config assembles the engine's configuration surface with
// documented defaults that callers can override via file or flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/chatsift/chatsift/internal/classify"
	"github.com/chatsift/chatsift/internal/engine"
	"github.com/chatsift/chatsift/internal/priority"
	"github.com/chatsift/chatsift/internal/similarity"
	"github.com/chatsift/chatsift/internal/suggest"
)

// Embedding configures the optional vectorization capability. When
// disabled (or when the provider fails), similarity degrades to
// lexical-only scoring.
type Embedding struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	APIKey  string `mapstructure:"api_key" yaml:"api_key"`
	Model   string `mapstructure:"model" yaml:"model"`
}

// Config is the full configuration value handed to the pipeline
// constructors. It is built once at startup and never mutated.
type Config struct {
	RulesPath  string            `mapstructure:"rules_path" yaml:"rules_path"`
	Classifier classify.Config   `mapstructure:"classifier" yaml:"classifier"`
	Priority   priority.Config   `mapstructure:"priority" yaml:"priority"`
	Similarity similarity.Config `mapstructure:"similarity" yaml:"similarity"`
	Suggest    suggest.Config    `mapstructure:"suggest" yaml:"suggest"`
	Engine     engine.Config     `mapstructure:"engine" yaml:"engine"`
	Embedding  Embedding         `mapstructure:"embedding" yaml:"embedding"`
}

// Default returns the documented default configuration.
func Default() Config {
	return Config{
		Classifier: classify.DefaultConfig(),
		Priority:   priority.DefaultConfig(),
		Similarity: similarity.DefaultConfig(),
		Suggest:    suggest.DefaultConfig(),
		Engine:     engine.DefaultConfig(),
	}
}

// FromViper overlays the loaded viper state onto the defaults.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
