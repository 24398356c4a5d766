package main

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"

	"github.com/chatsift/chatsift/internal/classify"
	"github.com/chatsift/chatsift/internal/config"
	"github.com/chatsift/chatsift/internal/embedding"
	"github.com/chatsift/chatsift/internal/engine"
	"github.com/chatsift/chatsift/internal/priority"
	"github.com/chatsift/chatsift/internal/rules"
	"github.com/chatsift/chatsift/internal/similarity"
	"github.com/chatsift/chatsift/internal/suggest"
)

// loadConfig overlays the viper state (config file, env, bound flags)
// onto the documented defaults.
func loadConfig() (config.Config, error) {
	return config.FromViper(viper.GetViper())
}

// loadRules compiles the rule set named by the config, or the built-in
// defaults when no path is configured.
func loadRules(cfg config.Config) (*rules.Set, error) {
	if cfg.RulesPath == "" {
		return rules.DefaultSet(), nil
	}
	set, err := rules.Load(config.ExpandPath(cfg.RulesPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load rules from %s: %w", cfg.RulesPath, err)
	}
	return set, nil
}

// buildEngine wires the four pipeline stages from one immutable config
// value. progress may be nil.
func buildEngine(cfg config.Config, set *rules.Set, progress func(done, total int)) (*engine.Engine, error) {
	classifier := classify.New(set, cfg.Classifier)
	scorer := priority.New(set, cfg.Priority)

	var vectorizer similarity.Vectorizer
	if cfg.Embedding.Enabled {
		vectorizer = embedding.NewOpenAI(cfg.Embedding.APIKey,
			openai.EmbeddingModel(cfg.Embedding.Model))
	}

	matcher, err := similarity.NewMatcher(vectorizer, cfg.Similarity)
	if err != nil {
		return nil, err
	}
	matcher.Progress = progress

	generator := suggest.New(cfg.Suggest)

	return engine.New(classifier, scorer, matcher, generator, cfg.Engine), nil
}
