// Package classify assigns categories to messages using weighted
// lexical signals from the configured rule set.
package classify

import (
	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/rules"
	"github.com/chatsift/chatsift/internal/textutil"
)

// Config holds the classifier weights. Defaults mirror the tuned
// values: a regex pattern hit is worth twice a keyword hit because
// patterns encode higher-precision signals.
type Config struct {
	KeywordWeight float64 `mapstructure:"keyword_weight" yaml:"keyword_weight"`
	PatternWeight float64 `mapstructure:"pattern_weight" yaml:"pattern_weight"`
	MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence"`
}

// DefaultConfig returns the default classifier configuration.
func DefaultConfig() Config {
	return Config{
		KeywordWeight: 1.0,
		PatternWeight: 2.0,
		MinConfidence: 0.1,
	}
}

// Classifier scores messages against a rule set. It is stateless apart
// from read-only configuration and safe for concurrent use.
type Classifier struct {
	set *rules.Set
	cfg Config
}

// New creates a classifier over the given compiled rule set.
func New(set *rules.Set, cfg Config) *Classifier {
	return &Classifier{set: set, cfg: cfg}
}

// Classify assigns exactly one category to the message. The rule with
// the strictly highest confidence wins; ties keep the first-declared
// rule. Messages scoring below the minimum confidence, and messages
// with no tokens at all, fall back to the catch-all category with
// confidence 0.
func (c *Classifier) Classify(msg model.RawMessage) model.ClassifiedMessage {
	out := model.ClassifiedMessage{
		RawMessage: msg,
		Category:   rules.CatchAll,
		Confidence: 0,
	}

	norm := textutil.Normalize(msg.Text)
	tokens := textutil.Tokenize(msg.Text)
	if len(tokens) == 0 {
		return out
	}

	best := 0.0
	bestName := ""
	for i := range c.set.Rules() {
		rule := &c.set.Rules()[i]
		if rule.Empty() {
			continue
		}

		raw := c.cfg.KeywordWeight*float64(rule.KeywordOccurrences(norm)) +
			c.cfg.PatternWeight*float64(rule.PatternMatches(norm))
		if raw <= 0 {
			continue
		}

		// Normalize by token count so long messages do not
		// accumulate confidence just by being long.
		confidence := raw / float64(len(tokens))
		if confidence > best {
			best = confidence
			bestName = rule.Name
		}
	}

	if bestName == "" || best < c.cfg.MinConfidence {
		return out
	}

	out.Category = bestName
	out.Confidence = best
	return out
}
