// Package suggest derives automation opportunities from classified,
// scored, and clustered message batches.
package suggest

import (
	"fmt"
	"sort"

	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/rules"
)

// Config holds the generator's support and escalation thresholds.
type Config struct {
	// MinSupport is the smallest number of messages in a category group
	// before it is suggestion-worthy. Smaller groups are suppressed as
	// noise.
	MinSupport int `mapstructure:"min_support" yaml:"min_support"`
	// EscalateSupport is the group size at which the suggestion level
	// is raised one step.
	EscalateSupport int `mapstructure:"escalate_support" yaml:"escalate_support"`
	// EscalatePriority is the average group priority at which the level
	// is raised one step.
	EscalatePriority float64 `mapstructure:"escalate_priority" yaml:"escalate_priority"`
	// MinPhraseEdges is how many edges must repeat a shared phrase
	// within a group before the phrase names the pattern.
	MinPhraseEdges int `mapstructure:"min_phrase_edges" yaml:"min_phrase_edges"`
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		MinSupport:       3,
		EscalateSupport:  5,
		EscalatePriority: 0.7,
		MinPhraseEdges:   2,
	}
}

// Generator turns a scored batch and its edge set into an ordered list
// of automation suggestions.
type Generator struct {
	cfg Config
}

// New creates a generator.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate groups messages by category, applies the minimum-support
// floor, and emits one suggestion per qualifying group, ordered by
// priority level (descending) then support count (descending).
//
// The catch-all category never yields a suggestion: uncategorized
// chatter is not an automatable pattern.
func (g *Generator) Generate(scored []model.ScoredMessage, edges []model.SimilarityEdge) []model.AutomationSuggestion {
	groups := make(map[string][]model.ScoredMessage)
	for _, msg := range scored {
		groups[msg.Category] = append(groups[msg.Category], msg)
	}

	suggestions := make([]model.AutomationSuggestion, 0, len(groups))
	for category, msgs := range groups {
		if category == rules.CatchAll || len(msgs) < g.cfg.MinSupport {
			continue
		}

		tmpl := templateFor(category)
		level := g.escalate(tmpl.BaseLevel, msgs)

		ids := make([]string, len(msgs))
		for i, m := range msgs {
			ids[i] = m.ID
		}

		name := tmpl.PatternName
		if phrase := g.recurringPhrase(ids, edges); phrase != "" {
			name = fmt.Sprintf("%s (%s)", tmpl.PatternName, phrase)
		}

		suggestions = append(suggestions, model.AutomationSuggestion{
			PatternName:          name,
			TriggerCategory:      category,
			SupportingMessageIDs: ids,
			PriorityLevel:        level,
			EstimatedImpact:      tmpl.Impact,
			EstimatedEffort:      tmpl.Effort,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.PriorityLevel != b.PriorityLevel {
			return a.PriorityLevel > b.PriorityLevel
		}
		if a.Support() != b.Support() {
			return a.Support() > b.Support()
		}
		return a.PatternName < b.PatternName
	})

	return suggestions
}

// escalate raises the base level when the group is large or its average
// priority is high, saturating at critical.
func (g *Generator) escalate(base model.PriorityLevel, msgs []model.ScoredMessage) model.PriorityLevel {
	level := base
	if g.cfg.EscalateSupport > 0 && len(msgs) >= g.cfg.EscalateSupport {
		level = level.Escalate()
	}

	total := 0.0
	for _, m := range msgs {
		total += m.Priority
	}
	if avg := total / float64(len(msgs)); avg >= g.cfg.EscalatePriority {
		level = level.Escalate()
	}

	return level
}

// recurringPhrase picks the shared phrase repeated across the most
// edges inside the group, or "" when none recurs often enough. Ties
// break lexically so the choice is deterministic.
func (g *Generator) recurringPhrase(ids []string, edges []model.SimilarityEdge) string {
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}

	counts := make(map[string]int)
	for _, e := range edges {
		if _, ok := member[e.SourceID]; !ok {
			continue
		}
		if _, ok := member[e.TargetID]; !ok {
			continue
		}
		for _, p := range e.SharedPhrases {
			counts[p]++
		}
	}

	best := ""
	bestCount := 0
	for phrase, n := range counts {
		if n < g.cfg.MinPhraseEdges {
			continue
		}
		if n > bestCount || (n == bestCount && phrase < best) {
			best = phrase
			bestCount = n
		}
	}
	return best
}
