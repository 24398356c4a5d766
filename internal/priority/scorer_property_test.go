package priority

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/rules"
)

var wordGen = rapid.StringMatching(`[a-z]{2,10}`)

// For any message, the final priority stays inside [0,1] and every
// signal contribution is non-negative.
func TestProperty_PriorityBounds(t *testing.T) {
	scorer := New(rules.DefaultSet(), DefaultConfig())
	categories := rules.DefaultSet().Names()

	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(wordGen, 0, 40).Draw(rt, "words")
		msg := model.ClassifiedMessage{
			RawMessage: model.RawMessage{
				ID:        "m",
				Text:      strings.Join(words, " "),
				Timestamp: float64(rapid.IntRange(0, 1_000_000).Draw(rt, "ts")),
				Reactions: make([]string, rapid.IntRange(0, 20).Draw(rt, "reactions")),
			},
			Category: rapid.SampledFrom(categories).Draw(rt, "category"),
		}
		newest := float64(rapid.IntRange(0, 2_000_000).Draw(rt, "newest"))

		got := scorer.Score(msg, newest)

		if got.Priority < 0 || got.Priority > 1 {
			rt.Errorf("priority %v outside [0,1]", got.Priority)
		}
		for name, v := range got.Breakdown {
			if v < 0 {
				rt.Errorf("signal %s is negative: %v", name, v)
			}
		}
	})
}

// Appending a verbatim urgency keyword to a message's text never
// decreases its priority, holding category and metadata constant.
func TestProperty_UrgencyKeywordMonotonic(t *testing.T) {
	scorer := New(rules.DefaultSet(), DefaultConfig())
	cfg := DefaultConfig()

	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(wordGen, 1, 30).Draw(rt, "words")
		term := rapid.SampledFrom(cfg.UrgencyTerms).Draw(rt, "term")

		base := model.ClassifiedMessage{
			RawMessage: model.RawMessage{ID: "m", Text: strings.Join(words, " ")},
			Category:   "general",
		}
		bumped := base
		bumped.Text = base.Text + " " + term

		before := scorer.Score(base, 0).Priority
		after := scorer.Score(bumped, 0).Priority

		if after < before {
			rt.Errorf("adding %q decreased priority: %v -> %v", term, before, after)
		}
	})
}

// Scoring is deterministic: identical inputs give bit-identical output.
func TestProperty_ScoreDeterministic(t *testing.T) {
	scorer := New(rules.DefaultSet(), DefaultConfig())

	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(wordGen, 0, 30).Draw(rt, "words")
		msg := model.ClassifiedMessage{
			RawMessage: model.RawMessage{
				ID:        "m",
				Text:      strings.Join(words, " "),
				Timestamp: float64(rapid.IntRange(0, 100_000).Draw(rt, "ts")),
			},
			Category: "bug_report",
		}

		first := scorer.Score(msg, 100_000)
		second := scorer.Score(msg, 100_000)

		if first.Priority != second.Priority {
			rt.Errorf("priority not reproducible: %v != %v", first.Priority, second.Priority)
		}
		for name, v := range first.Breakdown {
			if second.Breakdown[name] != v {
				rt.Errorf("signal %s not reproducible: %v != %v", name, v, second.Breakdown[name])
			}
		}
	})
}
