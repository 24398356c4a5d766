// Package priority computes bounded urgency scores for classified
// messages from category, lexical, and metadata signals.
package priority

import (
	"math"
	"strings"

	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/rules"
	"github.com/chatsift/chatsift/internal/textutil"
)

// Signal names used as keys in the priority breakdown.
const (
	SignalCategory      = "category_boost"
	SignalUrgency       = "urgency"
	SignalInterrogative = "interrogative"
	SignalLength        = "length"
	SignalRecency       = "recency"
	SignalEngagement    = "engagement"
)

// Config holds the scorer weights and caps. Every signal is clamped
// independently so no single signal can dominate the final score.
type Config struct {
	// UrgencyBonus is added once when any urgency term is present,
	// regardless of how often it repeats.
	UrgencyBonus float64 `mapstructure:"urgency_bonus" yaml:"urgency_bonus"`
	// UrgencyTerms is the fixed urgency vocabulary, matched as whole
	// words.
	UrgencyTerms []string `mapstructure:"urgency_terms" yaml:"urgency_terms"`
	// InterrogativeCap bounds the saturating question-intensity signal.
	InterrogativeCap float64 `mapstructure:"interrogative_cap" yaml:"interrogative_cap"`
	// LengthCap bounds the token-count signal.
	LengthCap float64 `mapstructure:"length_cap" yaml:"length_cap"`
	// LengthPivot is the token count at which the length signal reaches
	// half its cap.
	LengthPivot int `mapstructure:"length_pivot" yaml:"length_pivot"`
	// RecencyCap bounds the recency signal; the newest message in a
	// batch receives the full cap.
	RecencyCap float64 `mapstructure:"recency_cap" yaml:"recency_cap"`
	// RecencyHalfLife is the age in seconds at which the recency bonus
	// halves.
	RecencyHalfLife float64 `mapstructure:"recency_half_life" yaml:"recency_half_life"`
	// EngagementStep is the bonus per reaction.
	EngagementStep float64 `mapstructure:"engagement_step" yaml:"engagement_step"`
	// EngagementCap bounds the reaction signal.
	EngagementCap float64 `mapstructure:"engagement_cap" yaml:"engagement_cap"`
}

// DefaultConfig returns the default scorer configuration.
func DefaultConfig() Config {
	return Config{
		UrgencyBonus: 0.2,
		UrgencyTerms: []string{
			"urgent", "asap", "emergency", "critical", "production",
			"down", "outage", "immediately",
		},
		InterrogativeCap: 0.2,
		LengthCap:        0.1,
		LengthPivot:      50,
		RecencyCap:       0.1,
		RecencyHalfLife:  6 * 3600,
		EngagementStep:   0.05,
		EngagementCap:    0.15,
	}
}

var questionWords = map[string]struct{}{
	"how": {}, "what": {}, "where": {}, "when": {}, "why": {}, "who": {},
}

// Scorer computes priority scores. It is stateless apart from read-only
// configuration and safe for concurrent use.
type Scorer struct {
	set     *rules.Set
	urgency map[string]struct{}
	cfg     Config
}

// New creates a scorer using the rule set's category priority boosts.
func New(set *rules.Set, cfg Config) *Scorer {
	urgency := make(map[string]struct{}, len(cfg.UrgencyTerms))
	for _, t := range cfg.UrgencyTerms {
		urgency[strings.ToLower(t)] = struct{}{}
	}
	return &Scorer{set: set, urgency: urgency, cfg: cfg}
}

// Score computes the priority of a single message. newest is the
// largest timestamp in the batch: recency is measured against it rather
// than the wall clock, so scores are reproducible.
func (s *Scorer) Score(msg model.ClassifiedMessage, newest float64) model.ScoredMessage {
	tokens := textutil.Tokenize(msg.Text)

	breakdown := map[string]float64{
		SignalCategory:      s.set.Boost(msg.Category),
		SignalUrgency:       s.urgencySignal(tokens),
		SignalInterrogative: s.interrogativeSignal(msg.Text, tokens),
		SignalLength:        s.lengthSignal(len(tokens)),
		SignalRecency:       s.recencySignal(msg.Age(newest)),
		SignalEngagement:    s.engagementSignal(len(msg.Reactions)),
	}

	total := 0.0
	for _, v := range breakdown {
		total += v
	}

	return model.ScoredMessage{
		ClassifiedMessage: msg,
		Priority:          clamp01(total),
		Breakdown:         breakdown,
	}
}

// ScoreBatch scores every message against the batch's own newest
// timestamp. Output order matches input order.
func (s *Scorer) ScoreBatch(msgs []model.ClassifiedMessage) []model.ScoredMessage {
	newest := NewestTimestamp(msgs)
	out := make([]model.ScoredMessage, len(msgs))
	for i, m := range msgs {
		out[i] = s.Score(m, newest)
	}
	return out
}

// NewestTimestamp returns the largest timestamp in the batch, or 0 for
// an empty batch.
func NewestTimestamp(msgs []model.ClassifiedMessage) float64 {
	newest := 0.0
	for _, m := range msgs {
		if m.Timestamp > newest {
			newest = m.Timestamp
		}
	}
	return newest
}

// urgencySignal contributes a single fixed bonus when any urgency term
// is present. Counting once keeps the signal immune to keyword
// repetition.
func (s *Scorer) urgencySignal(tokens []string) float64 {
	for _, t := range tokens {
		if _, ok := s.urgency[t]; ok {
			return s.cfg.UrgencyBonus
		}
	}
	return 0
}

// interrogativeSignal saturates with the number of question marks and
// question words: a flood of "???" signals confusion, but not
// proportionally more with each mark.
func (s *Scorer) interrogativeSignal(text string, tokens []string) float64 {
	units := strings.Count(text, "?")
	for _, t := range tokens {
		if _, ok := questionWords[t]; ok {
			units++
		}
	}
	if units == 0 {
		return 0
	}
	return s.cfg.InterrogativeCap * float64(units) / float64(units+3)
}

// lengthSignal rewards detail with diminishing returns, bounded by
// LengthCap.
func (s *Scorer) lengthSignal(tokenCount int) float64 {
	if tokenCount == 0 {
		return 0
	}
	return s.cfg.LengthCap * float64(tokenCount) / float64(tokenCount+s.cfg.LengthPivot)
}

// recencySignal decays by half every RecencyHalfLife seconds of age.
func (s *Scorer) recencySignal(age float64) float64 {
	if s.cfg.RecencyHalfLife <= 0 {
		return 0
	}
	return s.cfg.RecencyCap * math.Pow(0.5, age/s.cfg.RecencyHalfLife)
}

// engagementSignal grows with reaction count, capped.
func (s *Scorer) engagementSignal(reactions int) float64 {
	v := float64(reactions) * s.cfg.EngagementStep
	if v > s.cfg.EngagementCap {
		return s.cfg.EngagementCap
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
