package similarity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chatsift/chatsift/internal/model"
)

// Config holds the matcher's thresholds and signal weights.
type Config struct {
	// Threshold is the minimum combined score for a pair to become an
	// edge, in (0,1].
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	// JaccardWeight balances token overlap against edit distance inside
	// the lexical signal.
	JaccardWeight float64 `mapstructure:"jaccard_weight" yaml:"jaccard_weight"`
	// EmbeddingWeight balances the embedding signal against the lexical
	// signal when vectors are available.
	EmbeddingWeight float64 `mapstructure:"embedding_weight" yaml:"embedding_weight"`
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:       0.3,
		JaccardWeight:   0.5,
		EmbeddingWeight: 0.7,
	}
}

// Matcher computes the similarity edge set for a batch. Construct with
// NewMatcher; a nil vectorizer selects the lexical-only provider.
type Matcher struct {
	vectorizer Vectorizer
	cfg        Config

	// Progress, when set, is invoked after each compared pair with the
	// number of pairs done and the total. Used for CLI progress bars.
	Progress func(done, total int)
}

// NewMatcher creates a matcher. vectorizer may be nil, in which case
// all edges are scored lexically.
func NewMatcher(vectorizer Vectorizer, cfg Config) (*Matcher, error) {
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		return nil, fmt.Errorf("similarity threshold %v outside (0,1]", cfg.Threshold)
	}
	if cfg.JaccardWeight < 0 || cfg.JaccardWeight > 1 {
		return nil, fmt.Errorf("jaccard weight %v outside [0,1]", cfg.JaccardWeight)
	}
	if cfg.EmbeddingWeight < 0 || cfg.EmbeddingWeight > 1 {
		return nil, fmt.Errorf("embedding weight %v outside [0,1]", cfg.EmbeddingWeight)
	}
	return &Matcher{vectorizer: vectorizer, cfg: cfg}, nil
}

// FindSimilar compares every unordered message pair once and returns
// the edges whose combined score meets the threshold. Edge order
// follows pair iteration order (i < j over batch indices), so output is
// deterministic for a given batch.
//
// A vectorizer failure downgrades the whole batch to lexical-only
// scoring rather than aborting it.
func (m *Matcher) FindSimilar(ctx context.Context, msgs []model.ScoredMessage) ([]model.SimilarityEdge, error) {
	if len(msgs) < 2 {
		return nil, nil
	}

	docs := make([]Document, len(msgs))
	for i, msg := range msgs {
		docs[i] = NewDocument(msg.ID, msg.Text)
	}

	provider := m.provider(ctx, docs)

	total := len(msgs) * (len(msgs) - 1) / 2
	done := 0
	var edges []model.SimilarityEdge
	for i := 0; i < len(docs); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := i + 1; j < len(docs); j++ {
			score := provider.Score(&docs[i], &docs[j])
			if score >= m.cfg.Threshold {
				edges = append(edges, model.SimilarityEdge{
					SourceID:      docs[i].ID,
					TargetID:      docs[j].ID,
					Score:         score,
					SharedPhrases: SharedPhrases(&docs[i], &docs[j]),
					Mode:          provider.Mode(),
				})
			}
			done++
			if m.Progress != nil {
				m.Progress(done, total)
			}
		}
	}

	return edges, nil
}

// provider vectorizes the batch and picks the scoring mode. Missing or
// failed vectorization falls back to lexical-only.
func (m *Matcher) provider(ctx context.Context, docs []Document) Provider {
	lexical := LexicalProvider{cfg: m.cfg}
	if m.vectorizer == nil {
		return lexical
	}

	texts := make([]string, len(docs))
	for i := range docs {
		texts[i] = docs[i].Norm
	}

	vectors, err := m.vectorizer.Vectorize(ctx, texts)
	if err != nil || len(vectors) != len(docs) {
		slog.Warn("vectorizer unavailable, falling back to lexical similarity",
			"error", err)
		return lexical
	}

	for i := range docs {
		docs[i].Vector = vectors[i]
	}
	return EmbeddingProvider{lexical: lexical, cfg: m.cfg}
}
