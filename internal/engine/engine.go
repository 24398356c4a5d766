// Package engine orchestrates the message triage pipeline:
// classification, priority scoring, similarity matching, and automation
// suggestion generation over one finite batch at a time.
package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/chatsift/chatsift/internal/classify"
	"github.com/chatsift/chatsift/internal/common"
	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/priority"
	"github.com/chatsift/chatsift/internal/similarity"
	"github.com/chatsift/chatsift/internal/suggest"
)

// Config holds engine-level options.
type Config struct {
	// Workers bounds the fan-out for the per-message stages.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// Engine runs the four pipeline stages. All stages are deterministic
// for a given batch and configuration, regardless of worker count.
type Engine struct {
	classifier *classify.Classifier
	scorer     *priority.Scorer
	matcher    *similarity.Matcher
	generator  *suggest.Generator
	workers    int
}

// New creates an engine from its stage implementations.
func New(classifier *classify.Classifier, scorer *priority.Scorer, matcher *similarity.Matcher, generator *suggest.Generator, cfg Config) *Engine {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		classifier: classifier,
		scorer:     scorer,
		matcher:    matcher,
		generator:  generator,
		workers:    workers,
	}
}

// Result is the complete output for one analyzed batch.
type Result struct {
	RunID       string                       `json:"run_id"`
	Messages    []model.ScoredMessage        `json:"messages"`
	Edges       []model.SimilarityEdge       `json:"edges"`
	Suggestions []model.AutomationSuggestion `json:"suggestions"`
	Stats       Stats                        `json:"stats"`
}

// Analyze runs the full pipeline over one batch. An empty batch is
// valid and yields empty outputs. Malformed records (missing or
// duplicate ids) fail the whole batch with an InvalidInputError:
// records are never silently skipped, because suggestion support
// thresholds depend on batch completeness.
func (e *Engine) Analyze(ctx context.Context, batch []model.RawMessage) (*Result, error) {
	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Messages:    []model.ScoredMessage{},
		Edges:       []model.SimilarityEdge{},
		Suggestions: []model.AutomationSuggestion{},
	}

	slog.Info("analyzing batch", "run_id", result.RunID, "messages", len(batch))

	if len(batch) == 0 {
		result.Stats = BuildStats(nil, nil, nil)
		return result, nil
	}

	result.Messages = e.classifyAndScore(batch)

	edges, err := e.matcher.FindSimilar(ctx, result.Messages)
	if err != nil {
		return nil, err
	}
	if edges != nil {
		result.Edges = edges
	}

	result.Suggestions = e.generator.Generate(result.Messages, result.Edges)
	result.Stats = BuildStats(result.Messages, result.Edges, result.Suggestions)

	slog.Info("batch analyzed",
		"run_id", result.RunID,
		"edges", len(result.Edges),
		"suggestions", len(result.Suggestions))

	return result, nil
}

// classifyAndScore fans the per-message stages out over the worker
// pool. Results are written by index, so output order always matches
// input order no matter how the work interleaves.
func (e *Engine) classifyAndScore(batch []model.RawMessage) []model.ScoredMessage {
	newest := 0.0
	for _, m := range batch {
		if m.Timestamp > newest {
			newest = m.Timestamp
		}
	}

	scored := make([]model.ScoredMessage, len(batch))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				classified := e.classifier.Classify(batch[i])
				scored[i] = e.scorer.Score(classified, newest)
			}
		}()
	}

	for i := range batch {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return scored
}

// validateBatch rejects records with missing or duplicate ids.
func validateBatch(batch []model.RawMessage) error {
	seen := make(map[string]struct{}, len(batch))
	for _, m := range batch {
		if m.ID == "" {
			return common.NewInvalidInput("", "id", "missing")
		}
		if _, dup := seen[m.ID]; dup {
			return common.NewInvalidInput(m.ID, "id", "duplicate within batch")
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
