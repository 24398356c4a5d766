// Package similarity finds pairs of messages that are near-duplicates
// or closely related.
//
// Scores blend a lexical signal (token overlap and normalized edit
// distance) with an optional embedding signal (cosine similarity of
// dense vectors). When no vectorizer is available the matcher degrades
// to lexical-only scoring; that is a supported mode, not an error.
package similarity

import (
	"context"

	"github.com/chatsift/chatsift/internal/model"
	"github.com/chatsift/chatsift/internal/textutil"
)

// Vectorizer produces dense vector representations of message texts.
// It is a caller-supplied capability: the engine never loads models or
// performs network I/O on its own behalf.
type Vectorizer interface {
	// Vectorize returns one vector per input text, in input order.
	Vectorize(ctx context.Context, texts []string) ([][]float32, error)
}

// Document is the pre-computed view of one message used for pairwise
// comparison. Building documents once keeps the O(n²) pairwise loop
// cheap.
type Document struct {
	ID      string
	Norm    string
	Content []string // folded tokens, stop words removed
	set     map[string]struct{}
	Vector  []float32
}

// NewDocument preprocesses a message text for comparison.
func NewDocument(id, text string) Document {
	content := textutil.ContentTokens(textutil.Tokenize(text))
	set := make(map[string]struct{}, len(content))
	for _, t := range content {
		set[t] = struct{}{}
	}
	return Document{
		ID:      id,
		Norm:    textutil.Normalize(text),
		Content: content,
		set:     set,
	}
}

// Provider computes the combined similarity score for a document pair.
// Implementations must be symmetric: Score(a,b) == Score(b,a).
type Provider interface {
	// Score returns a similarity in [0,1].
	Score(a, b *Document) float64
	// Mode identifies which signals the provider blends.
	Mode() model.SimilarityMode
}

// LexicalProvider scores pairs from token overlap and edit distance
// alone.
type LexicalProvider struct {
	cfg Config
}

// Score blends Jaccard token overlap with a normalized edit-distance
// ratio, both in [0,1].
func (p LexicalProvider) Score(a, b *Document) float64 {
	return p.cfg.JaccardWeight*jaccard(a, b) +
		(1-p.cfg.JaccardWeight)*editRatio(a.Norm, b.Norm)
}

// Mode identifies the provider as lexical-only.
func (p LexicalProvider) Mode() model.SimilarityMode {
	return model.SimilarityModeLexical
}

// EmbeddingProvider blends the lexical score with cosine similarity of
// pre-computed document vectors.
type EmbeddingProvider struct {
	lexical LexicalProvider
	cfg     Config
}

// Score returns the weighted average of the embedding and lexical
// signals. Pairs where either vector is missing fall back to the
// lexical score.
func (p EmbeddingProvider) Score(a, b *Document) float64 {
	lex := p.lexical.Score(a, b)
	if len(a.Vector) == 0 || len(b.Vector) == 0 {
		return lex
	}
	cos := clamp01(CosineSimilarity(a.Vector, b.Vector))
	return p.cfg.EmbeddingWeight*cos + (1-p.cfg.EmbeddingWeight)*lex
}

// Mode identifies the provider as lexical-plus-embedding.
func (p EmbeddingProvider) Mode() model.SimilarityMode {
	return model.SimilarityModeCombined
}

// jaccard computes token-set overlap over the content tokens.
func jaccard(a, b *Document) float64 {
	if len(a.set) == 0 || len(b.set) == 0 {
		return 0
	}
	inter := 0
	for t := range a.set {
		if _, ok := b.set[t]; ok {
			inter++
		}
	}
	union := len(a.set) + len(b.set) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// editRatio converts Levenshtein distance between the normalized texts
// into a similarity in [0,1].
func editRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
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
