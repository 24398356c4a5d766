package embedding

import (
	"context"
	"fmt"

	"github.com/chatsift/chatsift/internal/common"
)

// Static serves pre-computed vectors keyed by exact text. It backs
// tests and callers that vectorize offline.
type Static struct {
	vectors map[string][]float32
}

// NewStatic creates a Static vectorizer over the given text-to-vector
// map.
func NewStatic(vectors map[string][]float32) *Static {
	return &Static{vectors: vectors}
}

// Vectorize looks up each text; a missing entry makes the whole
// capability unavailable.
func (s *Static) Vectorize(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, ok := s.vectors[t]
		if !ok {
			return nil, fmt.Errorf("%w: no vector for text %q",
				common.ErrVectorizerUnavailable, t)
		}
		out[i] = v
	}
	return out, nil
}

// Unavailable is a Vectorizer that always fails, modeling an embedding
// capability that could not be resolved.
type Unavailable struct{}

// Vectorize always reports the capability as unavailable.
func (Unavailable) Vectorize(context.Context, []string) ([][]float32, error) {
	return nil, common.ErrVectorizerUnavailable
}
