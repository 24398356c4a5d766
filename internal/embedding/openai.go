// Package embedding provides Vectorizer implementations for the
// similarity matcher. Vectorization is a caller-side capability: the
// core engine only consumes the resulting vectors.
package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/chatsift/chatsift/internal/common"
)

// OpenAI vectorizes texts through the OpenAI embeddings API.
type OpenAI struct {
	client *openai.Client
	model  openai.EmbeddingModel
	retry  common.RetryOptions
}

// NewOpenAI creates an OpenAI vectorizer. An empty model selects
// text-embedding-ada-002.
func NewOpenAI(apiKey string, model openai.EmbeddingModel) *OpenAI {
	if model == "" {
		model = openai.AdaEmbeddingV2
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
		retry:  common.RetryOptions{MaxAttempts: 3},
	}
}

// Vectorize embeds all texts in a single batched request, retrying
// transient API failures with exponential backoff.
func (o *OpenAI) Vectorize(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var resp openai.EmbeddingResponse
	err := common.WithRetry(ctx, func() error {
		var reqErr error
		resp, reqErr = o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: o.model,
			Input: texts,
		})
		return reqErr
	}, o.retry)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response has %d vectors for %d texts",
			len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
