package modelrunner

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/bomi/internal/telemetry"
)

// EmbeddingModel computes embeddings through the model runner embeddings endpoint.
type EmbeddingModel struct {
	client Client
	model  string
}

// NewEmbeddingModel creates an EmbeddingModel for the given model name.
func NewEmbeddingModel(client Client, model string) EmbeddingModel {
	return EmbeddingModel{client: client, model: model}
}

// Name returns the configured model name.
func (m EmbeddingModel) Name() string {
	return m.model
}

// Embed returns one vector per text, in input order.
func (m EmbeddingModel) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := m.client.Embeddings(spanCtx, EmbeddingsRequest{
		Model: m.model,
		Input: texts,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	if len(resp.Data) != len(texts) {
		err := fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	out := make([][]float64, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) || out[d.Index] != nil {
			err := fmt.Errorf("unexpected embedding index %d", d.Index)
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}
