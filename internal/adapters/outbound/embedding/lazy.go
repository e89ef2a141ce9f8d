package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
)

// Model computes raw embeddings for a batch of texts.
type Model interface {
	Name() string
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// ModelLoader creates the model on first use.
type ModelLoader func(ctx context.Context) (Model, error)

// LazyEmbedder implements domain.Embedder on top of a lazily loaded Model.
// The first successful load is cached for the lifetime of the embedder. A
// failed load is reported to the caller and attempted again on the next call.
type LazyEmbedder struct {
	modelName string
	load      ModelLoader

	mu    sync.Mutex
	model Model

	dimension atomic.Int64
}

// NewLazyEmbedder creates a LazyEmbedder.
func NewLazyEmbedder(modelName string, load ModelLoader) *LazyEmbedder {
	return &LazyEmbedder{modelName: modelName, load: load}
}

// Embed implements domain.Embedder.
func (e *LazyEmbedder) Embed(ctx context.Context, text string) (domain.Embedding, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		err := domain.NewEmbeddingInputInvalidErr("text must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vecs, err := e.embed(spanCtx, []string{text})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch implements domain.Embedder.
func (e *LazyEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(texts) == 0 {
		return []domain.Embedding{}, nil
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			err := domain.NewEmbeddingInputInvalidErr(fmt.Sprintf("text at index %d must not be empty", i))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
	}

	vecs, err := e.embed(spanCtx, texts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return vecs, nil
}

// Dimension implements domain.Embedder.
func (e *LazyEmbedder) Dimension() int {
	return int(e.dimension.Load())
}

func (e *LazyEmbedder) getModel(ctx context.Context) (Model, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.model != nil {
		return e.model, nil
	}
	m, err := e.load(ctx)
	if err != nil {
		return nil, domain.NewModelUnavailableErr(e.modelName, err)
	}
	if m == nil {
		return nil, domain.NewModelUnavailableErr(e.modelName, errors.New("loader returned no model"))
	}
	e.model = m
	return m, nil
}

func (e *LazyEmbedder) embed(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	m, err := e.getModel(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := m.Embed(ctx, texts)
	if err != nil {
		return nil, domain.NewModelUnavailableErr(e.modelName, err)
	}
	if len(raw) != len(texts) {
		return nil, domain.NewModelUnavailableErr(e.modelName,
			fmt.Errorf("expected %d vectors, got %d", len(texts), len(raw)))
	}

	out := make([]domain.Embedding, len(raw))
	for i, v := range raw {
		if len(v) == 0 {
			return nil, domain.NewModelUnavailableErr(e.modelName, fmt.Errorf("empty vector at index %d", i))
		}
		// zero and non-finite vectors cannot be compared by cosine similarity
		if n := common.Norm(v); n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, domain.NewModelUnavailableErr(e.modelName, fmt.Errorf("vector at index %d has no usable norm", i))
		}
		if !e.dimension.CompareAndSwap(0, int64(len(v))) {
			if want := e.dimension.Load(); int64(len(v)) != want {
				return nil, domain.NewModelUnavailableErr(e.modelName,
					fmt.Errorf("vector at index %d has dimension %d, expected %d", i, len(v), want))
			}
		}
		out[i] = domain.Embedding(v)
	}
	return out, nil
}
