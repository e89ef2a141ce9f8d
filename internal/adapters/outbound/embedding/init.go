package embedding

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// ProviderLocal selects the in-process hashing model.
	ProviderLocal = "local"
	// ProviderModelRunner selects the model runner embeddings endpoint.
	ProviderModelRunner = "modelrunner"

	warmupText = "안녕하세요"
)

// InitEmbedder registers the configured domain.Embedder.
type InitEmbedder struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	Provider   string       `config:"EMBEDDING_PROVIDER" default:"local"`
	Model      string       `config:"EMBEDDING_MODEL" default:"hash-ngram-v1"`
	Host       string       `config:"EMBEDDING_MODEL_HOST" default:"http://localhost:12434"`
	Dimension  int          `config:"EMBEDDING_DIMENSION" default:"512"`
}

// Initialize builds the embedder. The model itself is loaded on first use.
func (i InitEmbedder) Initialize(ctx context.Context) (context.Context, error) {
	loader, err := i.loader()
	if err != nil {
		return ctx, err
	}
	if i.Logger != nil {
		i.Logger.Printf("InitEmbedder: using %s provider with model %q", i.Provider, i.Model)
	}
	depend.Register[domain.Embedder](NewLazyEmbedder(i.Model, loader))
	return ctx, nil
}

func (i InitEmbedder) loader() (ModelLoader, error) {
	switch i.Provider {
	case ProviderLocal:
		if i.Dimension < 1 {
			return nil, fmt.Errorf("EMBEDDING_DIMENSION must be positive, got %d", i.Dimension)
		}
		return func(context.Context) (Model, error) {
			return NewHashingModel(i.Model, i.Dimension), nil
		}, nil
	case ProviderModelRunner:
		client := modelrunner.NewClient(i.Host, "", i.HttpClient)
		return func(ctx context.Context) (Model, error) {
			m := modelrunner.NewEmbeddingModel(client, i.Model)
			if _, err := m.Embed(ctx, []string{warmupText}); err != nil {
				return nil, fmt.Errorf("warmup: %w", err)
			}
			return m, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown EMBEDDING_PROVIDER %q", i.Provider)
	}
}
