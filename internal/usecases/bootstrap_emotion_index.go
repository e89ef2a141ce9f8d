package usecases

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// BootstrapEmotionIndex loads the seed corpus into the emotion index.
type BootstrapEmotionIndex interface {
	Execute(ctx context.Context) (domain.BootstrapResult, error)
}

// BootstrapEmotionIndexImpl rebuilds the index from the corpus file.
// Runs are serialized; a failed run leaves the index empty.
type BootstrapEmotionIndexImpl struct {
	loader     domain.SeedCorpusLoader
	embedder   domain.Embedder
	index      domain.EmotionIndex
	corpusPath string
	logger     *log.Logger
	mu         *sync.Mutex
}

// NewBootstrapEmotionIndexImpl creates a new BootstrapEmotionIndexImpl.
func NewBootstrapEmotionIndexImpl(
	loader domain.SeedCorpusLoader,
	embedder domain.Embedder,
	index domain.EmotionIndex,
	corpusPath string,
	logger *log.Logger,
) BootstrapEmotionIndexImpl {
	return BootstrapEmotionIndexImpl{
		loader:     loader,
		embedder:   embedder,
		index:      index,
		corpusPath: corpusPath,
		logger:     logger,
		mu:         &sync.Mutex{},
	}
}

// Execute runs the bootstrap. Concurrent callers wait for the running one.
func (b BootstrapEmotionIndexImpl) Execute(ctx context.Context) (domain.BootstrapResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	b.mu.Lock()
	defer b.mu.Unlock()

	count, err := b.rebuild(spanCtx)
	if err != nil {
		if resetErr := b.index.Reset(spanCtx); resetErr != nil {
			err = fmt.Errorf("%w (reset failed: %v)", err, resetErr)
		}
		err = domain.NewBootstrapFailedErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		RecordBootstrap(spanCtx, outcomeError, 0)
		return domain.BootstrapResult{}, err
	}

	RecordBootstrap(spanCtx, outcomeSuccess, count)
	if b.logger != nil {
		b.logger.Printf("BootstrapEmotionIndex: indexed %d documents from %s", count, b.corpusPath)
	}
	return domain.BootstrapResult{
		Status:        "success",
		Message:       fmt.Sprintf("Vector store initialized with %d documents", count),
		DocumentCount: count,
	}, nil
}

func (b BootstrapEmotionIndexImpl) rebuild(ctx context.Context) (int, error) {
	examples, err := b.loader.Load(ctx, b.corpusPath)
	if err != nil {
		return 0, err
	}

	texts := make([]string, len(examples))
	for i, e := range examples {
		texts[i] = e.Text
	}

	embeddings, err := b.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, err
	}

	if err := b.index.Replace(ctx, examples, embeddings); err != nil {
		return 0, err
	}
	return len(examples), nil
}

// InitBootstrapEmotionIndex initializes the BootstrapEmotionIndex use case.
type InitBootstrapEmotionIndex struct {
	Loader     domain.SeedCorpusLoader `resolve:""`
	Embedder   domain.Embedder         `resolve:""`
	Index      domain.EmotionIndex     `resolve:""`
	Logger     *log.Logger             `resolve:""`
	CorpusPath string                  `config:"EMOTION_CORPUS_PATH" default:"data/emotion_seeds.json"`
}

// Initialize registers the BootstrapEmotionIndex use case implementation.
func (i InitBootstrapEmotionIndex) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BootstrapEmotionIndex](NewBootstrapEmotionIndexImpl(
		i.Loader, i.Embedder, i.Index, i.CorpusPath, i.Logger,
	))
	return ctx, nil
}
