package usecases

import (
	"context"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

type GetEngineHealth interface {
	Query(ctx context.Context) (domain.EngineHealth, error)
}

type GetEngineHealthImpl struct {
	index domain.EmotionIndex
}

func NewGetEngineHealthImpl(idx domain.EmotionIndex) GetEngineHealthImpl {
	return GetEngineHealthImpl{index: idx}
}

// Query reports the engine as ready once the index holds at least one example.
func (g GetEngineHealthImpl) Query(ctx context.Context) (domain.EngineHealth, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := g.index.Count(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EngineHealth{}, err
	}

	health := domain.EngineHealth{
		Status:           "not_ready",
		VectorStoreCount: count,
		Ready:            count > 0,
	}
	if health.Ready {
		health.Status = "ok"
	}
	return health, nil
}

type InitGetEngineHealth struct {
	Index domain.EmotionIndex `resolve:""`
}

func (i InitGetEngineHealth) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetEngineHealth](NewGetEngineHealthImpl(i.Index))
	return ctx, nil
}
