package usecases

import (
	"context"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListMoodCards returns the mood cards offered today.
type ListMoodCards interface {
	Query(ctx context.Context) ([]domain.MoodCard, error)
}

type ListMoodCardsImpl struct {
	catalog      domain.MoodCardCatalog
	timeProvider domain.CurrentTimeProvider
}

func NewListMoodCardsImpl(c domain.MoodCardCatalog, tp domain.CurrentTimeProvider) ListMoodCardsImpl {
	return ListMoodCardsImpl{catalog: c, timeProvider: tp}
}

func (l ListMoodCardsImpl) Query(ctx context.Context) ([]domain.MoodCard, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return l.catalog.DailyCards(domain.DateOnly(l.timeProvider.Now())), nil
}

type InitListMoodCards struct {
	Catalog      domain.MoodCardCatalog     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

func (i InitListMoodCards) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListMoodCards](NewListMoodCardsImpl(i.Catalog, i.TimeProvider))
	return ctx, nil
}
