package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestListMoodCardsImpl_Query(t *testing.T) {
	catalog := domain.NewMockMoodCardCatalog(t)
	catalog.EXPECT().DailyCards(fixtureToday).Return(fixtureCards)

	got, err := NewListMoodCardsImpl(catalog, fixedClock(t, fixtureNow)).Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, fixtureCards, got)
}

func TestInitListMoodCards_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitListMoodCards{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[ListMoodCards]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
