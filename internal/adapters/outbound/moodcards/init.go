package moodcards

import (
	"context"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitMoodCards registers the embedded catalog and character map.
type InitMoodCards struct{}

// Initialize decodes the embedded YAML documents.
func (InitMoodCards) Initialize(ctx context.Context) (context.Context, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return ctx, err
	}
	characters, err := DefaultCharacterMap()
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.MoodCardCatalog](catalog)
	depend.Register[domain.EmotionCharacterResolver](characters)
	return ctx, nil
}
