package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sentiment is the coarse polarity of a mood card.
type Sentiment string

const (
	// Sentiment_Negative marks a negative mood card.
	Sentiment_Negative Sentiment = "negative"
	// Sentiment_Neutral marks a neutral mood card.
	Sentiment_Neutral Sentiment = "neutral"
	// Sentiment_Positive marks a positive mood card.
	Sentiment_Positive Sentiment = "positive"
)

// Sentiments lists every sentiment in catalog order.
var Sentiments = []Sentiment{Sentiment_Negative, Sentiment_Neutral, Sentiment_Positive}

// Score maps the sentiment onto -1, 0 or 1.
func (s Sentiment) Score() float64 {
	switch s {
	case Sentiment_Positive:
		return 1
	case Sentiment_Negative:
		return -1
	default:
		return 0
	}
}

// MoodCard is one of the images offered in the daily mood check.
type MoodCard struct {
	ID          int
	Sentiment   Sentiment
	Description string
}

// MoodCardCatalog produces the cards offered on a given day.
type MoodCardCatalog interface {
	// DailyCards returns one card per sentiment. The same date always yields the same cards.
	DailyCards(date time.Time) []MoodCard
}

// FindMoodCard returns the card with the given id.
func FindMoodCard(cards []MoodCard, id int) (MoodCard, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return MoodCard{}, false
}

// DailyMoodSelection is the card a user picked on a given day together with
// the emotion analysis of its description.
type DailyMoodSelection struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	SelectedDate   time.Time
	ImageID        int
	Sentiment      Sentiment
	Description    string
	PrimaryEmotion EmotionLabel
	Emotions       map[EmotionLabel]int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyMoodStatus reports whether the user already checked in today.
type DailyMoodStatus struct {
	UserID          uuid.UUID
	Completed       bool
	LastCheckDate   *time.Time
	SelectedImageID *int
}

// MoodSelectionRepository persists daily mood selections.
type MoodSelectionRepository interface {
	// UpsertSelection stores the selection for (user, date) and returns the stored row.
	// An existing row keeps its id and creation time; the flag reports whether it existed.
	UpsertSelection(ctx context.Context, selection DailyMoodSelection) (DailyMoodSelection, bool, error)
	// GetSelection returns the selection of a user on a date.
	GetSelection(ctx context.Context, userID uuid.UUID, date time.Time) (DailyMoodSelection, bool, error)
	// ListSelections returns the selections of a user with from <= date < to, oldest first.
	ListSelections(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]DailyMoodSelection, error)
}
