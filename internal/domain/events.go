package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_MOOD_CHECK_RECORDED is emitted when a user records or changes the daily mood.
	EventType_MOOD_CHECK_RECORDED EventType = "MOOD_CHECK.RECORDED"
)

// MoodCheckEvent is raised after a daily mood selection is stored.
type MoodCheckEvent struct {
	Type           EventType
	SelectionID    uuid.UUID
	UserID         uuid.UUID
	SelectedDate   time.Time
	PrimaryEmotion EmotionLabel
	CreatedAt      time.Time
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
