package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxEntityType identifies the aggregate represented by an outbox event.
type OutboxEntityType string

const (
	// OutboxEntityType_MoodSelection represents daily mood selection events.
	OutboxEntityType_MoodSelection OutboxEntityType = "DailyMoodSelection"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	// OutboxTopic_MoodEvents is the topic for mood check events.
	OutboxTopic_MoodEvents OutboxTopic = "MoodEvents"
)

// DefaultOutboxMaxRetries bounds the publish attempts of an outbox event.
const DefaultOutboxMaxRetries = 5

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID         uuid.UUID
	EntityType OutboxEntityType
	EntityID   uuid.UUID
	Topic      OutboxTopic
	EventType  EventType
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  *string
	CreatedAt  time.Time
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// RecordMoodCheckEvent records a mood check event in the outbox.
	RecordMoodCheckEvent(ctx context.Context, event MoodCheckEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent deletes an event from the outbox.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
