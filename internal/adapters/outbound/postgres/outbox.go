package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/google/uuid"
)

var outboxEventFields = []string{
	"id",
	"entity_type",
	"entity_id",
	"topic",
	"event_type",
	"payload",
	"status",
	"retry_count",
	"max_retries",
	"last_error",
	"created_at",
}

// moodCheckPayload is the JSON document published for mood check events.
type moodCheckPayload struct {
	Type           string `json:"type"`
	SelectionID    string `json:"selection_id"`
	UserID         string `json:"user_id"`
	SelectedDate   string `json:"selected_date"`
	PrimaryEmotion string `json:"primary_emotion"`
	CreatedAt      string `json:"created_at"`
}

// OutboxRepository implements domain.OutboxRepository.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// RecordMoodCheckEvent implements domain.OutboxRepository.
func (op OutboxRepository) RecordMoodCheckEvent(ctx context.Context, event domain.MoodCheckEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payload, err := json.Marshal(moodCheckPayload{
		Type:           string(event.Type),
		SelectionID:    event.SelectionID.String(),
		UserID:         event.UserID.String(),
		SelectedDate:   dateParam(event.SelectedDate),
		PrimaryEmotion: string(event.PrimaryEmotion),
		CreatedAt:      event.CreatedAt.UTC().Format(time.RFC3339),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal mood check event: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(outboxEventFields...).
		Values(
			uuid.New(),
			string(domain.OutboxEntityType_MoodSelection),
			event.SelectionID,
			string(domain.OutboxTopic_MoodEvents),
			string(event.Type),
			payload,
			string(domain.OutboxStatus_Pending),
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events, oldest first.
// Selected rows are locked for the surrounding transaction.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(outboxEventFields...).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			oe                                   domain.OutboxEvent
			entityType, topic, eventType, status string
		)
		err := rows.Scan(
			&oe.ID,
			&entityType,
			&oe.EntityID,
			&topic,
			&eventType,
			&oe.Payload,
			&status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		oe.EntityType = domain.OutboxEntityType(entityType)
		oe.Topic = domain.OutboxTopic(topic)
		oe.EventType = domain.EventType(eventType)
		oe.Status = domain.OutboxStatus(status)
		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}
