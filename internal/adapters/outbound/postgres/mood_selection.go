package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var moodSelectionFields = []string{
	"id",
	"user_id",
	"selected_date",
	"image_id",
	"sentiment",
	"description",
	"primary_emotion",
	"emotions",
	"created_at",
	"updated_at",
}

// upsertMoodSelectionSuffix keeps the id and created_at of an existing row.
// xmax is non-zero when the row was updated rather than inserted.
const upsertMoodSelectionSuffix = `ON CONFLICT (user_id, selected_date) DO UPDATE SET ` +
	`image_id = EXCLUDED.image_id, sentiment = EXCLUDED.sentiment, description = EXCLUDED.description, ` +
	`primary_emotion = EXCLUDED.primary_emotion, emotions = EXCLUDED.emotions, updated_at = EXCLUDED.updated_at ` +
	`RETURNING id, created_at, (xmax <> 0)`

// MoodSelectionRepository implements domain.MoodSelectionRepository.
type MoodSelectionRepository struct {
	sb squirrel.StatementBuilderType
}

// NewMoodSelectionRepository creates a new MoodSelectionRepository.
func NewMoodSelectionRepository(br squirrel.BaseRunner) MoodSelectionRepository {
	return MoodSelectionRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// UpsertSelection implements domain.MoodSelectionRepository.
func (r MoodSelectionRepository) UpsertSelection(ctx context.Context, sel domain.DailyMoodSelection) (domain.DailyMoodSelection, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	emotionsJSON, err := json.Marshal(sel.Emotions)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DailyMoodSelection{}, false, fmt.Errorf("failed to marshal emotions: %w", err)
	}

	var existed bool
	err = r.sb.
		Insert("daily_mood_selections").
		Columns(moodSelectionFields...).
		Values(
			sel.ID,
			sel.UserID,
			dateParam(sel.SelectedDate),
			sel.ImageID,
			string(sel.Sentiment),
			sel.Description,
			string(sel.PrimaryEmotion),
			emotionsJSON,
			sel.CreatedAt,
			sel.UpdatedAt,
		).
		Suffix(upsertMoodSelectionSuffix).
		QueryRowContext(spanCtx).
		Scan(&sel.ID, &sel.CreatedAt, &existed)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DailyMoodSelection{}, false, fmt.Errorf("failed to upsert mood selection: %w", err)
	}

	return sel, existed, nil
}

// GetSelection implements domain.MoodSelectionRepository.
func (r MoodSelectionRepository) GetSelection(ctx context.Context, userID uuid.UUID, date time.Time) (domain.DailyMoodSelection, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := r.sb.
		Select(moodSelectionFields...).
		From("daily_mood_selections").
		Where(squirrel.Eq{"user_id": userID, "selected_date": dateParam(date)}).
		QueryRowContext(spanCtx)

	sel, err := scanMoodSelection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DailyMoodSelection{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DailyMoodSelection{}, false, fmt.Errorf("failed to get mood selection: %w", err)
	}
	return sel, true, nil
}

// ListSelections implements domain.MoodSelectionRepository.
func (r MoodSelectionRepository) ListSelections(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyMoodSelection, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := r.sb.
		Select(moodSelectionFields...).
		From("daily_mood_selections").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"selected_date": dateParam(from)}).
		Where(squirrel.Lt{"selected_date": dateParam(to)}).
		OrderBy("selected_date ASC", "updated_at ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to list mood selections: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	selections := []domain.DailyMoodSelection{}
	for rows.Next() {
		sel, err := scanMoodSelection(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to scan mood selection: %w", err)
		}
		selections = append(selections, sel)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return selections, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMoodSelection(row rowScanner) (domain.DailyMoodSelection, error) {
	var (
		sel          domain.DailyMoodSelection
		sentiment    string
		primary      string
		emotionsJSON []byte
	)
	err := row.Scan(
		&sel.ID,
		&sel.UserID,
		&sel.SelectedDate,
		&sel.ImageID,
		&sentiment,
		&sel.Description,
		&primary,
		&emotionsJSON,
		&sel.CreatedAt,
		&sel.UpdatedAt,
	)
	if err != nil {
		return domain.DailyMoodSelection{}, err
	}
	sel.Sentiment = domain.Sentiment(sentiment)
	sel.PrimaryEmotion = domain.EmotionLabel(primary)
	if len(emotionsJSON) > 0 {
		if err := json.Unmarshal(emotionsJSON, &sel.Emotions); err != nil {
			return domain.DailyMoodSelection{}, fmt.Errorf("failed to unmarshal emotions: %w", err)
		}
	}
	return sel, nil
}

// dateParam renders a calendar date so the server never applies a time zone conversion.
func dateParam(t time.Time) string {
	return t.Format(time.DateOnly)
}

// InitMoodSelectionRepository is a Symbiont initializer for MoodSelectionRepository.
type InitMoodSelectionRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the MoodSelectionRepository in the dependency container.
func (i InitMoodSelectionRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MoodSelectionRepository](NewMoodSelectionRepository(i.DB))
	return ctx, nil
}
