package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var weeklyReportFields = []string{
	"id",
	"user_id",
	"week_start",
	"report",
	"narrative",
	"model",
	"generated_at",
}

const upsertWeeklyReportSuffix = `ON CONFLICT (user_id, week_start) DO UPDATE SET ` +
	`report = EXCLUDED.report, narrative = EXCLUDED.narrative, model = EXCLUDED.model, generated_at = EXCLUDED.generated_at`

// WeeklyReportRepository implements domain.WeeklyReportRepository.
type WeeklyReportRepository struct {
	sb squirrel.StatementBuilderType
}

// NewWeeklyReportRepository creates a new WeeklyReportRepository.
func NewWeeklyReportRepository(br squirrel.BaseRunner) WeeklyReportRepository {
	return WeeklyReportRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// StoreReport implements domain.WeeklyReportRepository.
func (r WeeklyReportRepository) StoreReport(ctx context.Context, snapshot domain.WeeklyReportSnapshot) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	reportJSON, err := json.Marshal(snapshot.Report)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal weekly report: %w", err)
	}

	_, err = r.sb.
		Insert("weekly_mood_reports").
		Columns(weeklyReportFields...).
		Values(
			snapshot.ID,
			snapshot.UserID,
			dateParam(snapshot.WeekStart),
			reportJSON,
			snapshot.Narrative,
			snapshot.Model,
			snapshot.GeneratedAt,
		).
		Suffix(upsertWeeklyReportSuffix).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store weekly report: %w", err)
	}
	return nil
}

// GetLatestReport implements domain.WeeklyReportRepository.
func (r WeeklyReportRepository) GetLatestReport(ctx context.Context, userID uuid.UUID) (domain.WeeklyReportSnapshot, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		snapshot   domain.WeeklyReportSnapshot
		reportJSON []byte
	)
	err := r.sb.
		Select(weeklyReportFields...).
		From("weekly_mood_reports").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("week_start DESC", "generated_at DESC").
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&snapshot.ID,
			&snapshot.UserID,
			&snapshot.WeekStart,
			&reportJSON,
			&snapshot.Narrative,
			&snapshot.Model,
			&snapshot.GeneratedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WeeklyReportSnapshot{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyReportSnapshot{}, false, fmt.Errorf("failed to get weekly report: %w", err)
	}

	err = json.Unmarshal(reportJSON, &snapshot.Report)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyReportSnapshot{}, false, fmt.Errorf("failed to unmarshal weekly report: %w", err)
	}
	return snapshot, true, nil
}

// InitWeeklyReportRepository is a Symbiont initializer for WeeklyReportRepository.
type InitWeeklyReportRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the WeeklyReportRepository in the dependency container.
func (i InitWeeklyReportRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.WeeklyReportRepository](NewWeeklyReportRepository(i.DB))
	return ctx, nil
}
