package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetWeeklyMoodReport builds the weekly mood report of a user on demand.
type GetWeeklyMoodReport interface {
	// Query builds the report of the week containing weekStart. A blank
	// weekStart means the current week.
	Query(ctx context.Context, userID uuid.UUID, weekStart string) (domain.WeeklyMoodReport, error)
}

type GetWeeklyMoodReportImpl struct {
	repo         domain.MoodSelectionRepository
	characters   domain.EmotionCharacterResolver
	timeProvider domain.CurrentTimeProvider
}

func NewGetWeeklyMoodReportImpl(
	r domain.MoodSelectionRepository,
	c domain.EmotionCharacterResolver,
	tp domain.CurrentTimeProvider,
) GetWeeklyMoodReportImpl {
	return GetWeeklyMoodReportImpl{repo: r, characters: c, timeProvider: tp}
}

func (g GetWeeklyMoodReportImpl) Query(ctx context.Context, userID uuid.UUID, weekStart string) (domain.WeeklyMoodReport, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WeeklyMoodReport{}, err
	}

	now := g.timeProvider.Now()
	start, err := domain.ParseWeekStart(weekStart, now, now.Location())
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyMoodReport{}, err
	}

	report, err := buildWeeklyReport(spanCtx, g.repo, g.characters, userID, start)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyMoodReport{}, err
	}
	return report, nil
}

// buildWeeklyReport loads the selections of the week starting at weekStart and aggregates them.
func buildWeeklyReport(
	ctx context.Context,
	repo domain.MoodSelectionRepository,
	characters domain.EmotionCharacterResolver,
	userID uuid.UUID,
	weekStart time.Time,
) (domain.WeeklyMoodReport, error) {
	selections, err := repo.ListSelections(ctx, userID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return domain.WeeklyMoodReport{}, fmt.Errorf("failed to list week selections: %w", err)
	}
	return domain.BuildWeeklyMoodReport(userID, weekStart, selections, characters), nil
}

type InitGetWeeklyMoodReport struct {
	Repo         domain.MoodSelectionRepository  `resolve:""`
	Characters   domain.EmotionCharacterResolver `resolve:""`
	TimeProvider domain.CurrentTimeProvider      `resolve:""`
}

func (i InitGetWeeklyMoodReport) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetWeeklyMoodReport](NewGetWeeklyMoodReportImpl(i.Repo, i.Characters, i.TimeProvider))
	return ctx, nil
}
