package usecases

import (
	"context"
	"slices"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	// DefaultHistoryDays is the window used when no day count is requested.
	DefaultHistoryDays = 7
	// MaxHistoryDays bounds the history window.
	MaxHistoryDays = 90
)

// ListEmotionHistory lists the recent mood selections of a user.
type ListEmotionHistory interface {
	Query(ctx context.Context, userID uuid.UUID, days int) ([]domain.DailyMoodSelection, error)
}

// ListEmotionHistoryImpl reads the selections of the last days calendar days, today included.
type ListEmotionHistoryImpl struct {
	repo         domain.MoodSelectionRepository
	timeProvider domain.CurrentTimeProvider
}

// NewListEmotionHistoryImpl creates a new ListEmotionHistoryImpl.
func NewListEmotionHistoryImpl(r domain.MoodSelectionRepository, tp domain.CurrentTimeProvider) ListEmotionHistoryImpl {
	return ListEmotionHistoryImpl{repo: r, timeProvider: tp}
}

// Query returns the selections newest first.
func (l ListEmotionHistoryImpl) Query(ctx context.Context, userID uuid.UUID, days int) ([]domain.DailyMoodSelection, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if days < 1 || days > MaxHistoryDays {
		err := domain.NewValidationErr("days must be between 1 and 90")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	today := domain.DateOnly(l.timeProvider.Now())
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	selections, err := l.repo.ListSelections(spanCtx, userID, from, to)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	slices.Reverse(selections)
	return selections, nil
}

// InitListEmotionHistory initializes the ListEmotionHistory use case.
type InitListEmotionHistory struct {
	Repo         domain.MoodSelectionRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider     `resolve:""`
}

// Initialize registers the ListEmotionHistory use case implementation.
func (i InitListEmotionHistory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListEmotionHistory](NewListEmotionHistoryImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
