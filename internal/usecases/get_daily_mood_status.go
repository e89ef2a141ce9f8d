package usecases

import (
	"context"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetDailyMoodStatus reports whether a user already checked in today.
type GetDailyMoodStatus interface {
	Query(ctx context.Context, userID uuid.UUID) (domain.DailyMoodStatus, error)
}

type GetDailyMoodStatusImpl struct {
	repo         domain.MoodSelectionRepository
	timeProvider domain.CurrentTimeProvider
}

func NewGetDailyMoodStatusImpl(r domain.MoodSelectionRepository, tp domain.CurrentTimeProvider) GetDailyMoodStatusImpl {
	return GetDailyMoodStatusImpl{repo: r, timeProvider: tp}
}

func (g GetDailyMoodStatusImpl) Query(ctx context.Context, userID uuid.UUID) (domain.DailyMoodStatus, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.DailyMoodStatus{}, err
	}

	selection, found, err := g.repo.GetSelection(spanCtx, userID, domain.DateOnly(g.timeProvider.Now()))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DailyMoodStatus{}, err
	}

	status := domain.DailyMoodStatus{UserID: userID, Completed: found}
	if found {
		status.LastCheckDate = common.Ptr(selection.SelectedDate)
		status.SelectedImageID = common.Ptr(selection.ImageID)
	}
	return status, nil
}

type InitGetDailyMoodStatus struct {
	Repo         domain.MoodSelectionRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider     `resolve:""`
}

func (i InitGetDailyMoodStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetDailyMoodStatus](NewGetDailyMoodStatusImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
