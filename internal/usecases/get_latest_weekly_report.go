package usecases

import (
	"context"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetLatestWeeklyReport returns the most recent stored weekly report of a user.
type GetLatestWeeklyReport interface {
	Query(ctx context.Context, userID uuid.UUID) (domain.WeeklyReportSnapshot, error)
}

type GetLatestWeeklyReportImpl struct {
	repo domain.WeeklyReportRepository
}

func NewGetLatestWeeklyReportImpl(r domain.WeeklyReportRepository) GetLatestWeeklyReportImpl {
	return GetLatestWeeklyReportImpl{repo: r}
}

func (g GetLatestWeeklyReportImpl) Query(ctx context.Context, userID uuid.UUID) (domain.WeeklyReportSnapshot, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WeeklyReportSnapshot{}, err
	}

	snapshot, found, err := g.repo.GetLatestReport(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyReportSnapshot{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("no weekly report generated yet")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WeeklyReportSnapshot{}, err
	}
	return snapshot, nil
}

type InitGetLatestWeeklyReport struct {
	Repo domain.WeeklyReportRepository `resolve:""`
}

func (i InitGetLatestWeeklyReport) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetLatestWeeklyReport](NewGetLatestWeeklyReportImpl(i.Repo))
	return ctx, nil
}
