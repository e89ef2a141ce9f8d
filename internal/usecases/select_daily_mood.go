package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	moodSelectedMessage = "이미지 선택이 완료되었습니다."
	moodChangedMessage  = "오늘의 기분이 변경되었습니다."
)

// SelectDailyMoodResult is the outcome of a daily mood selection.
type SelectDailyMoodResult struct {
	Selection domain.DailyMoodSelection
	Card      domain.MoodCard
	Analysis  domain.AnalysisResult
	Message   string
	IsUpdate  bool
}

// SelectDailyMood records the mood card a user picked today.
type SelectDailyMood interface {
	Execute(ctx context.Context, userID uuid.UUID, imageID int) (SelectDailyMoodResult, error)
}

// SelectDailyMoodImpl analyzes the card description and stores the selection
// together with its outbox event in one unit of work.
type SelectDailyMoodImpl struct {
	uow          domain.UnitOfWork
	catalog      domain.MoodCardCatalog
	analyzer     AnalyzeEmotion
	timeProvider domain.CurrentTimeProvider
}

// NewSelectDailyMoodImpl creates a new SelectDailyMoodImpl.
func NewSelectDailyMoodImpl(
	uow domain.UnitOfWork,
	c domain.MoodCardCatalog,
	a AnalyzeEmotion,
	tp domain.CurrentTimeProvider,
) SelectDailyMoodImpl {
	return SelectDailyMoodImpl{
		uow:          uow,
		catalog:      c,
		analyzer:     a,
		timeProvider: tp,
	}
}

// Execute runs the selection. Selecting again on the same day replaces the
// earlier choice.
func (s SelectDailyMoodImpl) Execute(ctx context.Context, userID uuid.UUID, imageID int) (SelectDailyMoodResult, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return SelectDailyMoodResult{}, err
	}

	now := s.timeProvider.Now()
	today := domain.DateOnly(now)

	card, found := domain.FindMoodCard(s.catalog.DailyCards(today), imageID)
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("image %d is not offered today", imageID))
		telemetry.RecordErrorAndStatus(span, err)
		return SelectDailyMoodResult{}, err
	}

	analysis, err := s.analyzer.Execute(spanCtx, card.Description)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SelectDailyMoodResult{}, err
	}

	selection := domain.DailyMoodSelection{
		ID:             uuid.New(),
		UserID:         userID,
		SelectedDate:   today,
		ImageID:        card.ID,
		Sentiment:      card.Sentiment,
		Description:    card.Description,
		PrimaryEmotion: analysis.PrimaryEmotion,
		Emotions:       analysis.Emotions,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var existed bool
	err = s.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		stored, found, err := uow.MoodSelection().UpsertSelection(spanCtx, selection)
		if err != nil {
			return err
		}
		selection, existed = stored, found

		return uow.Outbox().RecordMoodCheckEvent(spanCtx, domain.MoodCheckEvent{
			Type:           domain.EventType_MOOD_CHECK_RECORDED,
			SelectionID:    stored.ID,
			UserID:         stored.UserID,
			SelectedDate:   stored.SelectedDate,
			PrimaryEmotion: stored.PrimaryEmotion,
			CreatedAt:      now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return SelectDailyMoodResult{}, err
	}

	message := moodSelectedMessage
	if existed {
		message = moodChangedMessage
	}
	return SelectDailyMoodResult{
		Selection: selection,
		Card:      card,
		Analysis:  analysis,
		Message:   message,
		IsUpdate:  existed,
	}, nil
}

// InitSelectDailyMood initializes the SelectDailyMood use case.
type InitSelectDailyMood struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Catalog      domain.MoodCardCatalog     `resolve:""`
	Analyzer     AnalyzeEmotion             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the SelectDailyMood use case implementation.
func (i InitSelectDailyMood) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SelectDailyMood](NewSelectDailyMoodImpl(i.Uow, i.Catalog, i.Analyzer, i.TimeProvider))
	return ctx, nil
}
