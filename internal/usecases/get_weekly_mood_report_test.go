package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureWeekStart = time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

func weekSelections() []domain.DailyMoodSelection {
	at := func(day int, emotion domain.EmotionLabel, sentiment domain.Sentiment) domain.DailyMoodSelection {
		date := fixtureWeekStart.AddDate(0, 0, day)
		return domain.DailyMoodSelection{
			ID:             uuid.New(),
			UserID:         fixtureUserID,
			SelectedDate:   date,
			Sentiment:      sentiment,
			PrimaryEmotion: emotion,
			CreatedAt:      date.Add(8 * time.Hour),
			UpdatedAt:      date.Add(8 * time.Hour),
		}
	}
	return []domain.DailyMoodSelection{
		at(0, "기쁨", domain.Sentiment_Positive),
		at(1, "기쁨", domain.Sentiment_Positive),
		at(2, "슬픔", domain.Sentiment_Negative),
	}
}

func testCharacters(t *testing.T) *domain.MockEmotionCharacterResolver {
	c := domain.NewMockEmotionCharacterResolver(t)
	c.EXPECT().Resolve(domain.EmotionLabel("기쁨")).
		Return(domain.EmotionCharacter{Code: "joy", Label: "기쁨", Character: "PENGUIN_HEART"}, true).Maybe()
	c.EXPECT().Resolve(domain.EmotionLabel("슬픔")).
		Return(domain.EmotionCharacter{Code: "sadness", Label: "슬픔", Character: "RAINDROP"}, true).Maybe()
	return c
}

func TestGetWeeklyMoodReportImpl_Query(t *testing.T) {
	tests := map[string]struct {
		userID    uuid.UUID
		weekStart string
		from      time.Time
		stored    []domain.DailyMoodSelection
		repoErr   error
		wantLabel string
		wantScore int
		wantErr   bool
		skipsRepo bool
	}{
		"current-week": {
			userID:    fixtureUserID,
			from:      fixtureWeekStart,
			stored:    weekSelections(),
			wantLabel: "2026년 10월 2주차",
			wantScore: 67,
		},
		"mid-week-date-normalized-to-monday": {
			userID:    fixtureUserID,
			weekStart: "2026-10-15",
			from:      fixtureWeekStart,
			stored:    weekSelections(),
			wantLabel: "2026년 10월 2주차",
			wantScore: 67,
		},
		"last-week-empty": {
			userID:    fixtureUserID,
			weekStart: "last week",
			from:      time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
			stored:    nil,
			wantLabel: "2026년 10월 1주차",
			wantScore: 50,
		},
		"invalid-week-start": {
			userID:    fixtureUserID,
			weekStart: "not a date",
			wantErr:   true,
			skipsRepo: true,
		},
		"repository-error": {
			userID:  fixtureUserID,
			from:    fixtureWeekStart,
			repoErr: assert.AnError,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMoodSelectionRepository(t)
			tp := fixedClock(t, fixtureNow)
			if !tt.skipsRepo {
				repo.EXPECT().ListSelections(mock.Anything, fixtureUserID, tt.from, tt.from.AddDate(0, 0, 7)).
					Return(tt.stored, tt.repoErr)
			}

			got, err := NewGetWeeklyMoodReportImpl(repo, testCharacters(t), tp).
				Query(context.Background(), tt.userID, tt.weekStart)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, got.WeekLabel)
			assert.Equal(t, tt.from, got.WeekStart)
			assert.Equal(t, tt.wantScore, got.OverallScorePercent)
			assert.Len(t, got.DailyCharacters, 7)
		})
	}
}

func TestGetWeeklyMoodReportImpl_Query_NilUser(t *testing.T) {
	repo := domain.NewMockMoodSelectionRepository(t)
	tp := domain.NewMockCurrentTimeProvider(t)

	_, err := NewGetWeeklyMoodReportImpl(repo, nil, tp).Query(context.Background(), uuid.Nil, "")
	var target *domain.ValidationErr
	assert.ErrorAs(t, err, &target)
}

func TestInitGetWeeklyMoodReport_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitGetWeeklyMoodReport{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[GetWeeklyMoodReport]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
