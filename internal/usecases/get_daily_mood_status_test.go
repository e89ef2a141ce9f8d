package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetDailyMoodStatusImpl_Query(t *testing.T) {
	tests := map[string]struct {
		userID          uuid.UUID
		setExpectations func(r *domain.MockMoodSelectionRepository, tp *domain.MockCurrentTimeProvider)
		want            domain.DailyMoodStatus
		wantErr         bool
	}{
		"completed": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockMoodSelectionRepository, tp *domain.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixtureNow)
				r.EXPECT().GetSelection(mock.Anything, fixtureUserID, fixtureToday).
					Return(domain.DailyMoodSelection{UserID: fixtureUserID, SelectedDate: fixtureToday, ImageID: 2}, true, nil)
			},
			want: domain.DailyMoodStatus{
				UserID:          fixtureUserID,
				Completed:       true,
				LastCheckDate:   common.Ptr(fixtureToday),
				SelectedImageID: common.Ptr(2),
			},
		},
		"not-completed": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockMoodSelectionRepository, tp *domain.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixtureNow)
				r.EXPECT().GetSelection(mock.Anything, fixtureUserID, fixtureToday).
					Return(domain.DailyMoodSelection{}, false, nil)
			},
			want: domain.DailyMoodStatus{UserID: fixtureUserID},
		},
		"repository-error": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockMoodSelectionRepository, tp *domain.MockCurrentTimeProvider) {
				tp.EXPECT().Now().Return(fixtureNow)
				r.EXPECT().GetSelection(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.DailyMoodSelection{}, false, assert.AnError)
			},
			wantErr: true,
		},
		"nil-user": {
			userID:          uuid.Nil,
			setExpectations: func(r *domain.MockMoodSelectionRepository, tp *domain.MockCurrentTimeProvider) {},
			wantErr:         true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockMoodSelectionRepository(t)
			tp := domain.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, tp)

			got, err := NewGetDailyMoodStatusImpl(repo, tp).Query(context.Background(), tt.userID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitGetDailyMoodStatus_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitGetDailyMoodStatus{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[GetDailyMoodStatus]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
