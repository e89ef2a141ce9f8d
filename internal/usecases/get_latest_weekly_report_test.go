package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetLatestWeeklyReportImpl_Query(t *testing.T) {
	snapshot := domain.WeeklyReportSnapshot{
		ID:          uuid.MustParse("9b2e4f6a-1c3d-4e5f-8a7b-6c5d4e3f2a1b"),
		UserID:      fixtureUserID,
		WeekStart:   fixtureWeekStart,
		Narrative:   "이번 주는 기쁨이 가장 많았어요.",
		GeneratedAt: fixtureNow,
	}

	tests := map[string]struct {
		userID          uuid.UUID
		setExpectations func(r *domain.MockWeeklyReportRepository)
		want            domain.WeeklyReportSnapshot
		assertErr       func(t *testing.T, err error)
	}{
		"found": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockWeeklyReportRepository) {
				r.EXPECT().GetLatestReport(mock.Anything, fixtureUserID).Return(snapshot, true, nil)
			},
			want: snapshot,
		},
		"not-found": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockWeeklyReportRepository) {
				r.EXPECT().GetLatestReport(mock.Anything, fixtureUserID).Return(domain.WeeklyReportSnapshot{}, false, nil)
			},
			assertErr: func(t *testing.T, err error) {
				var target *domain.NotFoundErr
				assert.ErrorAs(t, err, &target)
			},
		},
		"repository-error": {
			userID: fixtureUserID,
			setExpectations: func(r *domain.MockWeeklyReportRepository) {
				r.EXPECT().GetLatestReport(mock.Anything, fixtureUserID).Return(domain.WeeklyReportSnapshot{}, false, assert.AnError)
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
		"nil-user": {
			userID:          uuid.Nil,
			setExpectations: func(r *domain.MockWeeklyReportRepository) {},
			assertErr: func(t *testing.T, err error) {
				var target *domain.ValidationErr
				assert.ErrorAs(t, err, &target)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockWeeklyReportRepository(t)
			tt.setExpectations(repo)

			got, err := NewGetLatestWeeklyReportImpl(repo).Query(context.Background(), tt.userID)
			if tt.assertErr != nil {
				tt.assertErr(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitGetLatestWeeklyReport_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitGetLatestWeeklyReport{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[GetLatestWeeklyReport]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
