package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSnapshot() domain.WeeklyReportSnapshot {
	weekStart := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	report := domain.BuildWeeklyMoodReport(fixtureUserID, weekStart, []domain.DailyMoodSelection{fixtureSelection()}, nil)
	return domain.WeeklyReportSnapshot{
		ID:          uuid.MustParse("9b2d7c1e-4a5f-4e8b-bc0d-1f2e3a4b5c6d"),
		UserID:      fixtureUserID,
		WeekStart:   weekStart,
		Report:      report,
		Narrative:   "이번 주는 기쁨이 가득했어요.",
		Model:       "ai/gpt-oss",
		GeneratedAt: time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestWeeklyReportRepository_StoreReport(t *testing.T) {
	snapshot := fixtureSnapshot()
	reportJSON, err := json.Marshal(snapshot.Report)
	require.NoError(t, err)

	query := "INSERT INTO weekly_mood_reports (id,user_id,week_start,report,narrative,model,generated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) " + upsertWeeklyReportSuffix

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(query).
					WithArgs(snapshot.ID, fixtureUserID, "2026-10-12", reportJSON, snapshot.Narrative, snapshot.Model, snapshot.GeneratedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(query).
					WithArgs(snapshot.ID, fixtureUserID, "2026-10-12", reportJSON, snapshot.Narrative, snapshot.Model, snapshot.GeneratedAt).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewWeeklyReportRepository(db)
			gotErr := repo.StoreReport(context.Background(), snapshot)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWeeklyReportRepository_GetLatestReport(t *testing.T) {
	snapshot := fixtureSnapshot()
	reportJSON, err := json.Marshal(snapshot.Report)
	require.NoError(t, err)

	query := "SELECT id, user_id, week_start, report, narrative, model, generated_at FROM weekly_mood_reports WHERE user_id = $1 ORDER BY week_start DESC, generated_at DESC LIMIT 1"

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		assert func(*testing.T, domain.WeeklyReportSnapshot, bool, error)
	}{
		"found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(fixtureUserID).
					WillReturnRows(sqlmock.NewRows(weeklyReportFields).AddRow(
						snapshot.ID, fixtureUserID, snapshot.WeekStart, reportJSON, snapshot.Narrative, snapshot.Model, snapshot.GeneratedAt,
					))
			},
			assert: func(t *testing.T, got domain.WeeklyReportSnapshot, found bool, err error) {
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, snapshot.ID, got.ID)
				assert.Equal(t, snapshot.Narrative, got.Narrative)
				assert.Equal(t, snapshot.Report.WeekLabel, got.Report.WeekLabel)
				assert.Equal(t, snapshot.Report.EmotionRankings, got.Report.EmotionRankings)
				assert.Len(t, got.Report.DailyCharacters, 7)
			},
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(fixtureUserID).
					WillReturnRows(sqlmock.NewRows(weeklyReportFields))
			},
			assert: func(t *testing.T, _ domain.WeeklyReportSnapshot, found bool, err error) {
				assert.NoError(t, err)
				assert.False(t, found)
			},
		},
		"invalid-report-json": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(fixtureUserID).
					WillReturnRows(sqlmock.NewRows(weeklyReportFields).AddRow(
						snapshot.ID, fixtureUserID, snapshot.WeekStart, []byte(`[`), snapshot.Narrative, snapshot.Model, snapshot.GeneratedAt,
					))
			},
			assert: func(t *testing.T, _ domain.WeeklyReportSnapshot, found bool, err error) {
				assert.Error(t, err)
				assert.False(t, found)
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs(fixtureUserID).
					WillReturnError(errors.New("db error"))
			},
			assert: func(t *testing.T, _ domain.WeeklyReportSnapshot, _ bool, err error) {
				assert.Error(t, err)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewWeeklyReportRepository(db)
			got, found, err := repo.GetLatestReport(context.Background(), fixtureUserID)
			tt.assert(t, got, found, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitWeeklyReportRepository_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := InitWeeklyReportRepository{DB: &sql.DB{}}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.WeeklyReportRepository]()
	assert.NoError(t, err)
}
