package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStreakDays(t *testing.T) {
	t.Parallel()

	today := date(2025, 6, 10)

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{
			name:  "no reviews",
			dates: nil,
			want:  0,
		},
		{
			name:  "single review today",
			dates: []time.Time{today},
			want:  1,
		},
		{
			name:  "single review yesterday keeps streak alive",
			dates: []time.Time{date(2025, 6, 9)},
			want:  1,
		},
		{
			name:  "today, yesterday, and the day before",
			dates: []time.Time{today, date(2025, 6, 9), date(2025, 6, 8)},
			want:  3,
		},
		{
			name:  "streak ending yesterday",
			dates: []time.Time{date(2025, 6, 9), date(2025, 6, 8), date(2025, 6, 7)},
			want:  3,
		},
		{
			name:  "latest review two days ago breaks the streak",
			dates: []time.Time{date(2025, 6, 8), date(2025, 6, 7)},
			want:  0,
		},
		{
			name:  "gap stops the count",
			dates: []time.Time{today, date(2025, 6, 9), date(2025, 6, 6), date(2025, 6, 5)},
			want:  2,
		},
		{
			name:  "old reviews only",
			dates: []time.Time{date(2025, 1, 2), date(2025, 1, 1)},
			want:  0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, streakDays(tc.dates, today))
		})
	}
}

func TestLocalDate(t *testing.T) {
	t.Parallel()

	tehran, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	// 22:30 UTC is already the next day in Tehran (UTC+3:30)
	instant := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, 6, 11), localDate(instant, tehran))

	assert.Equal(t, date(2025, 6, 10), localDate(instant, time.UTC))
}

func TestQuickStats(t *testing.T) {
	t.Parallel()

	statsStore := mocks.NewMockStatsStore()
	statsStore.TotalReviews = 8
	statsStore.CorrectReviews = 6
	statsStore.SessionCount = 4
	statsStore.ActiveGroupCount = 2

	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	statsStore.Dates = []time.Time{date(2025, 6, 10), date(2025, 6, 9)}

	svc, err := NewDashboardService(statsStore, "UTC", nil)
	require.NoError(t, err)
	svc.(*dashboardServiceImpl).now = func() time.Time { return now }

	stats, err := svc.QuickStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 75.0, stats.SuccessRate)
	assert.Equal(t, 4, stats.TotalStudySessions)
	assert.Equal(t, 2, stats.TotalActiveGroups)
	assert.Equal(t, 2, stats.StudyStreakDays)
}

func TestQuickStats_EmptyLedger(t *testing.T) {
	t.Parallel()

	svc, err := NewDashboardService(mocks.NewMockStatsStore(), "UTC", nil)
	require.NoError(t, err)

	stats, err := svc.QuickStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0.0, stats.SuccessRate)
	assert.Equal(t, 0, stats.TotalStudySessions)
	assert.Equal(t, 0, stats.TotalActiveGroups)
	assert.Equal(t, 0, stats.StudyStreakDays)
}

func TestStudyProgress(t *testing.T) {
	t.Parallel()

	statsStore := mocks.NewMockStatsStore()
	statsStore.WordsStudiedCount = 3
	statsStore.TotalWordCount = 12

	svc, err := NewDashboardService(statsStore, "UTC", nil)
	require.NoError(t, err)

	progress, err := svc.StudyProgress(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, progress.TotalWordsStudied)
	assert.Equal(t, 12, progress.TotalAvailableWords)
	assert.Equal(t, 25.0, progress.MasteryPercentage())
}

func TestLastSession_NoneRecorded(t *testing.T) {
	t.Parallel()

	svc, err := NewDashboardService(mocks.NewMockStatsStore(), "UTC", nil)
	require.NoError(t, err)

	view, err := svc.LastSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestNewDashboardService_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewDashboardService(nil, "UTC", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewDashboardService(mocks.NewMockStatsStore(), "Not/AZone", nil)
	assert.Error(t, err)
}
