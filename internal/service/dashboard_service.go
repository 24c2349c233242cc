package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// DashboardService computes the aggregate statistics shown on the dashboard.
// Everything is derived from the ledger on each call; nothing is cached or
// stored.
type DashboardService interface {
	// QuickStats returns the dashboard summary: success rate, session and
	// active-group totals, and the current study streak.
	QuickStats(ctx context.Context) (*domain.QuickStats, error)

	// StudyProgress returns the words-studied versus words-available counts.
	StudyProgress(ctx context.Context) (*domain.StudyProgress, error)

	// LastSession returns the most recently started session view, or
	// (nil, nil) when no sessions exist yet.
	LastSession(ctx context.Context) (*domain.StudySessionView, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	statsStore store.StatsStore
	location   *time.Location
	logger     *slog.Logger

	// now is stubbed in tests
	now func() time.Time
}

// NewDashboardService creates a new DashboardService. The timezone is the
// IANA zone used to bucket review timestamps into calendar days for the
// streak; it comes from configuration, not from the client.
// It returns an error if the stats store is nil or the timezone is unknown.
func NewDashboardService(
	statsStore store.StatsStore,
	timezone string,
	logger *slog.Logger,
) (DashboardService, error) {
	if statsStore == nil {
		return nil, domain.NewValidationError("statsStore", "cannot be nil", domain.ErrValidation)
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid stats timezone %q: %w", timezone, err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &dashboardServiceImpl{
		statsStore: statsStore,
		location:   location,
		logger:     logger.With(slog.String("component", "dashboard_service")),
		now:        time.Now,
	}, nil
}

// QuickStats implements DashboardService.QuickStats
func (s *dashboardServiceImpl) QuickStats(ctx context.Context) (*domain.QuickStats, error) {
	total, correct, err := s.statsStore.ReviewCounts(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := s.statsStore.TotalSessions(ctx)
	if err != nil {
		return nil, err
	}

	activeGroups, err := s.statsStore.ActiveGroups(ctx)
	if err != nil {
		return nil, err
	}

	dates, err := s.statsStore.ReviewDates(ctx, s.location.String())
	if err != nil {
		return nil, err
	}

	var successRate float64
	if total > 0 {
		successRate = 100 * float64(correct) / float64(total)
	}

	return &domain.QuickStats{
		SuccessRate:        successRate,
		TotalStudySessions: sessions,
		TotalActiveGroups:  activeGroups,
		StudyStreakDays:    streakDays(dates, localDate(s.now(), s.location)),
	}, nil
}

// StudyProgress implements DashboardService.StudyProgress
func (s *dashboardServiceImpl) StudyProgress(ctx context.Context) (*domain.StudyProgress, error) {
	studied, err := s.statsStore.WordsStudied(ctx)
	if err != nil {
		return nil, err
	}

	available, err := s.statsStore.TotalWords(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.StudyProgress{
		TotalWordsStudied:   studied,
		TotalAvailableWords: available,
	}, nil
}

// LastSession implements DashboardService.LastSession
func (s *dashboardServiceImpl) LastSession(ctx context.Context) (*domain.StudySessionView, error) {
	return s.statsStore.LastSession(ctx)
}

// localDate reduces an instant to its calendar date in the given zone,
// represented as midnight UTC to match the store's date encoding.
func localDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// streakDays counts the run of consecutive calendar days with at least one
// review, ending today or yesterday. dates must be distinct calendar dates
// sorted most recent first, each encoded as midnight UTC; today uses the
// same encoding.
//
// A streak that ended the day before yesterday (or earlier) is broken and
// counts as zero. A streak whose latest day is yesterday is still alive:
// today's studying simply has not happened yet.
func streakDays(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	day := 24 * time.Hour

	latest := dates[0]
	if !latest.Equal(today) && !latest.Equal(today.Add(-day)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].Add(-day)) {
			break
		}
		streak++
	}

	return streak
}
