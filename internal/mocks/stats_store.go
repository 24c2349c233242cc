package mocks

import (
	"context"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// MockStatsStore implements store.StatsStore for testing.
// Tests populate the value fields directly; function fields override when a
// test needs errors or per-call behavior.
type MockStatsStore struct {
	ReviewCountsFn  func(ctx context.Context) (int, int, error)
	TotalSessionsFn func(ctx context.Context) (int, error)
	ActiveGroupsFn  func(ctx context.Context) (int, error)
	ReviewDatesFn   func(ctx context.Context, timezone string) ([]time.Time, error)
	WordsStudiedFn  func(ctx context.Context) (int, error)
	TotalWordsFn    func(ctx context.Context) (int, error)
	LastSessionFn   func(ctx context.Context) (*domain.StudySessionView, error)

	TotalReviews      int
	CorrectReviews    int
	SessionCount      int
	ActiveGroupCount  int
	Dates             []time.Time
	WordsStudiedCount int
	TotalWordCount    int
	LastSessionView   *domain.StudySessionView
}

// NewMockStatsStore creates a new mock store with zeroed counters
func NewMockStatsStore() *MockStatsStore {
	return &MockStatsStore{}
}

// Ensure MockStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*MockStatsStore)(nil)

// ReviewCounts implements the StatsStore interface
func (m *MockStatsStore) ReviewCounts(ctx context.Context) (int, int, error) {
	if m.ReviewCountsFn != nil {
		return m.ReviewCountsFn(ctx)
	}
	return m.TotalReviews, m.CorrectReviews, nil
}

// TotalSessions implements the StatsStore interface
func (m *MockStatsStore) TotalSessions(ctx context.Context) (int, error) {
	if m.TotalSessionsFn != nil {
		return m.TotalSessionsFn(ctx)
	}
	return m.SessionCount, nil
}

// ActiveGroups implements the StatsStore interface
func (m *MockStatsStore) ActiveGroups(ctx context.Context) (int, error) {
	if m.ActiveGroupsFn != nil {
		return m.ActiveGroupsFn(ctx)
	}
	return m.ActiveGroupCount, nil
}

// ReviewDates implements the StatsStore interface
func (m *MockStatsStore) ReviewDates(ctx context.Context, timezone string) ([]time.Time, error) {
	if m.ReviewDatesFn != nil {
		return m.ReviewDatesFn(ctx, timezone)
	}
	return m.Dates, nil
}

// WordsStudied implements the StatsStore interface
func (m *MockStatsStore) WordsStudied(ctx context.Context) (int, error) {
	if m.WordsStudiedFn != nil {
		return m.WordsStudiedFn(ctx)
	}
	return m.WordsStudiedCount, nil
}

// TotalWords implements the StatsStore interface
func (m *MockStatsStore) TotalWords(ctx context.Context) (int, error) {
	if m.TotalWordsFn != nil {
		return m.TotalWordsFn(ctx)
	}
	return m.TotalWordCount, nil
}

// LastSession implements the StatsStore interface
func (m *MockStatsStore) LastSession(ctx context.Context) (*domain.StudySessionView, error) {
	if m.LastSessionFn != nil {
		return m.LastSessionFn(ctx)
	}
	return m.LastSessionView, nil
}
