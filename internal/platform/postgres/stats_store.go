package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface
// using a PostgreSQL database as the storage backend. Every method is a
// single aggregate query; the statistics engine does the arithmetic.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the
// StatsStore interface. If logger is nil, a default logger will be used.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// ReviewCounts implements store.StatsStore.ReviewCounts
func (s *PostgresStatsStore) ReviewCounts(ctx context.Context) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE correct)
		FROM word_review_items
	`
	var total, correct int
	if err := s.db.QueryRowContext(ctx, query).Scan(&total, &correct); err != nil {
		return 0, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return total, correct, nil
}

// TotalSessions implements store.StatsStore.TotalSessions
func (s *PostgresStatsStore) TotalSessions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count study sessions: %w", err)
	}
	return count, nil
}

// ActiveGroups implements store.StatsStore.ActiveGroups
func (s *PostgresStatsStore) ActiveGroups(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(DISTINCT group_id) FROM study_sessions`,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active groups: %w", err)
	}
	return count, nil
}

// ReviewDates implements store.StatsStore.ReviewDates
// Timestamps are stored in UTC, so the double AT TIME ZONE converts the
// stored instant into wall-clock time in the requested zone before the
// cast truncates it to a date. Scanning a bare DATE yields midnight UTC.
func (s *PostgresStatsStore) ReviewDates(ctx context.Context, timezone string) ([]time.Time, error) {
	query := `
		SELECT DISTINCT (created_at AT TIME ZONE 'UTC' AT TIME ZONE $1)::date AS review_date
		FROM word_review_items
		ORDER BY review_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to query review dates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	dates := []time.Time{}
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan review date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning review dates: %w", err)
	}

	return dates, nil
}

// WordsStudied implements store.StatsStore.WordsStudied
func (s *PostgresStatsStore) WordsStudied(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(
		ctx, `SELECT COUNT(DISTINCT word_id) FROM word_review_items`,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count studied words: %w", err)
	}
	return count, nil
}

// TotalWords implements store.StatsStore.TotalWords
func (s *PostgresStatsStore) TotalWords(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// LastSession implements store.StatsStore.LastSession
// Returns (nil, nil) when no sessions have been recorded yet.
func (s *PostgresStatsStore) LastSession(ctx context.Context) (*domain.StudySessionView, error) {
	query := `SELECT ` + sessionViewColumns + sessionViewJoins + `
		GROUP BY s.id, a.name, g.name
		ORDER BY s.created_at DESC, s.id
		LIMIT 1
	`

	view, err := scanSessionView(s.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last study session: %w", err)
	}

	return view, nil
}
