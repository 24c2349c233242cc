package store

import (
	"context"
	"time"

	"github.com/wordtrail/wordtrail-api/internal/domain"
)

// StatsStore defines the read-side queries the statistics engine is built
// on. All methods are pure reads over the ledger and recorder tables; no
// caching layer sits in front of them.
type StatsStore interface {
	// ReviewCounts returns the total number of reviews ever recorded and
	// how many of them were correct.
	ReviewCounts(ctx context.Context) (total, correct int, err error)

	// TotalSessions counts all study sessions.
	TotalSessions(ctx context.Context) (int, error)

	// ActiveGroups counts distinct groups referenced by at least one
	// session. A group whose words were since removed still counts.
	ActiveGroups(ctx context.Context) (int, error)

	// ReviewDates returns the distinct calendar dates (in the given IANA
	// timezone) that have at least one review, most recent first. The
	// returned times are midnight in UTC of each bucketed date.
	ReviewDates(ctx context.Context, timezone string) ([]time.Time, error)

	// WordsStudied counts distinct words with at least one review.
	WordsStudied(ctx context.Context) (int, error)

	// TotalWords counts all words in the inventory.
	TotalWords(ctx context.Context) (int, error)

	// LastSession returns the most recently started session view, or
	// (nil, nil) when no sessions exist yet. An empty ledger is not an
	// error.
	LastSession(ctx context.Context) (*domain.StudySessionView, error)
}
