// Package seed loads the embedded starter data set (word groups, their
// words, and the study activity catalog) through the store interfaces. It
// runs on first boot against an empty database and again as the final step
// of a full reset.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

//go:embed seed.json
var seedJSON []byte

// wordData mirrors one word entry in seed.json.
type wordData struct {
	NativeText      string                 `json:"native_text"`
	Transliteration string                 `json:"transliteration"`
	Translation     string                 `json:"translation"`
	Attributes      *domain.WordAttributes `json:"attributes"`
}

// groupData mirrors one group entry in seed.json, words included.
type groupData struct {
	Name  string     `json:"name"`
	Words []wordData `json:"words"`
}

// activityData mirrors one study activity entry in seed.json.
type activityData struct {
	Name         string `json:"name"`
	LaunchURL    string `json:"launch_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}

type seedData struct {
	Groups          []groupData    `json:"groups"`
	StudyActivities []activityData `json:"study_activities"`
}

// Stores bundles the store interfaces seeding writes through. For a
// transactional seed, pass stores already bound to the transaction with
// WithTx.
type Stores struct {
	Words      store.WordStore
	Groups     store.GroupStore
	Activities store.ActivityStore
}

// Apply replays the embedded seed data through the given stores: every
// group is created, its words are created and attached, and the activity
// catalog is filled. Apply assumes an empty database; rerunning it against
// seeded data fails on the group name constraint.
func Apply(ctx context.Context, stores Stores) error {
	log := logger.FromContext(ctx)

	var data seedData
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return fmt.Errorf("failed to parse embedded seed data: %w", err)
	}

	for _, g := range data.Groups {
		group, err := domain.NewGroup(g.Name)
		if err != nil {
			return fmt.Errorf("invalid seed group %q: %w", g.Name, err)
		}
		if err := stores.Groups.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to create seed group %q: %w", g.Name, err)
		}

		wordIDs := make([]uuid.UUID, 0, len(g.Words))
		for _, w := range g.Words {
			word, err := domain.NewWord(w.NativeText, w.Transliteration, w.Translation, w.Attributes)
			if err != nil {
				return fmt.Errorf("invalid seed word %q: %w", w.Translation, err)
			}
			if err := stores.Words.Create(ctx, word); err != nil {
				return fmt.Errorf("failed to create seed word %q: %w", w.Translation, err)
			}
			wordIDs = append(wordIDs, word.ID)
		}

		if err := stores.Groups.AddWords(ctx, group.ID, wordIDs); err != nil {
			return fmt.Errorf("failed to attach seed words to group %q: %w", g.Name, err)
		}

		log.Debug("seed group created",
			slog.String("name", g.Name),
			slog.Int("words", len(g.Words)))
	}

	for _, a := range data.StudyActivities {
		activity, err := domain.NewStudyActivity(a.Name, a.LaunchURL, a.ThumbnailURL, a.Description)
		if err != nil {
			return fmt.Errorf("invalid seed activity %q: %w", a.Name, err)
		}
		if err := stores.Activities.Create(ctx, activity); err != nil {
			return fmt.Errorf("failed to create seed activity %q: %w", a.Name, err)
		}
	}

	log.Info("seed data applied",
		slog.Int("groups", len(data.Groups)),
		slog.Int("activities", len(data.StudyActivities)))
	return nil
}
