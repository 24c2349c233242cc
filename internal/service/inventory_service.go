package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// InventoryService provides word and group management operations.
type InventoryService interface {
	// CreateWord adds a new word to the inventory.
	CreateWord(
		ctx context.Context,
		nativeText, transliteration, translation string,
		attrs *domain.WordAttributes,
	) (*domain.Word, error)

	// GetWord retrieves a word together with its derived review counters.
	GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, domain.WordStats, error)

	// ListWords returns one page of the inventory.
	ListWords(ctx context.Context, req store.PageRequest) (store.Page[store.WordWithStats], error)

	// UpdateWordAttributes replaces a word's attribute tags and returns the
	// updated word. The text fields are immutable.
	UpdateWordAttributes(ctx context.Context, id uuid.UUID, attrs *domain.WordAttributes) (*domain.Word, error)

	// CreateGroup adds a new, empty group.
	CreateGroup(ctx context.Context, name string) (*domain.Group, error)

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, id uuid.UUID) (*domain.Group, error)

	// ListGroups returns one page of all groups.
	ListGroups(ctx context.Context, req store.PageRequest) (store.Page[domain.Group], error)

	// ListGroupWords returns one page of a group's words.
	ListGroupWords(
		ctx context.Context,
		groupID uuid.UUID,
		req store.PageRequest,
	) (store.Page[store.WordWithStats], error)

	// AddWordsToGroup attaches words to a group inside a transaction and
	// returns the group with its updated word count. Re-adding a member is a
	// no-op.
	AddWordsToGroup(ctx context.Context, groupID uuid.UUID, wordIDs []uuid.UUID) (*domain.Group, error)
}

// inventoryServiceImpl implements the InventoryService interface
type inventoryServiceImpl struct {
	db         *sql.DB
	wordStore  store.WordStore
	groupStore store.GroupStore
	logger     *slog.Logger
}

// NewInventoryService creates a new InventoryService.
// It returns an error if any of the required dependencies are nil. The db
// handle is needed because membership changes run transactionally.
func NewInventoryService(
	db *sql.DB,
	wordStore store.WordStore,
	groupStore store.GroupStore,
	logger *slog.Logger,
) (InventoryService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if wordStore == nil {
		return nil, domain.NewValidationError("wordStore", "cannot be nil", domain.ErrValidation)
	}
	if groupStore == nil {
		return nil, domain.NewValidationError("groupStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &inventoryServiceImpl{
		db:         db,
		wordStore:  wordStore,
		groupStore: groupStore,
		logger:     logger.With(slog.String("component", "inventory_service")),
	}, nil
}

// CreateWord implements InventoryService.CreateWord
func (s *inventoryServiceImpl) CreateWord(
	ctx context.Context,
	nativeText, transliteration, translation string,
	attrs *domain.WordAttributes,
) (*domain.Word, error) {
	word, err := domain.NewWord(nativeText, transliteration, translation, attrs)
	if err != nil {
		return nil, err
	}

	if err := s.wordStore.Create(ctx, word); err != nil {
		return nil, err
	}

	return word, nil
}

// GetWord implements InventoryService.GetWord
func (s *inventoryServiceImpl) GetWord(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Word, domain.WordStats, error) {
	word, err := s.wordStore.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WordStats{}, err
	}

	stats, err := s.wordStore.GetStats(ctx, id)
	if err != nil {
		return nil, domain.WordStats{}, err
	}

	return word, stats, nil
}

// ListWords implements InventoryService.ListWords
func (s *inventoryServiceImpl) ListWords(
	ctx context.Context,
	req store.PageRequest,
) (store.Page[store.WordWithStats], error) {
	return s.wordStore.List(ctx, req)
}

// UpdateWordAttributes implements InventoryService.UpdateWordAttributes
func (s *inventoryServiceImpl) UpdateWordAttributes(
	ctx context.Context,
	id uuid.UUID,
	attrs *domain.WordAttributes,
) (*domain.Word, error) {
	if err := s.wordStore.UpdateAttributes(ctx, id, attrs); err != nil {
		return nil, err
	}

	return s.wordStore.GetByID(ctx, id)
}

// CreateGroup implements InventoryService.CreateGroup
func (s *inventoryServiceImpl) CreateGroup(ctx context.Context, name string) (*domain.Group, error) {
	group, err := domain.NewGroup(name)
	if err != nil {
		return nil, err
	}

	if err := s.groupStore.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

// GetGroup implements InventoryService.GetGroup
func (s *inventoryServiceImpl) GetGroup(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	return s.groupStore.GetByID(ctx, id)
}

// ListGroups implements InventoryService.ListGroups
func (s *inventoryServiceImpl) ListGroups(
	ctx context.Context,
	req store.PageRequest,
) (store.Page[domain.Group], error) {
	return s.groupStore.List(ctx, req)
}

// ListGroupWords implements InventoryService.ListGroupWords
func (s *inventoryServiceImpl) ListGroupWords(
	ctx context.Context,
	groupID uuid.UUID,
	req store.PageRequest,
) (store.Page[store.WordWithStats], error) {
	return s.wordStore.ListByGroup(ctx, groupID, req)
}

// AddWordsToGroup implements InventoryService.AddWordsToGroup
// The membership insert and the word_count update commit or roll back
// together.
func (s *inventoryServiceImpl) AddWordsToGroup(
	ctx context.Context,
	groupID uuid.UUID,
	wordIDs []uuid.UUID,
) (*domain.Group, error) {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.groupStore.WithTx(tx).AddWords(ctx, groupID, wordIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("words added to group",
		slog.String("group_id", groupID.String()),
		slog.Int("count", len(wordIDs)))

	return s.groupStore.GetByID(ctx, groupID)
}
