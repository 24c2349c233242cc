package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Group-specific validation errors
var (
	// ErrGroupIDEmpty is returned when a group ID is empty or nil.
	ErrGroupIDEmpty = errors.New("group ID cannot be empty")

	// ErrGroupNameEmpty is returned when a group's name is empty.
	ErrGroupNameEmpty = errors.New("group name cannot be empty")
)

// Group represents a named collection of words. Group names are unique.
//
// WordCount is a denormalized copy of the membership count. It must always
// equal the true number of membership rows referencing the group; the store
// maintains it inside the same transaction as any membership change.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGroup creates a new, empty Group with the given name.
// Returns an error if validation fails.
func NewGroup(name string) (*Group, error) {
	group := &Group{
		ID:        uuid.New(),
		Name:      name,
		WordCount: 0,
		CreatedAt: time.Now().UTC(),
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
func (g *Group) Validate() error {
	if g.ID == uuid.Nil {
		return ErrGroupIDEmpty
	}

	if g.Name == "" {
		return ErrGroupNameEmpty
	}

	return nil
}
