package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordNativeTextEmpty is returned when a word's native text is empty.
	ErrWordNativeTextEmpty = errors.New("word native text cannot be empty")

	// ErrWordTranslationEmpty is returned when a word's translation is empty.
	ErrWordTranslationEmpty = errors.New("word translation cannot be empty")
)

// WordAttributes holds the optional structured tags attached to a word.
// All fields are optional; the attribute set is stored as JSONB so new tags
// can be added without a schema change.
type WordAttributes struct {
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Category     string `json:"category,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

// Word represents a single vocabulary entry in the inventory.
// Identity (the three text fields) is immutable once created; only the
// attributes may be edited afterwards.
type Word struct {
	ID              uuid.UUID       `json:"id"`
	NativeText      string          `json:"native_text"`
	Transliteration string          `json:"transliteration"`
	Translation     string          `json:"translation"`
	Attributes      *WordAttributes `json:"attributes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// WordStats holds the per-word review counters derived from the review
// ledger. These are always computed, never cached.
type WordStats struct {
	CorrectCount int `json:"correct_count"`
	WrongCount   int `json:"wrong_count"`
}

// NewWord creates a new Word with the given text fields and optional
// attributes. It generates a new UUID for the word ID and sets the
// creation/update timestamps. Returns an error if validation fails.
//
// Transliteration is optional: not every source language needs one.
func NewWord(nativeText, transliteration, translation string, attrs *WordAttributes) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:              uuid.New(),
		NativeText:      nativeText,
		Transliteration: transliteration,
		Translation:     translation,
		Attributes:      attrs,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any required field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if w.NativeText == "" {
		return ErrWordNativeTextEmpty
	}

	if w.Translation == "" {
		return ErrWordTranslationEmpty
	}

	return nil
}

// UpdateAttributes replaces the word's attribute set and bumps the
// UpdatedAt timestamp. The text fields are immutable and untouched.
func (w *Word) UpdateAttributes(attrs *WordAttributes) {
	w.Attributes = attrs
	w.UpdatedAt = time.Now().UTC()
}
