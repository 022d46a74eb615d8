// Package heroprogress defines the interface for per-user hero tracking
// records
package heroprogress

//go:generate mockgen -destination=mock/mock_repository.go -package=heroprogressmock github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress Repository

import (
	"context"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
)

// Repository persists HeroProgress records keyed by user and hero name.
// Writes are last-writer-wins; there is no cross-record transaction.
type Repository interface {
	// Get retrieves one record
	// Returns errors.InvalidArgument for an empty user or hero
	// Returns errors.NotFound if the user is not tracking the hero
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByUser returns a user's records in the order they were added
	// Returns errors.InvalidArgument for an empty user
	// Returns errors.Internal for storage failures
	ListByUser(ctx context.Context, input ListByUserInput) (*ListByUserOutput, error)

	// Create starts tracking a hero
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the user already tracks the hero
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update writes level, relics and both goals. Cached needs are untouched.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the user is not tracking the hero
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// UpdateNeeds writes the cached calculation fields only
	// Returns errors.InvalidArgument for an empty user or hero
	// Returns errors.NotFound if the user is not tracking the hero
	// Returns errors.Internal for storage failures
	UpdateNeeds(ctx context.Context, input UpdateNeedsInput) (*UpdateNeedsOutput, error)

	// Delete stops tracking a hero
	// Returns errors.InvalidArgument for an empty user or hero
	// Returns errors.NotFound if the user is not tracking the hero
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	UserID   string
	HeroName string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Progress *entities.HeroProgress
}

// ListByUserInput defines the input for listing a user's records
type ListByUserInput struct {
	UserID string
}

// ListByUserOutput defines the output for listing a user's records
type ListByUserOutput struct {
	Progress []*entities.HeroProgress
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Progress *entities.HeroProgress
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Progress *entities.HeroProgress
}

// UpdateInput defines the input for updating a record
type UpdateInput struct {
	Progress *entities.HeroProgress
}

// UpdateOutput defines the output for updating a record
type UpdateOutput struct {
	Progress *entities.HeroProgress
}

// UpdateNeedsInput defines the input for caching calculation results
type UpdateNeedsInput struct {
	UserID   string
	HeroName string
	Needs    entities.RelicNeeds
}

// UpdateNeedsOutput defines the output for caching calculation results
type UpdateNeedsOutput struct{}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	UserID   string
	HeroName string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}

const (
	errProgressNil   = "progress cannot be nil"
	errUserIDEmpty   = "user ID cannot be empty"
	errHeroNameEmpty = "hero name cannot be empty"
)

func validateKey(userID, heroName string) error {
	if userID == "" {
		return errors.InvalidArgument(errUserIDEmpty)
	}
	if heroName == "" {
		return errors.InvalidArgument(errHeroNameEmpty)
	}
	return nil
}

func validateProgress(p *entities.HeroProgress) error {
	if p == nil {
		return errors.InvalidArgument(errProgressNil)
	}
	return validateKey(p.UserID, p.HeroName)
}
