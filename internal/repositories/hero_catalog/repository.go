// Package herocatalog defines the read-only hero catalog lookup
package herocatalog

//go:generate mockgen -destination=mock/mock_repository.go -package=herocatalogmock github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog Repository

import (
	"context"

	"github.com/KirkDiggler/hero-planner/internal/entities"
)

// Repository looks up heroes in the catalog. Names are matched exactly.
type Repository interface {
	// List returns every hero in catalog order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get returns a single hero
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if the hero is not in the catalog
	// Returns errors.Internal for storage failures or a malformed max level
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetDetail returns the hero's reference stats in column order
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if the hero is not in the catalog
	// Returns errors.Internal for storage failures
	GetDetail(ctx context.Context, input GetDetailInput) (*GetDetailOutput, error)
}

// ListInput defines the input for listing the catalog
type ListInput struct{}

// ListOutput defines the output for listing the catalog
type ListOutput struct {
	Heroes []entities.HeroSpec
}

// GetInput defines the input for getting a hero
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a hero
type GetOutput struct {
	Hero *entities.HeroSpec
}

// GetDetailInput defines the input for getting a hero's stats
type GetDetailInput struct {
	Name string
}

// GetDetailOutput defines the output for getting a hero's stats
type GetDetailOutput struct {
	Detail *entities.HeroDetail
}

const (
	errNameEmpty = "hero name cannot be empty"
)
