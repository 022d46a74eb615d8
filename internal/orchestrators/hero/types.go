package hero

import (
	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
)

// NumberedHero is a hero with its position in the hero list
type NumberedHero struct {
	Number int
	Name   string
}

// RarityGroup is one rarity section of the hero list
type RarityGroup struct {
	Rarity entities.Rarity
	Heroes []NumberedHero
}

// ListHeroesInput defines the request for listing the catalog
type ListHeroesInput struct{}

// ListHeroesOutput defines the response for listing the catalog
type ListHeroesOutput struct {
	// Groups are in rarity order; empty groups are omitted
	Groups []RarityGroup
	Total  int
}

// GetHeroInfoInput defines the request for a hero's reference stats
type GetHeroInfoInput struct {
	// Query is a hero list number or an exact hero name
	Query string
}

// GetHeroInfoOutput defines the response for a hero's reference stats
type GetHeroInfoOutput struct {
	Detail *entities.HeroDetail
}

// AutocompleteHeroesInput defines the request for hero name suggestions
type AutocompleteHeroesInput struct {
	Partial string
}

// AutocompleteHeroesOutput defines the response for hero name suggestions
type AutocompleteHeroesOutput struct {
	Names []string
}

// AddHeroInput defines the request for tracking a hero
type AddHeroInput struct {
	UserID   string
	HeroName string
}

// AddHeroOutput defines the response for tracking a hero
type AddHeroOutput struct {
	Progress *entities.HeroProgress
	// AlreadyTracked is set when the user was already tracking the hero;
	// nothing was written
	AlreadyTracked bool
}

// RemoveHeroInput defines the request for untracking a hero
type RemoveHeroInput struct {
	UserID   string
	HeroName string
}

// RemoveHeroOutput defines the response for untracking a hero
type RemoveHeroOutput struct{}

// ListTrackedHeroesInput defines the request for a page of tracked heroes
type ListTrackedHeroesInput struct {
	UserID string
	// Page is 1-based and clamped into range
	Page int
	// PageSize defaults to DefaultPageSize and is capped at MaxPageSize
	PageSize int
}

// ListTrackedHeroesOutput defines the response for a page of tracked heroes
type ListTrackedHeroesOutput struct {
	Progress   []*entities.HeroProgress
	Page       int
	TotalPages int
	Total      int
}

// ManageHeroInput defines the request for updating a tracked hero
type ManageHeroInput struct {
	UserID   string
	HeroName string
	Update   engine.Update
}

// ManageHeroOutput defines the response for updating a tracked hero
type ManageHeroOutput struct {
	Progress *entities.HeroProgress
	Changed  []engine.Field
	Summary  string
}

// CalculateRelicsInput defines the request for a relic calculation
type CalculateRelicsInput struct {
	UserID   string
	HeroName string
}

// CalculateRelicsOutput defines the response for a relic calculation
type CalculateRelicsOutput struct {
	Hero     *entities.HeroSpec
	Progress *entities.HeroProgress
	Needs    entities.RelicNeeds
}

// StatisticsLinkInput defines the request for the statistics sheet link
type StatisticsLinkInput struct{}

// StatisticsLinkOutput defines the response for the statistics sheet link
type StatisticsLinkOutput struct {
	SheetURL string
	GuideURL string
}
