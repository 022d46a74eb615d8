// Package builders provides fluent constructors for test entities
package builders

import (
	"github.com/KirkDiggler/hero-planner/internal/entities"
)

// HeroProgressBuilder builds HeroProgress records for tests
type HeroProgressBuilder struct {
	progress *entities.HeroProgress
}

// NewHeroProgressBuilder starts a fresh level-0 record
func NewHeroProgressBuilder() *HeroProgressBuilder {
	return &HeroProgressBuilder{
		progress: &entities.HeroProgress{
			UserID:   "user-test-001",
			HeroName: "Hela",
		},
	}
}

// WithUserID sets the owner
func (b *HeroProgressBuilder) WithUserID(id string) *HeroProgressBuilder {
	b.progress.UserID = id
	return b
}

// WithHero sets the hero name
func (b *HeroProgressBuilder) WithHero(name string) *HeroProgressBuilder {
	b.progress.HeroName = name
	return b
}

// WithLevel sets the current level
func (b *HeroProgressBuilder) WithLevel(level int) *HeroProgressBuilder {
	b.progress.CurrentLevel = level
	return b
}

// WithRelics sets the relics on hand
func (b *HeroProgressBuilder) WithRelics(relics int) *HeroProgressBuilder {
	b.progress.CurrentRelics = relics
	return b
}

// WithNextGoal sets the next goal level
func (b *HeroProgressBuilder) WithNextGoal(level int) *HeroProgressBuilder {
	b.progress.NextGoalLevel = entities.IntPtr(level)
	return b
}

// WithUltimateGoal sets the ultimate goal level
func (b *HeroProgressBuilder) WithUltimateGoal(level int) *HeroProgressBuilder {
	b.progress.UltimateGoalLevel = entities.IntPtr(level)
	return b
}

// WithNeeds sets the cached calculation fields
func (b *HeroProgressBuilder) WithNeeds(needs entities.RelicNeeds) *HeroProgressBuilder {
	b.progress.Needs = &needs
	return b
}

// Build returns a copy of the record
func (b *HeroProgressBuilder) Build() *entities.HeroProgress {
	return b.progress.Clone()
}
