package testutils

import (
	"github.com/KirkDiggler/hero-planner/internal/entities"
)

// Fixture values shared across packages
const (
	TestUserID   = "123456789012345678"
	TestHeroName = "Hela"
)

// TestCatalog returns a small catalog covering every rarity tier, in the
// order a spreadsheet would list them.
func TestCatalog() []entities.HeroSpec {
	return []entities.HeroSpec{
		{Name: "Hela", Rarity: entities.RarityEpic, MaxLevel: 60},
		{Name: "Aldric", Rarity: entities.RarityCommon, MaxLevel: 30},
		{Name: "Brienne", Rarity: entities.RarityFine, MaxLevel: 40},
		{Name: "Corvin", Rarity: entities.RarityCommon, MaxLevel: 30},
		{Name: "Delphine", Rarity: entities.RarityExquisite, MaxLevel: 50},
	}
}
