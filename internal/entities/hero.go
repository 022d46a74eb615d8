// Package entities holds the hero planner's domain types
package entities

// Rarity is the catalog rarity tier of a hero
type Rarity string

// Rarity tiers, lowest first
const (
	RarityCommon    Rarity = "Common"
	RarityFine      Rarity = "Fine"
	RarityExquisite Rarity = "Exquisite"
	RarityEpic      Rarity = "Epic"
)

// RarityOrder is the display order of rarity tiers. Hero list numbers are
// assigned by walking the catalog in this order.
var RarityOrder = []Rarity{RarityCommon, RarityFine, RarityExquisite, RarityEpic}

// HeroSpec is a read-only catalog entry
type HeroSpec struct {
	Name     string `json:"name" yaml:"name"`
	Rarity   Rarity `json:"rarity" yaml:"rarity"`
	MaxLevel int    `json:"max_level" yaml:"max_level"`
}

// HeroStat is one labelled column of a hero's reference data
type HeroStat struct {
	Header string `json:"header" yaml:"header"`
	Value  string `json:"value" yaml:"value"`
}

// HeroDetail is the full reference row for a hero, in column order
type HeroDetail struct {
	Name  string     `json:"name"`
	Stats []HeroStat `json:"stats"`
}
