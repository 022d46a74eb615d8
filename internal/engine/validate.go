package engine

import "github.com/KirkDiggler/hero-planner/internal/entities"

// ValidateAndMerge checks update against the hero's max level and the stored
// record, then returns the merged record. existing may be nil for a hero that
// has never been updated. Rules run in a fixed order and the first failure is
// returned as a *ValidationError.
func ValidateAndMerge(existing *entities.HeroProgress, update Update, maxLevel int) (*entities.HeroProgress, error) {
	if err := validate(existing, update, maxLevel); err != nil {
		return nil, err
	}
	return merge(existing, update), nil
}

func validate(existing *entities.HeroProgress, u Update, maxLevel int) error {
	if u.CurrentLevel != nil {
		cur := *u.CurrentLevel
		if cur < 0 || cur > maxLevel {
			return &ValidationError{Rule: RuleInvalidLevel, Field: FieldCurrentLevel, Value: cur, Min: 0, Max: maxLevel}
		}
		if u.NextGoalLevel != nil && cur > *u.NextGoalLevel {
			return &ValidationError{Rule: RuleLevelOrder, Field: FieldNextGoalLevel, Value: cur, Max: *u.NextGoalLevel}
		}
	}

	if u.CurrentRelics != nil && *u.CurrentRelics < 0 {
		return &ValidationError{Rule: RuleNegativeRelics, Field: FieldCurrentRelics, Value: *u.CurrentRelics}
	}

	if u.NextGoalLevel != nil {
		next := *u.NextGoalLevel
		baseline := effectiveCurrentLevel(existing, u)
		if next < baseline || next > maxLevel {
			return &ValidationError{Rule: RuleGoalRange, Field: FieldNextGoalLevel, Value: next, Min: baseline, Max: maxLevel}
		}
		if u.UltimateGoalLevel != nil && next > *u.UltimateGoalLevel {
			return &ValidationError{Rule: RuleGoalOrder, Field: FieldNextGoalLevel, Value: next, Max: *u.UltimateGoalLevel}
		}
	}

	if u.UltimateGoalLevel != nil {
		ult := *u.UltimateGoalLevel
		baseline := effectiveNextGoalLevel(existing, u)
		if ult < baseline || ult > maxLevel {
			return &ValidationError{Rule: RuleGoalRange, Field: FieldUltimateGoalLevel, Value: ult, Min: baseline, Max: maxLevel}
		}
		if u.CurrentLevel != nil && *u.CurrentLevel > ult {
			return &ValidationError{Rule: RuleLevelOrder, Field: FieldUltimateGoalLevel, Value: *u.CurrentLevel, Max: ult}
		}
	}

	return nil
}

// effectiveCurrentLevel is the supplied current level, else the stored one,
// else 0.
func effectiveCurrentLevel(existing *entities.HeroProgress, u Update) int {
	if u.CurrentLevel != nil {
		return *u.CurrentLevel
	}
	if existing != nil {
		return existing.CurrentLevel
	}
	return 0
}

// effectiveNextGoalLevel is the supplied next goal, else the stored next goal
// when it is set, else the effective current level.
func effectiveNextGoalLevel(existing *entities.HeroProgress, u Update) int {
	if u.NextGoalLevel != nil {
		return *u.NextGoalLevel
	}
	if existing != nil && entities.GoalSet(existing.NextGoalLevel) {
		return *existing.NextGoalLevel
	}
	return effectiveCurrentLevel(existing, u)
}

func merge(existing *entities.HeroProgress, u Update) *entities.HeroProgress {
	out := existing.Clone()
	if out == nil {
		out = &entities.HeroProgress{}
	}
	if u.CurrentLevel != nil {
		out.CurrentLevel = *u.CurrentLevel
	}
	if u.CurrentRelics != nil {
		out.CurrentRelics = *u.CurrentRelics
	}
	if u.NextGoalLevel != nil {
		out.NextGoalLevel = entities.IntPtr(*u.NextGoalLevel)
	}
	if u.UltimateGoalLevel != nil {
		out.UltimateGoalLevel = entities.IntPtr(*u.UltimateGoalLevel)
	}
	return out
}
