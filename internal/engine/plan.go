package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/hero-planner/internal/entities"
)

// Plan is a validated update ready to be persisted
type Plan struct {
	// Progress is the merged record
	Progress *entities.HeroProgress
	// Changed lists the supplied fields in display order
	Changed []Field
}

// PlanUpdate validates and merges update and records which fields it set.
func PlanUpdate(existing *entities.HeroProgress, update Update, maxLevel int) (*Plan, error) {
	merged, err := ValidateAndMerge(existing, update, maxLevel)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Progress: merged,
		Changed:  changedFields(update),
	}, nil
}

func changedFields(u Update) []Field {
	var changed []Field
	if u.CurrentLevel != nil {
		changed = append(changed, FieldCurrentLevel)
	}
	if u.CurrentRelics != nil {
		changed = append(changed, FieldCurrentRelics)
	}
	if u.NextGoalLevel != nil {
		changed = append(changed, FieldNextGoalLevel)
	}
	if u.UltimateGoalLevel != nil {
		changed = append(changed, FieldUltimateGoalLevel)
	}
	return changed
}

// Summary is the confirmation shown after the plan is saved
func (p *Plan) Summary(heroName string) string {
	if len(p.Changed) == 0 {
		return fmt.Sprintf("%s not updated. No new values were provided.", heroName)
	}
	labels := make([]string, len(p.Changed))
	for i, f := range p.Changed {
		labels[i] = f.Label()
	}
	return fmt.Sprintf("%s %s updated successfully!", heroName, strings.Join(labels, " and "))
}

// ComputeRelicNeeds derives the four cached calculation fields of a record.
func ComputeRelicNeeds(progress *entities.HeroProgress, maxLevel int) entities.RelicNeeds {
	unlock := NextUnlock(progress.CurrentLevel, maxLevel)
	return entities.RelicNeeds{
		NextUnlock:           unlock,
		RelicsToNextUnlock:   RelicsToNextUnlock(unlock, progress.CurrentRelics),
		RelicsToNextGoal:     RelicsNeeded(progress.CurrentLevel, progress.NextGoalLevel, maxLevel, progress.CurrentRelics),
		RelicsToUltimateGoal: RelicsNeeded(progress.CurrentLevel, progress.UltimateGoalLevel, maxLevel, progress.CurrentRelics),
	}
}
