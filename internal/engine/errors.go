package engine

import "fmt"

// Rule identifies which validation rule rejected an update
type Rule string

// Validation rules
const (
	RuleInvalidLevel   Rule = "InvalidLevel"
	RuleNegativeRelics Rule = "NegativeRelics"
	RuleLevelOrder     Rule = "LevelOrder"
	RuleGoalOrder      Rule = "GoalOrder"
	RuleGoalRange      Rule = "GoalRange"
)

// ValidationError reports the first rule an update broke. Value is the
// offending input; Min and Max are the bounds it was checked against. For the
// ordering rules Max holds the level the value had to stay at or below.
type ValidationError struct {
	Rule  Rule
	Field Field
	Value int
	Min   int
	Max   int
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%d outside [%d, %d]", e.Rule, e.Field, e.Value, e.Min, e.Max)
}

// Message renders the reason for the person who sent the update
func (e *ValidationError) Message(heroName string) string {
	switch e.Rule {
	case RuleInvalidLevel:
		return fmt.Sprintf("You have entered an invalid current level value for %s. Please enter a value between 0 and %d.",
			heroName, e.Max)
	case RuleNegativeRelics:
		return "Current relics cannot be negative."
	case RuleLevelOrder:
		if e.Field == FieldUltimateGoalLevel {
			return "Current level cannot be higher than the ultimate goal level."
		}
		return "Current level cannot be higher than the next goal level."
	case RuleGoalOrder:
		return "Next goal level cannot be higher than the ultimate goal level."
	case RuleGoalRange:
		if e.Field == FieldUltimateGoalLevel {
			return fmt.Sprintf("Invalid ultimate goal level value. Please enter a value between the next goal level (%d) "+
				"and the max level for this hero (%d) or leave it blank.", e.Min, e.Max)
		}
		return fmt.Sprintf("Invalid next goal level value. Please enter a value between the current level you have "+
			"for this hero (%d) and the max level for this hero (%d) or leave it blank.", e.Min, e.Max)
	default:
		return e.Error()
	}
}
