package engine

// Update is a partial change to a HeroProgress. A nil field was not supplied
// and keeps its stored value.
type Update struct {
	CurrentLevel      *int
	CurrentRelics     *int
	NextGoalLevel     *int
	UltimateGoalLevel *int
}

// IsEmpty reports whether no field was supplied
func (u Update) IsEmpty() bool {
	return u.CurrentLevel == nil && u.CurrentRelics == nil &&
		u.NextGoalLevel == nil && u.UltimateGoalLevel == nil
}

// Field names a user-editable HeroProgress field
type Field string

// Editable fields in display order
const (
	FieldCurrentLevel      Field = "current_level"
	FieldCurrentRelics     Field = "current_relics"
	FieldNextGoalLevel     Field = "next_goal_level"
	FieldUltimateGoalLevel Field = "ultimate_goal_level"
)

// Label is the wording used for the field in confirmation messages
func (f Field) Label() string {
	switch f {
	case FieldCurrentLevel:
		return "current level"
	case FieldCurrentRelics:
		return "current relics"
	case FieldNextGoalLevel:
		return "next goal level"
	case FieldUltimateGoalLevel:
		return "ultimate goal level"
	default:
		return string(f)
	}
}
