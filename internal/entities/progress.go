package entities

// HeroProgress is one user's tracking record for one hero.
// Goal levels are optional; nil means the user never set one.
type HeroProgress struct {
	UserID            string      `json:"user_id"`
	HeroName          string      `json:"hero_name"`
	CurrentLevel      int         `json:"current_level"`
	CurrentRelics     int         `json:"current_relics"`
	NextGoalLevel     *int        `json:"next_goal_level,omitempty"`
	UltimateGoalLevel *int        `json:"ultimate_goal_level,omitempty"`
	Needs             *RelicNeeds `json:"needs,omitempty"`
}

// Clone returns a deep copy
func (p *HeroProgress) Clone() *HeroProgress {
	if p == nil {
		return nil
	}
	out := *p
	out.NextGoalLevel = cloneInt(p.NextGoalLevel)
	out.UltimateGoalLevel = cloneInt(p.UltimateGoalLevel)
	if p.Needs != nil {
		needs := *p.Needs
		out.Needs = &needs
	}
	return &out
}

// GoalSet reports whether a goal level counts as set. A stored goal of zero
// is treated the same as an absent one everywhere a goal is read.
func GoalSet(goal *int) bool {
	return goal != nil && *goal > 0
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
