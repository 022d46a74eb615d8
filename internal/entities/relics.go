package entities

import "strconv"

// OutcomeKind classifies a relic calculation result
type OutcomeKind string

// Outcome kinds. Only OutcomeAmount carries a number of relics still needed;
// the others are valid results that call for distinct wording.
const (
	OutcomeAmount          OutcomeKind = "amount"
	OutcomeNotSet          OutcomeKind = "not_set"
	OutcomeAlreadyPastGoal OutcomeKind = "already_past_goal"
	OutcomeSufficient      OutcomeKind = "sufficient"
	OutcomeMaxedOut        OutcomeKind = "maxed_out"
)

// RelicOutcome is the result of a relics-needed calculation.
// Amount is the shortfall for OutcomeAmount and the surplus for
// OutcomeSufficient; it is zero otherwise.
type RelicOutcome struct {
	Kind   OutcomeKind `json:"kind"`
	Amount int         `json:"amount,omitempty"`
}

// UnlockOutcome is the next milestone level a hero can reach
type UnlockOutcome struct {
	Level    int  `json:"level,omitempty"`
	MaxedOut bool `json:"maxed_out,omitempty"`
}

// RelicNeeds are the four cached calculation fields of a HeroProgress
type RelicNeeds struct {
	NextUnlock           UnlockOutcome `json:"next_unlock"`
	RelicsToNextUnlock   RelicOutcome  `json:"relics_to_next_unlock"`
	RelicsToNextGoal     RelicOutcome  `json:"relics_to_next_goal"`
	RelicsToUltimateGoal RelicOutcome  `json:"relics_to_ultimate_goal"`
}

// Phrases used when an outcome is written to a sheet cell or shown to a user
const (
	PhraseHeroMaxed             = "Hero Already Maxed"
	PhraseEnoughForNextUnlock   = "You already have enough relics for the next unlock level"
	PhraseNoNextGoal            = "No next goal level has been set"
	PhraseNoUltimateGoal        = "No ultimate goal level has been set"
	PhrasePastNextGoal          = "Current level is higher than next goal level, please adjust using /manage_hero"
	PhrasePastUltimateGoal      = "Current level is higher than ultimate goal level, please adjust using /manage_hero"
	PhraseEnoughForNextGoal     = "You already have enough relics for the next goal level"
	PhraseEnoughForUltimateGoal = "You already have enough relics for the ultimate goal level"
)

// String renders the unlock outcome as shown to users
func (u UnlockOutcome) String() string {
	if u.MaxedOut {
		return PhraseHeroMaxed
	}
	return strconv.Itoa(u.Level)
}

// Phrasing supplies the wording for the non-numeric outcomes of one field
type Phrasing struct {
	NotSet     string
	PastGoal   string
	Sufficient string
}

// Phrasings for each of the three relic fields
var (
	NextUnlockPhrasing = Phrasing{
		Sufficient: PhraseEnoughForNextUnlock,
	}
	NextGoalPhrasing = Phrasing{
		NotSet:     PhraseNoNextGoal,
		PastGoal:   PhrasePastNextGoal,
		Sufficient: PhraseEnoughForNextGoal,
	}
	UltimateGoalPhrasing = Phrasing{
		NotSet:     PhraseNoUltimateGoal,
		PastGoal:   PhrasePastUltimateGoal,
		Sufficient: PhraseEnoughForUltimateGoal,
	}
)

// Render formats the outcome with the given phrasing
func (o RelicOutcome) Render(p Phrasing) string {
	switch o.Kind {
	case OutcomeAmount:
		return strconv.Itoa(o.Amount)
	case OutcomeNotSet:
		return p.NotSet
	case OutcomeAlreadyPastGoal:
		return p.PastGoal
	case OutcomeSufficient:
		return p.Sufficient
	case OutcomeMaxedOut:
		return PhraseHeroMaxed
	default:
		return ""
	}
}
