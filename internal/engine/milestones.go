package engine

import "github.com/KirkDiggler/hero-planner/internal/entities"

// Milestone is a hero level with the relic cost checkpoint attached to it
type Milestone struct {
	Level int
	Cost  int
}

// milestones is ordered by level. It is never handed out directly.
var milestones = [...]Milestone{
	{Level: 1, Cost: 500},
	{Level: 10, Cost: 6100},
	{Level: 20, Cost: 13000},
	{Level: 30, Cost: 54000},
	{Level: 40, Cost: 80000},
	{Level: 50, Cost: 100000},
	{Level: 60, Cost: 120000},
}

// Milestones returns a copy of the milestone table in level order
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	copy(out, milestones[:])
	return out
}

// RelicsNeeded returns how many relics are still required to take a hero
// from fromLevel to toLevel. Every milestone in (fromLevel, toLevel] counts
// toward the total. maxLevel does not bound the sum, so a stored goal above
// a lowered max level still reports its full cost.
func RelicsNeeded(fromLevel int, toLevel *int, maxLevel, currentRelics int) entities.RelicOutcome {
	if !entities.GoalSet(toLevel) {
		return entities.RelicOutcome{Kind: entities.OutcomeNotSet}
	}
	target := *toLevel
	if fromLevel >= target {
		return entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal}
	}
	total := 0
	for _, m := range milestones {
		if m.Level > fromLevel && m.Level <= target {
			total += m.Cost
		}
	}
	return shortfall(total, currentRelics)
}

// NextUnlock returns the smallest milestone level above fromLevel that the
// hero can still reach.
func NextUnlock(fromLevel, maxLevel int) entities.UnlockOutcome {
	for _, m := range milestones {
		if m.Level > fromLevel && m.Level <= maxLevel {
			return entities.UnlockOutcome{Level: m.Level}
		}
	}
	return entities.UnlockOutcome{MaxedOut: true}
}

// RelicsToNextUnlock compares the cost of a single unlock milestone with the
// relics on hand.
func RelicsToNextUnlock(unlock entities.UnlockOutcome, currentRelics int) entities.RelicOutcome {
	if unlock.MaxedOut {
		return entities.RelicOutcome{Kind: entities.OutcomeMaxedOut}
	}
	m, ok := milestoneAt(unlock.Level)
	if !ok {
		return entities.RelicOutcome{Kind: entities.OutcomeMaxedOut}
	}
	return shortfall(m.Cost, currentRelics)
}

func milestoneAt(level int) (Milestone, bool) {
	for _, m := range milestones {
		if m.Level == level {
			return m, true
		}
	}
	return Milestone{}, false
}

// shortfall is the subtract-and-clamp step shared by every relic outcome.
// Exactly enough relics is still an amount (of zero).
func shortfall(cost, currentRelics int) entities.RelicOutcome {
	diff := cost - currentRelics
	if diff < 0 {
		return entities.RelicOutcome{Kind: entities.OutcomeSufficient, Amount: -diff}
	}
	return entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: diff}
}
