package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
)

type MilestonesTestSuite struct {
	suite.Suite
}

func TestMilestonesSuite(t *testing.T) {
	suite.Run(t, new(MilestonesTestSuite))
}

func (s *MilestonesTestSuite) TestMilestonesReturnsCopy() {
	table := engine.Milestones()
	s.Require().Len(table, 7)
	s.Equal(engine.Milestone{Level: 1, Cost: 500}, table[0])
	s.Equal(engine.Milestone{Level: 60, Cost: 120000}, table[6])

	table[0].Cost = 1
	s.Equal(500, engine.Milestones()[0].Cost)
}

func (s *MilestonesTestSuite) TestRelicsNeeded() {
	testCases := []struct {
		name     string
		from     int
		to       *int
		max      int
		relics   int
		expected entities.RelicOutcome
	}{
		{
			name:     "first two milestones",
			from:     0,
			to:       entities.IntPtr(10),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 6600},
		},
		{
			name:     "goal equal to current level",
			from:     10,
			to:       entities.IntPtr(10),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal},
		},
		{
			name:     "goal below current level",
			from:     25,
			to:       entities.IntPtr(20),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal},
		},
		{
			name:     "relics already cover the goal",
			from:     0,
			to:       entities.IntPtr(10),
			max:      60,
			relics:   7000,
			expected: entities.RelicOutcome{Kind: entities.OutcomeSufficient, Amount: 400},
		},
		{
			name:     "relics exactly cover the goal",
			from:     0,
			to:       entities.IntPtr(10),
			max:      60,
			relics:   6600,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 0},
		},
		{
			name:     "goal spanning several milestones",
			from:     5,
			to:       entities.IntPtr(35),
			max:      60,
			relics:   100,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 73000},
		},
		{
			name:     "goal between milestones counts none",
			from:     11,
			to:       entities.IntPtr(19),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 0},
		},
		{
			name:     "full climb",
			from:     0,
			to:       entities.IntPtr(60),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 373600},
		},
		{
			name:     "goal above max level still counts every milestone",
			from:     0,
			to:       entities.IntPtr(60),
			max:      50,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 373600},
		},
		{
			name:     "hero already above a lowered max level",
			from:     50,
			to:       entities.IntPtr(60),
			max:      40,
			expected: entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 120000},
		},
		{
			name:     "unset goal",
			from:     0,
			to:       nil,
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
		},
		{
			name:     "zero goal counts as unset",
			from:     0,
			to:       entities.IntPtr(0),
			max:      60,
			expected: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.RelicsNeeded(tc.from, tc.to, tc.max, tc.relics))
		})
	}
}

func (s *MilestonesTestSuite) TestRelicsNeededSpanSum() {
	out := engine.RelicsNeeded(5, entities.IntPtr(35), 60, 0)
	s.Equal(6100+13000+54000, out.Amount)
}

func (s *MilestonesTestSuite) TestRelicsNeededIsIdempotent() {
	first := engine.RelicsNeeded(3, entities.IntPtr(45), 60, 1234)
	second := engine.RelicsNeeded(3, entities.IntPtr(45), 60, 1234)
	s.Equal(first, second)
}

func (s *MilestonesTestSuite) TestNextUnlock() {
	testCases := []struct {
		name     string
		from     int
		max      int
		expected entities.UnlockOutcome
	}{
		{"fresh hero", 0, 60, entities.UnlockOutcome{Level: 1}},
		{"on a milestone", 10, 60, entities.UnlockOutcome{Level: 20}},
		{"between milestones", 33, 60, entities.UnlockOutcome{Level: 40}},
		{"at max level", 60, 60, entities.UnlockOutcome{MaxedOut: true}},
		{"next milestone above max level", 40, 45, entities.UnlockOutcome{MaxedOut: true}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, engine.NextUnlock(tc.from, tc.max))
		})
	}
}

func (s *MilestonesTestSuite) TestRelicsToNextUnlock() {
	s.Equal(entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 6000},
		engine.RelicsToNextUnlock(entities.UnlockOutcome{Level: 10}, 100))
	s.Equal(entities.RelicOutcome{Kind: entities.OutcomeSufficient, Amount: 100},
		engine.RelicsToNextUnlock(entities.UnlockOutcome{Level: 1}, 600))
	s.Equal(entities.RelicOutcome{Kind: entities.OutcomeMaxedOut},
		engine.RelicsToNextUnlock(entities.UnlockOutcome{MaxedOut: true}, 0))
}
