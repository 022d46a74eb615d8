package discord

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

type RenderTestSuite struct {
	suite.Suite
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) TestHeroInfoCombinesCouncilOrMarch() {
	testCases := []struct {
		name  string
		stats []entities.HeroStat
		want  string
	}{
		{
			name: "joined onto signature skill",
			stats: []entities.HeroStat{
				{Header: "Name", Value: "Hela"},
				{Header: "Council or March", Value: "March"},
				{Header: "Signature Skill", Value: "Death Grip"},
			},
			want: "**Name**: Hela\n**Signature Skill**: March - Death Grip\n",
		},
		{
			name: "joined onto a level column",
			stats: []entities.HeroStat{
				{Header: "Council or March Type", Value: "Council"},
				{Header: "Level 10 Bonus", Value: "+5% ATK"},
				{Header: "Level 20 Bonus", Value: "+8% ATK"},
			},
			want: "**Level 10 Bonus**: Council - +5% ATK\n**Level 20 Bonus**: +8% ATK\n",
		},
		{
			name: "signature skill without a pending value",
			stats: []entities.HeroStat{
				{Header: "signature skill", Value: "Death Grip"},
			},
			want: "**signature skill**: Death Grip\n",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			embed := heroInfoEmbed(&entities.HeroDetail{Name: "Hela", Stats: tc.stats})
			s.Equal("Hela Information", embed.Title)
			s.Require().Len(embed.Fields, 1)
			s.Equal(zeroWidthSpace, embed.Fields[0].Name)
			s.Equal(tc.want, embed.Fields[0].Value)
		})
	}
}

func (s *RenderTestSuite) TestCalculationEmbed() {
	s.Run("amounts and unset goal", func() {
		embed := calculationEmbed(&hero.CalculateRelicsOutput{
			Progress: &entities.HeroProgress{
				HeroName:      "Hela",
				CurrentLevel:  5,
				CurrentRelics: 1000,
				NextGoalLevel: entities.IntPtr(20),
			},
			Needs: entities.RelicNeeds{
				NextUnlock:           entities.UnlockOutcome{Level: 10},
				RelicsToNextUnlock:   entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 5100},
				RelicsToNextGoal:     entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 18100},
				RelicsToUltimateGoal: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
			},
		})

		s.Equal("Hela Information", embed.Title)
		s.Equal("**Current Level:** 5\n"+
			"**Current Relics:** 1000\n"+
			"**Next Unlock Level:** 10\n"+
			"**Relics Needed for Next Unlock:** 5100\n"+
			"**Next Goal Level:** 20\n"+
			"**Relics Needed for Next Goal:** 18100\n"+
			"**Ultimate Goal Level:** No ultimate goal level has been set\n"+
			"**Relics Needed for Ultimate Goal:** No ultimate goal level has been set\n",
			embed.Fields[0].Value)
	})

	s.Run("maxed and past goals", func() {
		embed := calculationEmbed(&hero.CalculateRelicsOutput{
			Progress: &entities.HeroProgress{
				HeroName:          "Aldric",
				CurrentLevel:      30,
				CurrentRelics:     10,
				NextGoalLevel:     entities.IntPtr(20),
				UltimateGoalLevel: entities.IntPtr(30),
			},
			Needs: entities.RelicNeeds{
				NextUnlock:           entities.UnlockOutcome{MaxedOut: true},
				RelicsToNextUnlock:   entities.RelicOutcome{Kind: entities.OutcomeMaxedOut},
				RelicsToNextGoal:     entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal},
				RelicsToUltimateGoal: entities.RelicOutcome{Kind: entities.OutcomeAlreadyPastGoal},
			},
		})

		value := embed.Fields[0].Value
		s.Contains(value, "**Next Unlock Level:** Hero Already Maxed\n")
		s.Contains(value, "**Relics Needed for Next Unlock:** Hero Already Maxed\n")
		s.Contains(value, "**Relics Needed for Next Goal:** "+entities.PhrasePastNextGoal+"\n")
		s.Contains(value, "**Relics Needed for Ultimate Goal:** "+entities.PhrasePastUltimateGoal+"\n")
	})

	s.Run("stored zero goals read as unset", func() {
		embed := calculationEmbed(&hero.CalculateRelicsOutput{
			Progress: &entities.HeroProgress{
				HeroName:          "Brienne",
				CurrentLevel:      5,
				NextGoalLevel:     entities.IntPtr(0),
				UltimateGoalLevel: entities.IntPtr(0),
			},
			Needs: entities.RelicNeeds{
				NextUnlock:           entities.UnlockOutcome{Level: 10},
				RelicsToNextUnlock:   entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 6100},
				RelicsToNextGoal:     entities.RelicOutcome{Kind: entities.OutcomeNotSet},
				RelicsToUltimateGoal: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
			},
		})

		value := embed.Fields[0].Value
		s.Contains(value, "**Next Goal Level:** "+entities.PhraseNoNextGoal+"\n")
		s.Contains(value, "**Ultimate Goal Level:** "+entities.PhraseNoUltimateGoal+"\n")
		s.NotContains(value, "Goal Level:** 0")
	})
}

func (s *RenderTestSuite) TestGoalOr() {
	s.Equal(notAvailable, goalOr(nil, notAvailable))
	s.Equal(notAvailable, goalOr(entities.IntPtr(0), notAvailable))
	s.Equal("40", goalOr(entities.IntPtr(40), notAvailable))
}

func (s *RenderTestSuite) TestOverviewCustomID() {
	id := overviewCustomID("123", 4)
	s.Equal("overview:123:4", id)

	user, page, ok := parseOverviewCustomID(id)
	s.True(ok)
	s.Equal("123", user)
	s.Equal(4, page)

	for _, bad := range []string{"", "overview", "overview::1", "overview:123:x", "other:123:1", "overview:1:2:3"} {
		_, _, ok := parseOverviewCustomID(bad)
		s.False(ok, bad)
	}
}

func (s *RenderTestSuite) TestCommandsHaveDescriptions() {
	seen := make(map[string]bool)
	for _, cmd := range Commands() {
		s.NotEmpty(cmd.Description, cmd.Name)
		s.False(seen[cmd.Name], "duplicate %s", cmd.Name)
		seen[cmd.Name] = true
		for _, opt := range cmd.Options {
			s.NotEmpty(opt.Description, "%s %s", cmd.Name, opt.Name)
		}
	}
	s.Len(seen, 10)
}
