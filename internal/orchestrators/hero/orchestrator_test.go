package hero_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
	herocatalog "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog"
	herocatalogmock "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog/mock"
	heroprogress "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress"
	heroprogressmock "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress/mock"
	"github.com/KirkDiggler/hero-planner/internal/testutils"
	"github.com/KirkDiggler/hero-planner/internal/testutils/builders"
	"github.com/KirkDiggler/hero-planner/internal/testutils/mocks"
)

const testStatsURL = "https://docs.google.com/spreadsheets/d/stats/edit"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCatalog  *herocatalogmock.MockRepository
	mockProgress *heroprogressmock.MockRepository
	orchestrator hero.Service
	ctx          context.Context

	hela *entities.HeroSpec
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = herocatalogmock.NewMockRepository(s.ctrl)
	s.mockProgress = heroprogressmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.hela = &entities.HeroSpec{Name: "Hela", Rarity: entities.RarityEpic, MaxLevel: 60}

	var err error
	s.orchestrator, err = hero.NewOrchestrator(&hero.Config{
		CatalogRepo:   s.mockCatalog,
		ProgressRepo:  s.mockProgress,
		StatisticsURL: testStatsURL,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := hero.NewOrchestrator(&hero.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "CatalogRepo")
	s.Contains(err.Error(), "StatisticsURL")
}

func (s *OrchestratorTestSuite) TestListHeroesGroupsAndNumbers() {
	mocks.ExpectCatalogList(s.ctx, s.mockCatalog, testutils.TestCatalog())

	out, err := s.orchestrator.ListHeroes(s.ctx, &hero.ListHeroesInput{})
	s.Require().NoError(err)
	s.Equal(5, out.Total)
	s.Equal([]hero.RarityGroup{
		{Rarity: entities.RarityCommon, Heroes: []hero.NumberedHero{{Number: 1, Name: "Aldric"}, {Number: 2, Name: "Corvin"}}},
		{Rarity: entities.RarityFine, Heroes: []hero.NumberedHero{{Number: 3, Name: "Brienne"}}},
		{Rarity: entities.RarityExquisite, Heroes: []hero.NumberedHero{{Number: 4, Name: "Delphine"}}},
		{Rarity: entities.RarityEpic, Heroes: []hero.NumberedHero{{Number: 5, Name: "Hela"}}},
	}, out.Groups)
}

func (s *OrchestratorTestSuite) TestListHeroesSkipsUnknownRarity() {
	s.mockCatalog.EXPECT().
		List(s.ctx, herocatalog.ListInput{}).
		Return(&herocatalog.ListOutput{Heroes: []entities.HeroSpec{
			{Name: "Odd", Rarity: "Mythic", MaxLevel: 60},
			{Name: "Aldric", Rarity: entities.RarityCommon, MaxLevel: 30},
		}}, nil)

	out, err := s.orchestrator.ListHeroes(s.ctx, &hero.ListHeroesInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Total)
	s.Require().Len(out.Groups, 1)
	s.Equal(1, out.Groups[0].Heroes[0].Number)
}

func (s *OrchestratorTestSuite) TestGetHeroInfo() {
	detail := &entities.HeroDetail{Name: "Brienne", Stats: []entities.HeroStat{{Header: "Name", Value: "Brienne"}}}

	s.Run("by list number", func() {
		mocks.ExpectCatalogList(s.ctx, s.mockCatalog, testutils.TestCatalog())
		s.mockCatalog.EXPECT().
			GetDetail(s.ctx, herocatalog.GetDetailInput{Name: "Brienne"}).
			Return(&herocatalog.GetDetailOutput{Detail: detail}, nil)

		out, err := s.orchestrator.GetHeroInfo(s.ctx, &hero.GetHeroInfoInput{Query: "3"})
		s.Require().NoError(err)
		s.Equal(detail, out.Detail)
	})

	s.Run("by name", func() {
		s.mockCatalog.EXPECT().
			GetDetail(s.ctx, herocatalog.GetDetailInput{Name: "Brienne"}).
			Return(&herocatalog.GetDetailOutput{Detail: detail}, nil)

		out, err := s.orchestrator.GetHeroInfo(s.ctx, &hero.GetHeroInfoInput{Query: "Brienne"})
		s.Require().NoError(err)
		s.Equal(detail, out.Detail)
	})

	s.Run("number out of range", func() {
		mocks.ExpectCatalogList(s.ctx, s.mockCatalog, testutils.TestCatalog())

		_, err := s.orchestrator.GetHeroInfo(s.ctx, &hero.GetHeroInfoInput{Query: "99"})
		s.True(errors.IsNotFound(err))
		s.Equal("Hero with identifier 99 not found in the sheet.", errors.GetMessage(err))
	})

	s.Run("unknown name", func() {
		s.mockCatalog.EXPECT().
			GetDetail(s.ctx, herocatalog.GetDetailInput{Name: "brienne"}).
			Return(nil, errors.NotFound("hero brienne not found"))

		_, err := s.orchestrator.GetHeroInfo(s.ctx, &hero.GetHeroInfoInput{Query: "brienne"})
		s.True(errors.IsNotFound(err))
		s.Equal("Hero with identifier brienne not found in the sheet.", errors.GetMessage(err))
	})

	s.Run("empty query", func() {
		_, err := s.orchestrator.GetHeroInfo(s.ctx, &hero.GetHeroInfoInput{Query: "  "})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAutocompleteHeroes() {
	s.Run("short input gets nothing", func() {
		out, err := s.orchestrator.AutocompleteHeroes(s.ctx, &hero.AutocompleteHeroesInput{Partial: "He"})
		s.Require().NoError(err)
		s.Empty(out.Names)
	})

	s.Run("case insensitive substring", func() {
		mocks.ExpectCatalogList(s.ctx, s.mockCatalog, testutils.TestCatalog())

		out, err := s.orchestrator.AutocompleteHeroes(s.ctx, &hero.AutocompleteHeroesInput{Partial: "RIE"})
		s.Require().NoError(err)
		s.Equal([]string{"Brienne"}, out.Names)
	})

	s.Run("capped at twenty five", func() {
		var heroes []entities.HeroSpec
		for i := 0; i < 40; i++ {
			heroes = append(heroes, entities.HeroSpec{Name: fmt.Sprintf("Hero %02d", i), Rarity: entities.RarityCommon, MaxLevel: 30})
		}
		s.mockCatalog.EXPECT().
			List(s.ctx, herocatalog.ListInput{}).
			Return(&herocatalog.ListOutput{Heroes: heroes}, nil)

		out, err := s.orchestrator.AutocompleteHeroes(s.ctx, &hero.AutocompleteHeroesInput{Partial: "hero"})
		s.Require().NoError(err)
		s.Len(out.Names, hero.MaxAutocompleteResults)
		s.Equal("Hero 00", out.Names[0])
	})
}

func (s *OrchestratorTestSuite) TestAddHero() {
	s.Run("tracks a catalog hero", func() {
		mocks.ExpectCatalogGet(s.ctx, s.mockCatalog, s.hela)
		created := &entities.HeroProgress{UserID: "u1", HeroName: "Hela"}
		s.mockProgress.EXPECT().
			Create(s.ctx, heroprogress.CreateInput{Progress: created}).
			Return(&heroprogress.CreateOutput{Progress: created}, nil)

		out, err := s.orchestrator.AddHero(s.ctx, &hero.AddHeroInput{UserID: "u1", HeroName: "Hela"})
		s.Require().NoError(err)
		s.False(out.AlreadyTracked)
		s.Equal(created, out.Progress)
	})

	s.Run("already tracked", func() {
		mocks.ExpectCatalogGet(s.ctx, s.mockCatalog, s.hela)
		s.mockProgress.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("Hela is already tracked by user u1"))

		out, err := s.orchestrator.AddHero(s.ctx, &hero.AddHeroInput{UserID: "u1", HeroName: "Hela"})
		s.Require().NoError(err)
		s.True(out.AlreadyTracked)
	})

	s.Run("not in catalog", func() {
		s.mockCatalog.EXPECT().
			Get(s.ctx, herocatalog.GetInput{Name: "Nobody"}).
			Return(nil, errors.NotFound("hero Nobody not found"))

		_, err := s.orchestrator.AddHero(s.ctx, &hero.AddHeroInput{UserID: "u1", HeroName: "Nobody"})
		s.True(errors.IsNotFound(err))
		s.Contains(errors.GetMessage(err), "Hero 'Nobody' not found in the database.")
	})

	s.Run("missing user", func() {
		_, err := s.orchestrator.AddHero(s.ctx, &hero.AddHeroInput{HeroName: "Hela"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestRemoveHero() {
	s.Run("removes", func() {
		s.mockProgress.EXPECT().
			Delete(s.ctx, heroprogress.DeleteInput{UserID: "u1", HeroName: "Hela"}).
			Return(&heroprogress.DeleteOutput{}, nil)

		_, err := s.orchestrator.RemoveHero(s.ctx, &hero.RemoveHeroInput{UserID: "u1", HeroName: "Hela"})
		s.NoError(err)
	})

	s.Run("not tracked", func() {
		s.mockProgress.EXPECT().
			Delete(s.ctx, heroprogress.DeleteInput{UserID: "u1", HeroName: "Hela"}).
			Return(nil, errors.NotFound("Hela is not tracked by user u1"))

		_, err := s.orchestrator.RemoveHero(s.ctx, &hero.RemoveHeroInput{UserID: "u1", HeroName: "Hela"})
		s.True(errors.IsNotFound(err))
		s.Equal("Hero 'Hela' not found in your tracking list.", errors.GetMessage(err))
	})
}

func (s *OrchestratorTestSuite) TestListTrackedHeroesPaging() {
	var tracked []*entities.HeroProgress
	for i := 0; i < 23; i++ {
		tracked = append(tracked, builders.NewHeroProgressBuilder().WithUserID("u1").WithHero(fmt.Sprintf("Hero %02d", i)).Build())
	}

	testCases := []struct {
		name      string
		page      int
		wantPage  int
		wantFirst string
		wantLen   int
	}{
		{name: "first page", page: 1, wantPage: 1, wantFirst: "Hero 00", wantLen: 10},
		{name: "last partial page", page: 3, wantPage: 3, wantFirst: "Hero 20", wantLen: 3},
		{name: "page below range", page: 0, wantPage: 1, wantFirst: "Hero 00", wantLen: 10},
		{name: "page above range", page: 9, wantPage: 3, wantFirst: "Hero 20", wantLen: 3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockProgress.EXPECT().
				ListByUser(s.ctx, heroprogress.ListByUserInput{UserID: "u1"}).
				Return(&heroprogress.ListByUserOutput{Progress: tracked}, nil)

			out, err := s.orchestrator.ListTrackedHeroes(s.ctx, &hero.ListTrackedHeroesInput{UserID: "u1", Page: tc.page})
			s.Require().NoError(err)
			s.Equal(tc.wantPage, out.Page)
			s.Equal(3, out.TotalPages)
			s.Equal(23, out.Total)
			s.Require().Len(out.Progress, tc.wantLen)
			s.Equal(tc.wantFirst, out.Progress[0].HeroName)
		})
	}
}

func (s *OrchestratorTestSuite) TestListTrackedHeroesCapsPageSize() {
	var tracked []*entities.HeroProgress
	for i := 0; i < 30; i++ {
		tracked = append(tracked, builders.NewHeroProgressBuilder().WithUserID("u1").WithHero(fmt.Sprintf("Hero %02d", i)).Build())
	}
	s.mockProgress.EXPECT().
		ListByUser(s.ctx, heroprogress.ListByUserInput{UserID: "u1"}).
		Return(&heroprogress.ListByUserOutput{Progress: tracked}, nil)

	out, err := s.orchestrator.ListTrackedHeroes(s.ctx, &hero.ListTrackedHeroesInput{
		UserID:   "u1",
		Page:     1,
		PageSize: 1000,
	})
	s.Require().NoError(err)
	s.Len(out.Progress, hero.MaxPageSize)
	s.Equal(2, out.TotalPages)
	s.Equal(30, out.Total)
}

func (s *OrchestratorTestSuite) TestListTrackedHeroesEmpty() {
	s.mockProgress.EXPECT().
		ListByUser(s.ctx, heroprogress.ListByUserInput{UserID: "u1"}).
		Return(&heroprogress.ListByUserOutput{}, nil)

	out, err := s.orchestrator.ListTrackedHeroes(s.ctx, &hero.ListTrackedHeroesInput{UserID: "u1", Page: 4})
	s.Require().NoError(err)
	s.Equal(0, out.Total)
	s.Equal(1, out.Page)
	s.Equal(1, out.TotalPages)
	s.Empty(out.Progress)
}

func (s *OrchestratorTestSuite) TestManageHero() {
	stored := builders.NewHeroProgressBuilder().
		WithUserID("u1").
		WithLevel(12).
		WithRelics(3000).
		WithNextGoal(20).
		Build()

	s.Run("applies update", func() {
		mocks.ExpectLoadTracked(s.ctx, s.mockProgress, s.mockCatalog, stored, s.hela)

		expected := stored.Clone()
		expected.CurrentLevel = 15
		expected.UltimateGoalLevel = entities.IntPtr(40)
		s.mockProgress.EXPECT().
			Update(s.ctx, heroprogress.UpdateInput{Progress: expected}).
			Return(&heroprogress.UpdateOutput{Progress: expected}, nil)

		out, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{
			UserID:   "u1",
			HeroName: "Hela",
			Update: engine.Update{
				CurrentLevel:      entities.IntPtr(15),
				UltimateGoalLevel: entities.IntPtr(40),
			},
		})
		s.Require().NoError(err)
		s.Equal("Hela current level and ultimate goal level updated successfully!", out.Summary)
		s.Equal(expected, out.Progress)
	})

	s.Run("no fields skips the write", func() {
		mocks.ExpectLoadTracked(s.ctx, s.mockProgress, s.mockCatalog, stored, s.hela)

		out, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{UserID: "u1", HeroName: "Hela"})
		s.Require().NoError(err)
		s.Equal("Hela not updated. No new values were provided.", out.Summary)
		s.Empty(out.Changed)
	})

	s.Run("validation failure carries rule", func() {
		mocks.ExpectLoadTracked(s.ctx, s.mockProgress, s.mockCatalog, stored, s.hela)

		_, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{
			UserID:   "u1",
			HeroName: "Hela",
			Update:   engine.Update{NextGoalLevel: entities.IntPtr(5)},
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(string(engine.RuleGoalRange), errors.GetMeta(err)["rule"])
		s.Equal(string(engine.FieldNextGoalLevel), errors.GetMeta(err)["field"])
		s.Contains(errors.GetMessage(err), "for this hero (12)")
	})

	s.Run("untracked hero", func() {
		s.mockProgress.EXPECT().
			Get(s.ctx, heroprogress.GetInput{UserID: "u1", HeroName: "Hela"}).
			Return(nil, errors.NotFound("Hela is not tracked by user u1"))

		_, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{UserID: "u1", HeroName: "Hela"})
		s.True(errors.IsNotFound(err))
		s.Equal("Hela was not found in your tracking list. Add the hero first using the 'add_hero' command.",
			errors.GetMessage(err))
	})

	s.Run("hero dropped from catalog", func() {
		mocks.ExpectTracked(s.ctx, s.mockProgress, stored)
		s.mockCatalog.EXPECT().
			Get(s.ctx, herocatalog.GetInput{Name: "Hela"}).
			Return(nil, errors.NotFound("hero Hela not found"))

		_, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{UserID: "u1", HeroName: "Hela"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("storage failure is internal", func() {
		mocks.ExpectLoadTracked(s.ctx, s.mockProgress, s.mockCatalog, stored, s.hela)
		s.mockProgress.EXPECT().
			Update(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("sheet unavailable"))

		_, err := s.orchestrator.ManageHero(s.ctx, &hero.ManageHeroInput{
			UserID:   "u1",
			HeroName: "Hela",
			Update:   engine.Update{CurrentRelics: entities.IntPtr(1)},
		})
		s.True(errors.IsInternal(err))
	})
}

func (s *OrchestratorTestSuite) TestCalculateRelics() {
	stored := builders.NewHeroProgressBuilder().
		WithUserID("u1").
		WithLevel(5).
		WithRelics(1000).
		WithNextGoal(20).
		Build()
	mocks.ExpectLoadTracked(s.ctx, s.mockProgress, s.mockCatalog, stored, s.hela)

	expectedNeeds := entities.RelicNeeds{
		NextUnlock:           entities.UnlockOutcome{Level: 10},
		RelicsToNextUnlock:   entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 5100},
		RelicsToNextGoal:     entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 18100},
		RelicsToUltimateGoal: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
	}
	s.mockProgress.EXPECT().
		UpdateNeeds(s.ctx, heroprogress.UpdateNeedsInput{UserID: "u1", HeroName: "Hela", Needs: expectedNeeds}).
		Return(&heroprogress.UpdateNeedsOutput{}, nil)

	out, err := s.orchestrator.CalculateRelics(s.ctx, &hero.CalculateRelicsInput{UserID: "u1", HeroName: "Hela"})
	s.Require().NoError(err)
	s.Equal(expectedNeeds, out.Needs)
	s.Equal(&expectedNeeds, out.Progress.Needs)
	s.Equal(s.hela, out.Hero)
}

func (s *OrchestratorTestSuite) TestStatisticsLink() {
	out, err := s.orchestrator.StatisticsLink(s.ctx, &hero.StatisticsLinkInput{})
	s.Require().NoError(err)
	s.Equal(testStatsURL, out.SheetURL)
	s.Equal(hero.DefaultFilterGuideURL, out.GuideURL)
}
