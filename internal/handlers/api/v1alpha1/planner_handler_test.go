package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
	heromock "github.com/KirkDiggler/hero-planner/internal/orchestrators/hero/mock"
	"github.com/KirkDiggler/hero-planner/internal/testutils/builders"
)

type PlannerHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockHero *heromock.MockService
	handler  *v1alpha1.PlannerHandler
	ctx      context.Context
}

func TestPlannerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlannerHandlerTestSuite))
}

func (s *PlannerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHero = heromock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewPlannerHandler(&v1alpha1.PlannerHandlerConfig{
		HeroService: s.mockHero,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *PlannerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PlannerHandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *PlannerHandlerTestSuite) TestNewPlannerHandlerRequiresService() {
	_, err := v1alpha1.NewPlannerHandler(&v1alpha1.PlannerHandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *PlannerHandlerTestSuite) TestManageHero() {
	merged := builders.NewHeroProgressBuilder().
		WithUserID("u1").
		WithLevel(15).
		WithRelics(3000).
		WithNextGoal(20).
		Build()

	s.mockHero.EXPECT().
		ManageHero(s.ctx, &hero.ManageHeroInput{
			UserID:   "u1",
			HeroName: "Hela",
			Update:   engine.Update{CurrentLevel: entities.IntPtr(15), UltimateGoalLevel: nil},
		}).
		Return(&hero.ManageHeroOutput{
			Progress: merged,
			Changed:  []engine.Field{engine.FieldCurrentLevel},
			Summary:  "Hela current level updated successfully!",
		}, nil)

	resp, err := s.handler.ManageHero(s.ctx, s.request(map[string]interface{}{
		"user_id":             "u1",
		"hero_name":           "Hela",
		"current_level":       15,
		"ultimate_goal_level": nil,
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal("Hela current level updated successfully!", out["summary"])
	s.Equal([]interface{}{"current_level"}, out["changed"])
	progress := out["progress"].(map[string]interface{})
	s.Equal(float64(15), progress["current_level"])
	s.Equal(float64(20), progress["next_goal_level"])
	s.Nil(progress["ultimate_goal_level"])
}

func (s *PlannerHandlerTestSuite) TestManageHeroRejectsBadInput() {
	testCases := []struct {
		name   string
		fields map[string]interface{}
		want   string
	}{
		{
			name:   "missing user and hero",
			fields: map[string]interface{}{},
			want:   "user_id",
		},
		{
			name:   "fractional level",
			fields: map[string]interface{}{"user_id": "u1", "hero_name": "Hela", "current_level": 12.5},
			want:   "current_level must be a whole number",
		},
		{
			name:   "string relics",
			fields: map[string]interface{}{"user_id": "u1", "hero_name": "Hela", "current_relics": "lots"},
			want:   "current_relics must be a number",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.ManageHero(s.ctx, s.request(tc.fields))
			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Contains(st.Message(), tc.want)
		})
	}
}

func (s *PlannerHandlerTestSuite) TestManageHeroValidationCarriesRule() {
	s.mockHero.EXPECT().
		ManageHero(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("Current relics cannot be negative.").
			WithMeta("rule", string(engine.RuleNegativeRelics)))

	_, err := s.handler.ManageHero(s.ctx, s.request(map[string]interface{}{
		"user_id":        "u1",
		"hero_name":      "Hela",
		"current_relics": -1,
	}))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsInvalidArgument(converted))
	s.Equal("Current relics cannot be negative.", errors.GetMessage(converted))
	s.Equal("NegativeRelics", errors.GetMeta(converted)["rule"])
}

func (s *PlannerHandlerTestSuite) TestCalculateRelics() {
	needs := entities.RelicNeeds{
		NextUnlock:           entities.UnlockOutcome{Level: 10},
		RelicsToNextUnlock:   entities.RelicOutcome{Kind: entities.OutcomeAmount, Amount: 5100},
		RelicsToNextGoal:     entities.RelicOutcome{Kind: entities.OutcomeSufficient, Amount: 200},
		RelicsToUltimateGoal: entities.RelicOutcome{Kind: entities.OutcomeNotSet},
	}
	progress := builders.NewHeroProgressBuilder().WithUserID("u1").WithLevel(5).WithNeeds(needs).Build()

	s.mockHero.EXPECT().
		CalculateRelics(s.ctx, &hero.CalculateRelicsInput{UserID: "u1", HeroName: "Hela"}).
		Return(&hero.CalculateRelicsOutput{
			Hero:     &entities.HeroSpec{Name: "Hela", Rarity: entities.RarityEpic, MaxLevel: 60},
			Progress: progress,
			Needs:    needs,
		}, nil)

	resp, err := s.handler.CalculateRelics(s.ctx, s.request(map[string]interface{}{
		"user_id":   "u1",
		"hero_name": "Hela",
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal(float64(60), out["max_level"])
	s.Equal(map[string]interface{}{
		"next_unlock":             "10",
		"relics_to_next_unlock":   "5100",
		"relics_to_next_goal":     entities.PhraseEnoughForNextGoal,
		"relics_to_ultimate_goal": entities.PhraseNoUltimateGoal,
	}, out["needs"])
}

func (s *PlannerHandlerTestSuite) TestCalculateRelicsNotFound() {
	s.mockHero.EXPECT().
		CalculateRelics(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("Hela was not found in your tracking list."))

	_, err := s.handler.CalculateRelics(s.ctx, s.request(map[string]interface{}{
		"user_id":   "u1",
		"hero_name": "Hela",
	}))

	s.Equal(codes.NotFound, status.Code(err))
}

func (s *PlannerHandlerTestSuite) TestListTrackedHeroesDefaultsToFirstPage() {
	s.mockHero.EXPECT().
		ListTrackedHeroes(s.ctx, &hero.ListTrackedHeroesInput{UserID: "u1", Page: 1}).
		Return(&hero.ListTrackedHeroesOutput{
			Progress:   []*entities.HeroProgress{builders.NewHeroProgressBuilder().WithUserID("u1").Build()},
			Page:       1,
			TotalPages: 1,
			Total:      1,
		}, nil)

	resp, err := s.handler.ListTrackedHeroes(s.ctx, s.request(map[string]interface{}{"user_id": "u1"}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal(float64(1), out["total"])
	heroes := out["heroes"].([]interface{})
	s.Require().Len(heroes, 1)
	s.Equal("Hela", heroes[0].(map[string]interface{})["hero_name"])
}

func (s *PlannerHandlerTestSuite) TestListTrackedHeroesOverGRPC() {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterPlannerServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(lis)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockHero.EXPECT().
		ListTrackedHeroes(gomock.Any(), &hero.ListTrackedHeroesInput{UserID: "u1", Page: 2, PageSize: 5}).
		Return(&hero.ListTrackedHeroesOutput{Page: 2, TotalPages: 2, Total: 6}, nil)

	client := v1alpha1.NewPlannerServiceClient(conn)
	resp, err := client.ListTrackedHeroes(s.ctx, s.request(map[string]interface{}{
		"user_id":   "u1",
		"page":      2,
		"page_size": 5,
	}))
	s.Require().NoError(err)
	s.Equal(float64(2), resp.AsMap()["page"])
	s.Equal(float64(6), resp.AsMap()["total"])

	_, err = client.ListTrackedHeroes(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}
