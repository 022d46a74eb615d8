// Package v1alpha1 handles the planner admin grpc service interface
package v1alpha1

import (
	"context"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

// Request and response field names
const (
	FieldUserID            = "user_id"
	FieldHeroName          = "hero_name"
	FieldCurrentLevel      = "current_level"
	FieldCurrentRelics     = "current_relics"
	FieldNextGoalLevel     = "next_goal_level"
	FieldUltimateGoalLevel = "ultimate_goal_level"
	FieldPage              = "page"
	FieldPageSize          = "page_size"
)

// PlannerHandlerConfig holds dependencies for the planner handler
type PlannerHandlerConfig struct {
	HeroService hero.Service
}

// Validate ensures all required dependencies are present
func (c *PlannerHandlerConfig) Validate() error {
	if c == nil || c.HeroService == nil {
		return errors.InvalidArgument("hero service is required")
	}
	return nil
}

// PlannerHandler implements the planner admin gRPC service
type PlannerHandler struct {
	heroService hero.Service
}

var _ PlannerServiceServer = (*PlannerHandler)(nil)

// NewPlannerHandler creates a new planner handler with the given configuration
func NewPlannerHandler(cfg *PlannerHandlerConfig) (*PlannerHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &PlannerHandler{
		heroService: cfg.HeroService,
	}, nil
}

// ManageHero applies a partial update to a tracked hero
func (h *PlannerHandler) ManageHero(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, heroName, err := userAndHero(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	update, err := updateFromStruct(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.heroService.ManageHero(ctx, &hero.ManageHeroInput{
		UserID:   userID,
		HeroName: heroName,
		Update:   update,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	changed := make([]interface{}, len(out.Changed))
	for i, f := range out.Changed {
		changed[i] = string(f)
	}

	return toStruct(map[string]interface{}{
		"progress": progressToMap(out.Progress),
		"changed":  changed,
		"summary":  out.Summary,
	})
}

// CalculateRelics computes and stores the relic needs of a tracked hero
func (h *PlannerHandler) CalculateRelics(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID, heroName, err := userAndHero(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.heroService.CalculateRelics(ctx, &hero.CalculateRelicsInput{
		UserID:   userID,
		HeroName: heroName,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]interface{}{
		"progress":  progressToMap(out.Progress),
		"max_level": out.Hero.MaxLevel,
		"needs":     needsToMap(out.Needs),
	})
}

// ListTrackedHeroes returns one page of a user's tracked heroes
func (h *PlannerHandler) ListTrackedHeroes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := stringField(req, FieldUserID)
	if userID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("user_id is required"))
	}

	page, err := intField(req, FieldPage)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	pageSize, err := intField(req, FieldPageSize)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	input := &hero.ListTrackedHeroesInput{UserID: userID, Page: 1}
	if page != nil {
		input.Page = *page
	}
	if pageSize != nil {
		input.PageSize = *pageSize
	}

	out, err := h.heroService.ListTrackedHeroes(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	heroes := make([]interface{}, len(out.Progress))
	for i, p := range out.Progress {
		heroes[i] = progressToMap(p)
	}

	return toStruct(map[string]interface{}{
		"heroes":      heroes,
		"page":        out.Page,
		"total_pages": out.TotalPages,
		"total":       out.Total,
	})
}

func userAndHero(req *structpb.Struct) (string, string, error) {
	userID := stringField(req, FieldUserID)
	heroName := stringField(req, FieldHeroName)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired(FieldUserID, userID, vb)
	errors.ValidateRequired(FieldHeroName, heroName, vb)
	if err := vb.Build(); err != nil {
		return "", "", err
	}
	return userID, heroName, nil
}

func updateFromStruct(req *structpb.Struct) (engine.Update, error) {
	var update engine.Update
	targets := []struct {
		field string
		dst   **int
	}{
		{FieldCurrentLevel, &update.CurrentLevel},
		{FieldCurrentRelics, &update.CurrentRelics},
		{FieldNextGoalLevel, &update.NextGoalLevel},
		{FieldUltimateGoalLevel, &update.UltimateGoalLevel},
	}
	for _, t := range targets {
		v, err := intField(req, t.field)
		if err != nil {
			return engine.Update{}, err
		}
		*t.dst = v
	}
	return update, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// intField returns nil for a missing or null field
func intField(req *structpb.Struct, name string) (*int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		f := kind.NumberValue
		if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
			return nil, errors.InvalidArgumentf("%s must be a whole number", name)
		}
		n := int(f)
		return &n, nil
	default:
		return nil, errors.InvalidArgumentf("%s must be a number", name)
	}
}

func progressToMap(p *entities.HeroProgress) map[string]interface{} {
	m := map[string]interface{}{
		FieldUserID:            p.UserID,
		FieldHeroName:          p.HeroName,
		FieldCurrentLevel:      p.CurrentLevel,
		FieldCurrentRelics:     p.CurrentRelics,
		FieldNextGoalLevel:     optionalInt(p.NextGoalLevel),
		FieldUltimateGoalLevel: optionalInt(p.UltimateGoalLevel),
	}
	if p.Needs != nil {
		m["needs"] = needsToMap(*p.Needs)
	}
	return m
}

func needsToMap(n entities.RelicNeeds) map[string]interface{} {
	return map[string]interface{}{
		"next_unlock":             n.NextUnlock.String(),
		"relics_to_next_unlock":   n.RelicsToNextUnlock.Render(entities.NextUnlockPhrasing),
		"relics_to_next_goal":     n.RelicsToNextGoal.Render(entities.NextGoalPhrasing),
		"relics_to_ultimate_goal": n.RelicsToUltimateGoal.Render(entities.UltimateGoalPhrasing),
	}
}

func optionalInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func toStruct(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return s, nil
}
