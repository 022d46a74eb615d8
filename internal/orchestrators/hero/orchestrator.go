// Package hero implements the hero planner use-cases behind each chat command
package hero

//go:generate mockgen -destination=mock/mock_service.go -package=heromock github.com/KirkDiggler/hero-planner/internal/orchestrators/hero Service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	herocatalog "github.com/KirkDiggler/hero-planner/internal/repositories/hero_catalog"
	heroprogress "github.com/KirkDiggler/hero-planner/internal/repositories/hero_progress"
)

const (
	// DefaultPageSize is the number of tracked heroes per overview page
	DefaultPageSize = 10
	// MaxPageSize keeps one page within the 25 fields an embed can hold
	MaxPageSize = 25
	// MinAutocompleteLength is the shortest partial name that gets suggestions
	MinAutocompleteLength = 3
	// MaxAutocompleteResults is the most suggestions a chat client will show
	MaxAutocompleteResults = 25

	// DefaultFilterGuideURL explains spreadsheet filter views
	DefaultFilterGuideURL = "https://support.google.com/docs/answer/3540681?hl=en"
)

// Service defines the hero planner operations
type Service interface {
	// ListHeroes returns the catalog grouped by rarity and numbered from 1
	ListHeroes(ctx context.Context, input *ListHeroesInput) (*ListHeroesOutput, error)

	// GetHeroInfo looks a hero up by list number or exact name
	GetHeroInfo(ctx context.Context, input *GetHeroInfoInput) (*GetHeroInfoOutput, error)

	// AutocompleteHeroes suggests catalog names containing the partial input
	AutocompleteHeroes(ctx context.Context, input *AutocompleteHeroesInput) (*AutocompleteHeroesOutput, error)

	// AddHero starts tracking a catalog hero for a user
	AddHero(ctx context.Context, input *AddHeroInput) (*AddHeroOutput, error)

	// RemoveHero stops tracking a hero
	RemoveHero(ctx context.Context, input *RemoveHeroInput) (*RemoveHeroOutput, error)

	// ListTrackedHeroes returns one page of a user's tracked heroes
	ListTrackedHeroes(ctx context.Context, input *ListTrackedHeroesInput) (*ListTrackedHeroesOutput, error)

	// ManageHero validates and applies a partial update to a tracked hero
	ManageHero(ctx context.Context, input *ManageHeroInput) (*ManageHeroOutput, error)

	// CalculateRelics computes and caches the relic needs of a tracked hero
	CalculateRelics(ctx context.Context, input *CalculateRelicsInput) (*CalculateRelicsOutput, error)

	// StatisticsLink returns the shared statistics sheet
	StatisticsLink(ctx context.Context, input *StatisticsLinkInput) (*StatisticsLinkOutput, error)
}

// Config holds the dependencies for the hero orchestrator
type Config struct {
	CatalogRepo  herocatalog.Repository
	ProgressRepo heroprogress.Repository
	// StatisticsURL is the public hero statistics sheet
	StatisticsURL string
	// FilterGuideURL defaults to DefaultFilterGuideURL
	FilterGuideURL string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.ProgressRepo == nil {
		vb.RequiredField("ProgressRepo")
	}
	errors.ValidateRequired("StatisticsURL", c.StatisticsURL, vb)

	return vb.Build()
}

type orchestrator struct {
	catalog        herocatalog.Repository
	progress       heroprogress.Repository
	statisticsURL  string
	filterGuideURL string
}

// NewOrchestrator creates a new hero orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	guide := cfg.FilterGuideURL
	if guide == "" {
		guide = DefaultFilterGuideURL
	}

	return &orchestrator{
		catalog:        cfg.CatalogRepo,
		progress:       cfg.ProgressRepo,
		statisticsURL:  cfg.StatisticsURL,
		filterGuideURL: guide,
	}, nil
}

func (o *orchestrator) ListHeroes(ctx context.Context, input *ListHeroesInput) (*ListHeroesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.catalog.List(ctx, herocatalog.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list heroes")
	}

	return numberHeroes(ctx, out.Heroes), nil
}

// numberHeroes groups heroes by rarity in display order and numbers them
// continuously across groups. Heroes with an unknown rarity are not listed.
func numberHeroes(ctx context.Context, heroes []entities.HeroSpec) *ListHeroesOutput {
	byRarity := make(map[entities.Rarity][]string)
	for _, h := range heroes {
		byRarity[h.Rarity] = append(byRarity[h.Rarity], h.Name)
	}

	out := &ListHeroesOutput{}
	n := 1
	for _, rarity := range entities.RarityOrder {
		names := byRarity[rarity]
		if len(names) == 0 {
			continue
		}
		group := RarityGroup{Rarity: rarity}
		for _, name := range names {
			group.Heroes = append(group.Heroes, NumberedHero{Number: n, Name: name})
			n++
		}
		out.Groups = append(out.Groups, group)
		delete(byRarity, rarity)
	}
	out.Total = n - 1

	for rarity, names := range byRarity {
		slog.WarnContext(ctx, "heroes with unknown rarity left out of list", "rarity", rarity, "count", len(names))
	}

	return out
}

func (o *orchestrator) GetHeroInfo(ctx context.Context, input *GetHeroInfoInput) (*GetHeroInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.InvalidArgument("a hero number or name is required")
	}

	name := query
	if isListNumber(query) {
		resolved, err := o.resolveNumber(ctx, query)
		if err != nil {
			return nil, err
		}
		name = resolved
	}

	out, err := o.catalog.GetDetail(ctx, herocatalog.GetDetailInput{Name: name})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, heroIdentifierNotFound(query))
		}
		return nil, errors.Wrapf(err, "failed to get hero %s", name)
	}

	return &GetHeroInfoOutput{Detail: out.Detail}, nil
}

func (o *orchestrator) resolveNumber(ctx context.Context, query string) (string, error) {
	number, err := strconv.Atoi(query)
	if err != nil {
		return "", errors.NotFound(heroIdentifierNotFound(query))
	}

	list, err := o.ListHeroes(ctx, &ListHeroesInput{})
	if err != nil {
		return "", err
	}
	for _, group := range list.Groups {
		for _, h := range group.Heroes {
			if h.Number == number {
				return h.Name, nil
			}
		}
	}
	return "", errors.NotFound(heroIdentifierNotFound(query))
}

func isListNumber(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func (o *orchestrator) AutocompleteHeroes(ctx context.Context, input *AutocompleteHeroesInput) (*AutocompleteHeroesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len([]rune(input.Partial)) < MinAutocompleteLength {
		return &AutocompleteHeroesOutput{}, nil
	}

	out, err := o.catalog.List(ctx, herocatalog.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list heroes")
	}

	partial := strings.ToLower(input.Partial)
	var names []string
	for _, h := range out.Heroes {
		if strings.Contains(strings.ToLower(h.Name), partial) {
			names = append(names, h.Name)
			if len(names) == MaxAutocompleteResults {
				break
			}
		}
	}

	return &AutocompleteHeroesOutput{Names: names}, nil
}

func (o *orchestrator) AddHero(ctx context.Context, input *AddHeroInput) (*AddHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateUserHero(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	if _, err := o.catalog.Get(ctx, herocatalog.GetInput{Name: input.HeroName}); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf(
				"Hero '%s' not found in the database. Please double-check the spelling or use the autocomplete feature for suggestions.",
				input.HeroName))
		}
		return nil, errors.Wrapf(err, "failed to look up hero %s", input.HeroName)
	}

	out, err := o.progress.Create(ctx, heroprogress.CreateInput{
		Progress: &entities.HeroProgress{
			UserID:   input.UserID,
			HeroName: input.HeroName,
		},
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return &AddHeroOutput{AlreadyTracked: true}, nil
		}
		return nil, errors.Wrapf(err, "failed to add hero %s", input.HeroName)
	}

	slog.InfoContext(ctx, "hero tracked", "user_id", input.UserID, "hero", input.HeroName)

	return &AddHeroOutput{Progress: out.Progress}, nil
}

func (o *orchestrator) RemoveHero(ctx context.Context, input *RemoveHeroInput) (*RemoveHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateUserHero(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	_, err := o.progress.Delete(ctx, heroprogress.DeleteInput{UserID: input.UserID, HeroName: input.HeroName})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound,
				fmt.Sprintf("Hero '%s' not found in your tracking list.", input.HeroName))
		}
		return nil, errors.Wrapf(err, "failed to remove hero %s", input.HeroName)
	}

	slog.InfoContext(ctx, "hero untracked", "user_id", input.UserID, "hero", input.HeroName)

	return &RemoveHeroOutput{}, nil
}

func (o *orchestrator) ListTrackedHeroes(ctx context.Context, input *ListTrackedHeroesInput) (*ListTrackedHeroesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := o.progress.ListByUser(ctx, heroprogress.ListByUserInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tracked heroes")
	}

	size := input.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	total := len(out.Progress)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return &ListTrackedHeroesOutput{
		Progress:   out.Progress[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func (o *orchestrator) ManageHero(ctx context.Context, input *ManageHeroInput) (*ManageHeroOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateUserHero(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	existing, spec, err := o.loadTracked(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}

	plan, err := engine.PlanUpdate(existing, input.Update, spec.MaxLevel)
	if err != nil {
		return nil, validationError(err, input.HeroName)
	}

	progress := plan.Progress
	if len(plan.Changed) > 0 {
		out, err := o.progress.Update(ctx, heroprogress.UpdateInput{Progress: plan.Progress})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update hero %s", input.HeroName)
		}
		progress = out.Progress
		slog.InfoContext(ctx, "hero updated",
			"user_id", input.UserID,
			"hero", input.HeroName,
			"fields", len(plan.Changed),
		)
	}

	return &ManageHeroOutput{
		Progress: progress,
		Changed:  plan.Changed,
		Summary:  plan.Summary(input.HeroName),
	}, nil
}

func (o *orchestrator) CalculateRelics(ctx context.Context, input *CalculateRelicsInput) (*CalculateRelicsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateUserHero(input.UserID, input.HeroName); err != nil {
		return nil, err
	}

	progress, spec, err := o.loadTracked(ctx, input.UserID, input.HeroName)
	if err != nil {
		return nil, err
	}

	needs := engine.ComputeRelicNeeds(progress, spec.MaxLevel)
	_, err = o.progress.UpdateNeeds(ctx, heroprogress.UpdateNeedsInput{
		UserID:   input.UserID,
		HeroName: input.HeroName,
		Needs:    needs,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save relic needs for %s", input.HeroName)
	}
	progress.Needs = &needs

	return &CalculateRelicsOutput{
		Hero:     spec,
		Progress: progress,
		Needs:    needs,
	}, nil
}

func (o *orchestrator) StatisticsLink(_ context.Context, input *StatisticsLinkInput) (*StatisticsLinkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &StatisticsLinkOutput{
		SheetURL: o.statisticsURL,
		GuideURL: o.filterGuideURL,
	}, nil
}

// loadTracked fetches a user's record and the hero's catalog entry
func (o *orchestrator) loadTracked(ctx context.Context, userID, hero string) (*entities.HeroProgress, *entities.HeroSpec, error) {
	pout, err := o.progress.Get(ctx, heroprogress.GetInput{UserID: userID, HeroName: hero})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf(
				"%s was not found in your tracking list. Add the hero first using the 'add_hero' command.", hero))
		}
		return nil, nil, errors.Wrapf(err, "failed to load %s", hero)
	}

	cout, err := o.catalog.Get(ctx, herocatalog.GetInput{Name: hero})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.WrapWithCode(err, errors.CodeNotFound,
				fmt.Sprintf("%s was not found in the hero database.", hero))
		}
		return nil, nil, errors.Wrapf(err, "failed to look up hero %s", hero)
	}

	return pout.Progress, cout.Hero, nil
}

// validationError converts an engine rejection into an InvalidArgument whose
// message is shown to the user as is.
func validationError(err error, hero string) error {
	var verr *engine.ValidationError
	if !stderrors.As(err, &verr) {
		return errors.Wrap(err, "failed to plan update")
	}
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, verr.Message(hero)).
		WithMeta("rule", string(verr.Rule)).
		WithMeta("field", string(verr.Field))
}

func validateUserHero(userID, hero string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", userID, vb)
	errors.ValidateRequired("hero_name", hero, vb)
	return vb.Build()
}

func heroIdentifierNotFound(query string) string {
	return fmt.Sprintf("Hero with identifier %s not found in the sheet.", query)
}
