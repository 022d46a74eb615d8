// Package discord answers slash command, autocomplete and button interactions
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/hero-planner/internal/engine"
	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

const (
	// DefaultTimeout bounds a single command
	DefaultTimeout = 60 * time.Second

	// autocompleteTimeout stays under the three seconds a client waits for choices
	autocompleteTimeout = 2500 * time.Millisecond

	overviewPrefix = "overview"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	HeroService hero.Service
	// Timeout defaults to DefaultTimeout
	Timeout time.Duration
	// PageSize defaults to hero.DefaultPageSize
	PageSize int
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.HeroService == nil {
		vb.RequiredField("HeroService")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}
	if c.PageSize < 0 {
		vb.Field("PageSize", "must not be negative")
	}
	return vb.Build()
}

// Handler routes interactions to the hero service
type Handler struct {
	heroService hero.Service
	timeout     time.Duration
	pageSize    int
	commands    map[string]commandFunc
}

// commandFunc produces the reply that replaces a deferred response
type commandFunc func(ctx context.Context, i *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		heroService: cfg.HeroService,
		timeout:     cfg.Timeout,
		pageSize:    cfg.PageSize,
	}
	if h.timeout == 0 {
		h.timeout = DefaultTimeout
	}
	if h.pageSize == 0 {
		h.pageSize = hero.DefaultPageSize
	}

	h.commands = map[string]commandFunc{
		CommandHeroList:          h.heroList,
		CommandAllHeroStatistics: h.allHeroStatistics,
		CommandHeroInfo:          h.heroInfo,
		CommandAddHero:           h.addHero,
		CommandMyHeroes:          h.myHeroes,
		CommandRemoveHero:        h.removeHero,
		CommandManageHero:        h.manageHero,
		CommandOverview:          h.overview,
		CommandCalculateRelics:   h.calculateRelics,
	}

	return h, nil
}

// HandleInteraction answers one interaction. It blocks until the reply is
// sent or the command times out.
func (h *Handler) HandleInteraction(ctx context.Context, r Responder, ic *discordgo.InteractionCreate) {
	i := ic.Interaction
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, r, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(ctx, r, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(ctx, r, i)
	default:
		slog.DebugContext(ctx, "ignoring interaction", "type", int(i.Type))
	}
}

func (h *Handler) handleCommand(ctx context.Context, r Responder, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()

	if data.Name == CommandHelp {
		err := r.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{helpEmbed(Commands())},
			},
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to send help", "error", err)
		}
		return
	}

	fn, ok := h.commands[data.Name]
	if !ok {
		slog.WarnContext(ctx, "unknown command", "command", data.Name)
		return
	}

	opts := optionMap(data.Options)
	h.deferred(ctx, r, i, data.Name, discordgo.InteractionResponseDeferredChannelMessageWithSource,
		func(ctx context.Context) (*discordgo.WebhookEdit, error) {
			return fn(ctx, i, opts)
		})
}

type commandResult struct {
	edit *discordgo.WebhookEdit
	err  error
}

// deferred acknowledges the interaction, runs fn under the command timeout
// and replaces the placeholder with its reply.
func (h *Handler) deferred(
	ctx context.Context,
	r Responder,
	i *discordgo.Interaction,
	name string,
	ack discordgo.InteractionResponseType,
	fn func(ctx context.Context) (*discordgo.WebhookEdit, error),
) {
	if err := r.InteractionRespond(i, &discordgo.InteractionResponse{Type: ack}); err != nil {
		slog.ErrorContext(ctx, "failed to acknowledge interaction", "command", name, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan commandResult, 1)
	go func() {
		edit, err := fn(ctx)
		done <- commandResult{edit: edit, err: err}
	}()

	var edit *discordgo.WebhookEdit
	select {
	case res := <-done:
		if res.err != nil {
			edit = errorReply(ctx, name, res.err)
		} else {
			edit = res.edit
		}
	case <-ctx.Done():
		slog.WarnContext(ctx, "command timed out", "command", name, "timeout", h.timeout)
		edit = contentReply(TimeoutMessage)
	}

	if _, err := r.InteractionResponseEdit(i, edit); err != nil {
		slog.ErrorContext(ctx, "failed to send reply", "command", name, "error", err)
	}
}

// errorReply shows user-facing messages as is and hides everything else
func errorReply(ctx context.Context, name string, err error) *discordgo.WebhookEdit {
	if errors.IsDeadlineExceeded(err) {
		slog.WarnContext(ctx, "command timed out", "command", name)
		return contentReply(TimeoutMessage)
	}
	if errors.GetCode(err).UserFacing() {
		return contentReply(errors.GetMessage(err))
	}
	slog.ErrorContext(ctx, "command failed", "command", name, "error", err)
	return contentReply(GenericErrorMessage)
}

func (h *Handler) handleAutocomplete(ctx context.Context, r Responder, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()

	var partial string
	for _, opt := range data.Options {
		if opt.Focused && opt.Type == discordgo.ApplicationCommandOptionString {
			partial = opt.StringValue()
			break
		}
	}

	ctx, cancel := context.WithTimeout(ctx, autocompleteTimeout)
	defer cancel()

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	out, err := h.heroService.AutocompleteHeroes(ctx, &hero.AutocompleteHeroesInput{Partial: partial})
	if err != nil {
		slog.WarnContext(ctx, "autocomplete failed", "command", data.Name, "error", err)
	} else {
		for _, name := range out.Names {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		}
	}

	err = r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send choices", "command", data.Name, "error", err)
	}
}

func (h *Handler) handleComponent(ctx context.Context, r Responder, i *discordgo.Interaction) {
	data := i.MessageComponentData()

	ownerID, page, ok := parseOverviewCustomID(data.CustomID)
	if !ok {
		slog.WarnContext(ctx, "unknown component", "custom_id", data.CustomID)
		return
	}

	user := interactionUser(i)
	if user == nil || user.ID != ownerID {
		err := r.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: NotOwnerMessage,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to reject page change", "error", err)
		}
		return
	}

	h.deferred(ctx, r, i, CommandOverview, discordgo.InteractionResponseDeferredMessageUpdate,
		func(ctx context.Context) (*discordgo.WebhookEdit, error) {
			return h.overviewPage(ctx, user, page)
		})
}

func (h *Handler) heroList(ctx context.Context, _ *discordgo.Interaction, _ options) (*discordgo.WebhookEdit, error) {
	out, err := h.heroService.ListHeroes(ctx, &hero.ListHeroesInput{})
	if err != nil {
		return nil, err
	}
	if out.Total == 0 {
		return contentReply(NoHeroesMessage), nil
	}
	return embedReply(heroListEmbed(out), nil), nil
}

func (h *Handler) allHeroStatistics(ctx context.Context, _ *discordgo.Interaction, _ options) (*discordgo.WebhookEdit, error) {
	out, err := h.heroService.StatisticsLink(ctx, &hero.StatisticsLinkInput{})
	if err != nil {
		return nil, err
	}
	return contentReply(statisticsMessage(out)), nil
}

func (h *Handler) heroInfo(ctx context.Context, _ *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error) {
	out, err := h.heroService.GetHeroInfo(ctx, &hero.GetHeroInfoInput{
		Query: opts.str(OptionHeroNumberOrName),
	})
	if err != nil {
		return nil, err
	}
	return embedReply(heroInfoEmbed(out.Detail), nil), nil
}

func (h *Handler) addHero(ctx context.Context, i *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}
	name := opts.str(OptionHeroName)

	out, err := h.heroService.AddHero(ctx, &hero.AddHeroInput{UserID: user.ID, HeroName: name})
	if err != nil {
		return nil, err
	}
	if out.AlreadyTracked {
		return contentReply(fmt.Sprintf(
			"You already have '%s' in your tracking list. You can only add each hero once.", name)), nil
	}
	return contentReply(fmt.Sprintf("Hero '%s' added to your tracking list!", name)), nil
}

func (h *Handler) myHeroes(ctx context.Context, i *discordgo.Interaction, _ options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}

	var tracked []*entities.HeroProgress
	for page := 1; ; page++ {
		out, err := h.heroService.ListTrackedHeroes(ctx, &hero.ListTrackedHeroesInput{
			UserID:   user.ID,
			Page:     page,
			PageSize: h.pageSize,
		})
		if err != nil {
			return nil, err
		}
		tracked = append(tracked, out.Progress...)
		if out.Page >= out.TotalPages {
			break
		}
	}

	if len(tracked) == 0 {
		return contentReply(NoTrackedHeroesMessage), nil
	}
	return embedReply(myHeroesEmbed(user.Username, tracked), nil), nil
}

func (h *Handler) removeHero(ctx context.Context, i *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}
	name := opts.str(OptionHeroName)

	if _, err := h.heroService.RemoveHero(ctx, &hero.RemoveHeroInput{UserID: user.ID, HeroName: name}); err != nil {
		return nil, err
	}
	return contentReply(fmt.Sprintf("Hero '%s' removed from your tracking list!", name)), nil
}

func (h *Handler) manageHero(ctx context.Context, i *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}

	out, err := h.heroService.ManageHero(ctx, &hero.ManageHeroInput{
		UserID:   user.ID,
		HeroName: opts.str(OptionHeroName),
		Update: engine.Update{
			CurrentLevel:      opts.integer(OptionCurrentLevel),
			CurrentRelics:     opts.integer(OptionCurrentRelics),
			NextGoalLevel:     opts.integer(OptionNextGoalLevel),
			UltimateGoalLevel: opts.integer(OptionUltimateGoalLevel),
		},
	})
	if err != nil {
		return nil, err
	}
	return contentReply(out.Summary), nil
}

func (h *Handler) overview(ctx context.Context, i *discordgo.Interaction, _ options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}
	return h.overviewPage(ctx, user, 1)
}

func (h *Handler) overviewPage(ctx context.Context, user *discordgo.User, page int) (*discordgo.WebhookEdit, error) {
	out, err := h.heroService.ListTrackedHeroes(ctx, &hero.ListTrackedHeroesInput{
		UserID:   user.ID,
		Page:     page,
		PageSize: h.pageSize,
	})
	if err != nil {
		return nil, err
	}
	if out.Total == 0 {
		empty := []discordgo.MessageComponent{}
		edit := contentReply(NoTrackedHeroesMessage)
		edit.Components = &empty
		return edit, nil
	}
	return embedReply(overviewEmbed(user.Username, out), overviewButtons(user.ID, out)), nil
}

func (h *Handler) calculateRelics(ctx context.Context, i *discordgo.Interaction, opts options) (*discordgo.WebhookEdit, error) {
	user, err := requireUser(i)
	if err != nil {
		return nil, err
	}

	out, err := h.heroService.CalculateRelics(ctx, &hero.CalculateRelicsInput{
		UserID:   user.ID,
		HeroName: opts.str(OptionHeroName),
	})
	if err != nil {
		return nil, err
	}
	return embedReply(calculationEmbed(out), nil), nil
}

// interactionUser is the member in a guild and the user in a direct message
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func requireUser(i *discordgo.Interaction) (*discordgo.User, error) {
	user := interactionUser(i)
	if user == nil || user.ID == "" {
		return nil, errors.InvalidArgument("This command can only be used by a user.")
	}
	return user, nil
}

func overviewCustomID(userID string, page int) string {
	return fmt.Sprintf("%s:%s:%d", overviewPrefix, userID, page)
}

func parseOverviewCustomID(id string) (string, int, bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 || parts[0] != overviewPrefix || parts[1] == "" {
		return "", 0, false
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, false
	}
	return parts[1], page, true
}

func contentReply(content string) *discordgo.WebhookEdit {
	return &discordgo.WebhookEdit{Content: &content}
}

// embedReply clears any placeholder text so only the embed shows
func embedReply(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.WebhookEdit {
	empty := ""
	embeds := []*discordgo.MessageEmbed{embed}
	edit := &discordgo.WebhookEdit{Content: &empty, Embeds: &embeds}
	if components != nil {
		edit.Components = &components
	}
	return edit
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func (o options) str(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

// integer returns nil for an omitted option
func (o options) integer(name string) *int {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return nil
	}
	v := int(opt.IntValue())
	return &v
}
