package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/hero-planner/internal/handlers/discord"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

// runBot connects to Discord, registers the slash commands and answers
// interactions until ctx is done
func runBot(ctx context.Context, cfg *Config, heroService hero.Service) error {
	handler, err := discord.NewHandler(&discord.HandlerConfig{
		HeroService: heroService,
		Timeout:     cfg.CommandTimeout,
		PageSize:    cfg.PageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create discord handler: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		slog.InfoContext(ctx, "discord session ready", "user", r.User.Username, "guilds", len(r.Guilds))
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handler.HandleInteraction(ctx, s, i)
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Warn("failed to close discord session", "error", err)
		}
	}()

	registered, err := session.ApplicationCommandBulkOverwrite(session.State.User.ID, cfg.DiscordGuildID, discord.Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	slog.InfoContext(ctx, "slash commands registered", "count", len(registered), "guild", cfg.DiscordGuildID)

	<-ctx.Done()
	slog.Info("disconnecting from discord")
	return nil
}
