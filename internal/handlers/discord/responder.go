package discord

//go:generate mockgen -destination=mock/mock_responder.go -package=discordmock github.com/KirkDiggler/hero-planner/internal/handlers/discord Responder

import (
	"github.com/bwmarrin/discordgo"
)

// Responder is the subset of *discordgo.Session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
}
