package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Command names
const (
	CommandHeroList          = "hero_list"
	CommandAllHeroStatistics = "all_hero_statistics"
	CommandHeroInfo          = "hero_info"
	CommandAddHero           = "add_hero"
	CommandMyHeroes          = "my_heroes"
	CommandRemoveHero        = "remove_hero"
	CommandManageHero        = "manage_hero"
	CommandOverview          = "my_heroes_with_input_information"
	CommandCalculateRelics   = "calculate_relics_needed"
	CommandHelp              = "help"
)

// Option names
const (
	OptionHeroNumberOrName  = "hero_number_or_name"
	OptionHeroName          = "hero_name"
	OptionCurrentLevel      = "current_level"
	OptionCurrentRelics     = "current_relics"
	OptionNextGoalLevel     = "next_goal_level"
	OptionUltimateGoalLevel = "ultimate_goal_level"
)

func heroNameOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         OptionHeroName,
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

func levelOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
	}
}

// Commands returns the slash command definitions in help order
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandHeroList,
			Description: "Display the list of heroes",
		},
		{
			Name:        CommandAllHeroStatistics,
			Description: "Provides a link to the hero statistics sheet",
		},
		{
			Name:        CommandHeroInfo,
			Description: "Fetch information for a specific hero by name or assigned number from hero_list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         OptionHeroNumberOrName,
					Description:  "Hero number from hero_list or hero name",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		{
			Name:        CommandAddHero,
			Description: "Add a hero to your tracking list",
			Options:     []*discordgo.ApplicationCommandOption{heroNameOption("Hero to track")},
		},
		{
			Name:        CommandMyHeroes,
			Description: "Display the list of heroes you have added",
		},
		{
			Name:        CommandRemoveHero,
			Description: "Remove a hero from your tracking list",
			Options:     []*discordgo.ApplicationCommandOption{heroNameOption("Hero to stop tracking")},
		},
		{
			Name:        CommandManageHero,
			Description: "Update the current level of a tracked hero",
			Options: []*discordgo.ApplicationCommandOption{
				heroNameOption("Tracked hero to update"),
				levelOption(OptionCurrentLevel, "Current level of the hero"),
				levelOption(OptionCurrentRelics, "Relics you currently have for the hero"),
				levelOption(OptionNextGoalLevel, "Level you are working towards next"),
				levelOption(OptionUltimateGoalLevel, "Level you eventually want to reach"),
			},
		},
		{
			Name:        CommandOverview,
			Description: "Display a list of your tracked heroes with the information you have entered for them",
		},
		{
			Name:        CommandCalculateRelics,
			Description: "Calculate relics needed for various goals for a tracked hero",
			Options:     []*discordgo.ApplicationCommandOption{heroNameOption("Tracked hero to calculate")},
		},
		{
			Name:        CommandHelp,
			Description: "Display all bot commands and their descriptions",
		},
	}
}
