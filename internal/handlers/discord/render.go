package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/hero-planner/internal/entities"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

// Fixed replies
const (
	TimeoutMessage         = "Request timed out. The command is taking too long to complete."
	GenericErrorMessage    = "An error occurred while processing your request. Please try again later."
	NoTrackedHeroesMessage = "You haven't added any heroes yet!"
	NoHeroesMessage        = "No heroes found in the sheet."
	NotOwnerMessage        = "Only the person who ran this command can change its pages."
)

// zeroWidthSpace names embed fields that should show no heading
const zeroWidthSpace = "\u200b"

const notAvailable = "N/A"

var rarityEmoji = map[entities.Rarity]string{
	entities.RarityEpic:      "🟠",
	entities.RarityExquisite: "🟣",
	entities.RarityFine:      "🔵",
	entities.RarityCommon:    "🟢",
}

func heroListEmbed(out *hero.ListHeroesOutput) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, group := range out.Groups {
		emoji := rarityEmoji[group.Rarity]
		fmt.Fprintf(&b, "**%s Heroes**\n", group.Rarity)
		lines := make([]string, len(group.Heroes))
		for i, h := range group.Heroes {
			lines[i] = fmt.Sprintf("%s %d. %s", emoji, h.Number, h.Name)
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "Hero List",
		Description: b.String(),
	}
}

func statisticsMessage(out *hero.StatisticsLinkOutput) string {
	return "\n**Hela's Hero Planner Information Sheet**\n\n" +
		"This sheet contains detailed statistics for all heroes. " +
		"You can create custom filter views to easily find the information you need. \n\n" +
		"Here's how to create one:\n\n" +
		"1. **Click the 'Data' tab** at the top of the spreadsheet.\n" +
		"2. **Select 'Create a filter view'.** \n" +
		"3. **Choose the columns you want to filter.** " +
		"Click the filter icon in the column header and select your desired criteria.\n" +
		"4. **Name your filter view** (optional) to easily access it later.\n\n" +
		fmt.Sprintf("For more detailed instructions and screenshots, check out this guide: "+
			"[Creating and using filter views](<%s>)\n\n", out.GuideURL) +
		fmt.Sprintf("Access the sheet: [Hela's Hero Planner Information Sheet](%s)", out.SheetURL)
}

// heroInfoEmbed lists every stat of a hero. A "council or march" value is
// not shown on its own; it prefixes the next signature skill or level column.
func heroInfoEmbed(detail *entities.HeroDetail) *discordgo.MessageEmbed {
	var b strings.Builder
	var councilOrMarch string
	for _, stat := range detail.Stats {
		header := strings.ToLower(stat.Header)
		switch {
		case strings.Contains(header, "council or march"):
			councilOrMarch = stat.Value
		case councilOrMarch != "" && (header == "signature skill" || strings.HasPrefix(header, "level")):
			fmt.Fprintf(&b, "**%s**: %s - %s\n", stat.Header, councilOrMarch, stat.Value)
			councilOrMarch = ""
		default:
			fmt.Fprintf(&b, "**%s**: %s\n", stat.Header, stat.Value)
		}
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s Information", detail.Name),
		Fields: []*discordgo.MessageEmbedField{{Name: zeroWidthSpace, Value: b.String()}},
	}
}

func myHeroesEmbed(username string, tracked []*entities.HeroProgress) *discordgo.MessageEmbed {
	names := make([]string, len(tracked))
	for i, p := range tracked {
		names[i] = p.HeroName
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's Heroes", username),
		Fields: []*discordgo.MessageEmbedField{{Name: "Heroes", Value: strings.Join(names, "\n")}},
	}
}

func overviewEmbed(username string, out *hero.ListTrackedHeroesOutput) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Hero Overview (Page %d/%d)", username, out.Page, out.TotalPages),
	}
	for _, p := range out.Progress {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("__%s__", p.HeroName),
			Value: fmt.Sprintf("**Current Level:** %d\n**Current Relics:** %d\n"+
				"**Next Goal Level:** %s\n**Ultimate Goal Level:** %s\n",
				p.CurrentLevel, p.CurrentRelics,
				goalOr(p.NextGoalLevel, notAvailable), goalOr(p.UltimateGoalLevel, notAvailable)),
		})
	}
	return embed
}

func overviewButtons(userID string, out *hero.ListTrackedHeroesOutput) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous",
					Style:    discordgo.PrimaryButton,
					CustomID: overviewCustomID(userID, out.Page-1),
					Disabled: out.Page <= 1,
				},
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.PrimaryButton,
					CustomID: overviewCustomID(userID, out.Page+1),
					Disabled: out.Page >= out.TotalPages,
				},
			},
		},
	}
}

func calculationEmbed(out *hero.CalculateRelicsOutput) *discordgo.MessageEmbed {
	p := out.Progress
	n := out.Needs
	value := fmt.Sprintf("**Current Level:** %d\n", p.CurrentLevel) +
		fmt.Sprintf("**Current Relics:** %d\n", p.CurrentRelics) +
		fmt.Sprintf("**Next Unlock Level:** %s\n", n.NextUnlock) +
		fmt.Sprintf("**Relics Needed for Next Unlock:** %s\n", n.RelicsToNextUnlock.Render(entities.NextUnlockPhrasing)) +
		fmt.Sprintf("**Next Goal Level:** %s\n", goalOr(p.NextGoalLevel, entities.PhraseNoNextGoal)) +
		fmt.Sprintf("**Relics Needed for Next Goal:** %s\n", n.RelicsToNextGoal.Render(entities.NextGoalPhrasing)) +
		fmt.Sprintf("**Ultimate Goal Level:** %s\n", goalOr(p.UltimateGoalLevel, entities.PhraseNoUltimateGoal)) +
		fmt.Sprintf("**Relics Needed for Ultimate Goal:** %s\n",
			n.RelicsToUltimateGoal.Render(entities.UltimateGoalPhrasing))

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s Information", p.HeroName),
		Fields: []*discordgo.MessageEmbedField{{Name: zeroWidthSpace, Value: value}},
	}
}

func helpEmbed(commands []*discordgo.ApplicationCommand) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Hela's Hero Planner Bot Commands",
		Description: "Here are the available commands:",
	}
	for _, cmd := range commands {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "/" + cmd.Name,
			Value: cmd.Description,
		})
	}
	return embed
}

// goalOr treats a stored zero goal as unset, matching the relic outcomes
func goalOr(goal *int, unset string) string {
	if !entities.GoalSet(goal) {
		return unset
	}
	return strconv.Itoa(*goal)
}
