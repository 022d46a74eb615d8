package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
)

// manageHeroFlags maps each update flag to its request field
var manageHeroFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"current-level", v1alpha1.FieldCurrentLevel, "Current level"},
	{"current-relics", v1alpha1.FieldCurrentRelics, "Relics on hand"},
	{"next-goal-level", v1alpha1.FieldNextGoalLevel, "Next goal level"},
	{"ultimate-goal-level", v1alpha1.FieldUltimateGoalLevel, "Ultimate goal level"},
}

var manageHeroCmd = &cobra.Command{
	Use:   "manage-hero [user-id] [hero-name]",
	Short: "Update the level, relics or goals of a tracked hero",
	Long: `Apply a partial update to a tracked hero. Only the flags you pass are changed.

  manage-hero 123456789012345678 Hela --current-level 15 --next-goal-level 20`,
	Args: cobra.ExactArgs(2),
	RunE: manageHero,
}

func init() {
	addManageHeroFlags(manageHeroCmd.Flags())
}

func addManageHeroFlags(fs *pflag.FlagSet) {
	for _, f := range manageHeroFlags {
		fs.Int(f.flag, 0, f.usage)
	}
}

// manageHeroRequest sends only the update flags that were set on the
// command line, so an explicit 0 differs from an omitted flag.
func manageHeroRequest(fs *pflag.FlagSet, userID, heroName string) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		v1alpha1.FieldUserID:   userID,
		v1alpha1.FieldHeroName: heroName,
	}
	for _, f := range manageHeroFlags {
		if !fs.Changed(f.flag) {
			continue
		}
		value, err := fs.GetInt(f.flag)
		if err != nil {
			return nil, fmt.Errorf("failed to read --%s: %w", f.flag, err)
		}
		fields[f.field] = value
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return req, nil
}

func manageHero(cmd *cobra.Command, args []string) error {
	req, err := manageHeroRequest(cmd.Flags(), args[0], args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ManageHero(ctx, req)
	if err != nil {
		return callError("manage hero", err)
	}

	fmt.Println(resp.GetFields()["summary"].GetStringValue())
	return printStruct(resp)
}
