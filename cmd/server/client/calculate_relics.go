package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
)

var calculateRelicsCmd = &cobra.Command{
	Use:   "calculate-relics [user-id] [hero-name]",
	Short: "Calculate and store the relics a tracked hero still needs",
	Args:  cobra.ExactArgs(2),
	RunE:  calculateRelics,
}

func calculateRelics(_ *cobra.Command, args []string) error {
	req, err := structpb.NewStruct(map[string]interface{}{
		v1alpha1.FieldUserID:   args[0],
		v1alpha1.FieldHeroName: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createPlannerClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CalculateRelics(ctx, req)
	if err != nil {
		return callError("calculate relics", err)
	}

	needs := resp.GetFields()["needs"].GetStructValue().GetFields()
	fmt.Printf("\nRelic needs for %s:\n", args[1])
	fmt.Printf("=====================\n")
	fmt.Printf("  Next unlock level:         %s\n", needs["next_unlock"].GetStringValue())
	fmt.Printf("  Relics for next unlock:    %s\n", needs["relics_to_next_unlock"].GetStringValue())
	fmt.Printf("  Relics for next goal:      %s\n", needs["relics_to_next_goal"].GetStringValue())
	fmt.Printf("  Relics for ultimate goal:  %s\n", needs["relics_to_ultimate_goal"].GetStringValue())

	return nil
}
