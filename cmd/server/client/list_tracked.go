package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
)

var (
	page     int
	pageSize int
)

var listTrackedCmd = &cobra.Command{
	Use:   "list-tracked [user-id]",
	Short: "List the heroes a user is tracking",
	Args:  cobra.ExactArgs(1),
	RunE:  listTracked,
}

func init() {
	listTrackedCmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	listTrackedCmd.Flags().IntVar(&pageSize, "page-size", 10, "Heroes per page")
}

func listTracked(_ *cobra.Command, args []string) error {
	req, err := structpb.NewStruct(map[string]interface{}{
		v1alpha1.FieldUserID:   args[0],
		v1alpha1.FieldPage:     page,
		v1alpha1.FieldPageSize: pageSize,
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

	resp, err := client.ListTrackedHeroes(ctx, req)
	if err != nil {
		return callError("list tracked heroes", err)
	}

	fields := resp.GetFields()
	fmt.Printf("Page %.0f of %.0f (%.0f heroes)\n",
		fields["page"].GetNumberValue(),
		fields["total_pages"].GetNumberValue(),
		fields["total"].GetNumberValue())

	for _, v := range fields["heroes"].GetListValue().GetValues() {
		h := v.GetStructValue().GetFields()
		fmt.Printf("\n%s\n", h[v1alpha1.FieldHeroName].GetStringValue())
		fmt.Printf("  Current level:       %.0f\n", h[v1alpha1.FieldCurrentLevel].GetNumberValue())
		fmt.Printf("  Current relics:      %.0f\n", h[v1alpha1.FieldCurrentRelics].GetNumberValue())
		fmt.Printf("  Next goal level:     %s\n", goalText(h[v1alpha1.FieldNextGoalLevel]))
		fmt.Printf("  Ultimate goal level: %s\n", goalText(h[v1alpha1.FieldUltimateGoalLevel]))
	}

	return nil
}

func goalText(v *structpb.Value) string {
	if _, ok := v.GetKind().(*structpb.Value_NumberValue); !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.0f", v.GetNumberValue())
}
