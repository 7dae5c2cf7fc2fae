package client

import (
	"fmt"

	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
)

var calculateUID string

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Recalculate and save an army book's costs",
	Long:  `Reprice every automatic unit and every upgrade package, then save the book. Requires --user to be the owner.`,
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().StringVar(&calculateUID, "uid", "", "Army book uid (required)")
	calculateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the whole document as JSON")
	_ = calculateCmd.MarkFlagRequired("uid") // nolint:errcheck // safe to ignore in init
}

func runCalculate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.RecalculateCosts(ctx, &armybookv1alpha1.RecalculateCostsRequest{UID: calculateUID})
	if err != nil {
		return rpcError("recalculate costs", err)
	}

	fmt.Printf("✅ Costs saved\n\n")
	return printBook(resp.ArmyBook, resp.Skipped)
}
