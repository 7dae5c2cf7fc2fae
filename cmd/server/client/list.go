package client

import (
	"fmt"

	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
)

var listGameSystem string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the public army books of a game system",
	Long: `List the public army books of a game system. Skirmish systems also list
the derived skirmish flavor of every public book of their full-scale system.`,
	RunE: runList,
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List the army books owned by --user",
	RunE:  runMine,
}

func init() {
	listCmd.Flags().StringVarP(&listGameSystem, "game-system", "g", "grimdark-future", "Game system slug")
}

func runList(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListArmyBooks(ctx, &armybookv1alpha1.ListArmyBooksRequest{GameSystemSlug: listGameSystem})
	if err != nil {
		return rpcError("list army books", err)
	}

	fmt.Printf("📚 %d army books for %s\n\n", len(resp.ArmyBooks), listGameSystem)
	printSummaries(resp.ArmyBooks)
	return nil
}

func runMine(_ *cobra.Command, _ []string) error {
	if userID == "" {
		return fmt.Errorf("--user is required")
	}

	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ListMyArmyBooks(ctx, &armybookv1alpha1.ListMyArmyBooksRequest{})
	if err != nil {
		return rpcError("list own army books", err)
	}

	fmt.Printf("📚 %d army books owned by %s\n\n", len(resp.ArmyBooks), userID)
	printSummaries(resp.ArmyBooks)
	return nil
}

func printSummaries(books []*entities.ArmyBookSummary) {
	for _, b := range books {
		visibility := "private"
		if b.Public {
			visibility = "public"
		}
		fmt.Printf("  - %s (%s) %s, %d units, rev %d\n", b.Name, b.UID, visibility, b.UnitCount, b.Revision)
	}
}
