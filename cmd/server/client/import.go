package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
)

var (
	importFile     string
	importCostMode string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an army book from a JSON file",
	Long:  `Create a new army book owned by --user from an exported JSON document.`,
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Army book JSON file (required)")
	importCmd.Flags().StringVar(&importCostMode, "cost-mode", "", "Cost mode forced on every unit: automatic or manual")
	importCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the whole document as JSON")
	_ = importCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runImport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	var book entities.ArmyBook
	if err := json.Unmarshal(data, &book); err != nil {
		return fmt.Errorf("failed to parse %s: %w", importFile, err)
	}

	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.ImportArmyBook(ctx, &armybookv1alpha1.ImportArmyBookRequest{
		ArmyBook: &book,
		CostMode: importCostMode,
	})
	if err != nil {
		return rpcError("import army book", err)
	}

	fmt.Printf("✅ Imported as %s\n\n", resp.ArmyBook.UID)
	return printBook(resp.ArmyBook, resp.Skipped)
}
