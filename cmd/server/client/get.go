package client

import (
	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
)

var (
	flavouredUID       string
	targetGameSystemID int
	authoritative      bool
	jsonOutput         bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get an army book flavor",
	Long:  `Retrieve the full or skirmish flavor of an army book. Append -skirmish to the uid for the derived flavor.`,
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&flavouredUID, "uid", "", "Army book uid, optionally suffixed with -skirmish (required)")
	getCmd.Flags().IntVar(&targetGameSystemID, "target", 0, "Skirmish game system id")
	getCmd.Flags().BoolVar(&authoritative, "authoritative", false, "Reprice the result with the point-cost service")
	getCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the whole document as JSON")
	_ = getCmd.MarkFlagRequired("uid") // nolint:errcheck // safe to ignore in init
}

func runGet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetArmyBook(ctx, &armybookv1alpha1.GetArmyBookRequest{
		FlavouredUID:       flavouredUID,
		TargetGameSystemID: targetGameSystemID,
		AuthoritativeCosts: authoritative,
	})
	if err != nil {
		return rpcError("get army book", err)
	}

	return printBook(resp.ArmyBook, resp.Skipped)
}
