package client

import (
	"fmt"

	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
)

var (
	detachmentParent     string
	detachmentName       string
	detachmentHint       string
	detachmentGameSystem int
	detachmentClones     []string
	detachmentSyncs      []string
)

var detachmentCmd = &cobra.Command{
	Use:   "detachment",
	Short: "Create a detachment from units of a parent army book",
	Long: `Create a new army book owned by --user holding copies of the chosen parent
units, the upgrade packages they use and the parent's special rules.`,
	RunE: runDetachment,
}

func init() {
	detachmentCmd.Flags().StringVarP(&detachmentParent, "parent", "p", "", "Parent army book uid (required)")
	detachmentCmd.Flags().StringVarP(&detachmentName, "name", "n", "", "Name of the detachment (required)")
	detachmentCmd.Flags().StringVar(&detachmentHint, "hint", "", "Short description")
	detachmentCmd.Flags().IntVar(&detachmentGameSystem, "game-system-id", 0, "Game system of the detachment, defaults to the parent's")
	detachmentCmd.Flags().StringSliceVar(&detachmentClones, "clone", nil, "Parent unit ids to copy")
	detachmentCmd.Flags().StringSliceVar(&detachmentSyncs, "sync", nil, "Copied unit ids that follow parent changes")
	detachmentCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the whole document as JSON")
	_ = detachmentCmd.MarkFlagRequired("parent") // nolint:errcheck // safe to ignore in init
	_ = detachmentCmd.MarkFlagRequired("name")   // nolint:errcheck // safe to ignore in init
}

func runDetachment(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.CreateDetachment(ctx, &armybookv1alpha1.CreateDetachmentRequest{
		ParentArmyBookUID: detachmentParent,
		Name:              detachmentName,
		Hint:              detachmentHint,
		GameSystemID:      detachmentGameSystem,
		Clones:            detachmentClones,
		Syncs:             detachmentSyncs,
	})
	if err != nil {
		return rpcError("create detachment", err)
	}

	fmt.Printf("✅ Created detachment %s\n\n", resp.ArmyBook.UID)
	return printBook(resp.ArmyBook, nil)
}
