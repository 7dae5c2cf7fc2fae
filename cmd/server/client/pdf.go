package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
)

var (
	pdfUID    string
	pdfOutput string
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Download the PDF of an army book flavor",
	Long:  `Fetch the rendered PDF, rendering it first when the cached copy is missing or stale.`,
	RunE:  runPdf,
}

func init() {
	pdfCmd.Flags().StringVar(&pdfUID, "uid", "", "Army book uid, optionally suffixed with -skirmish (required)")
	pdfCmd.Flags().StringVarP(&pdfOutput, "output", "o", "", "Output file (defaults to the server's filename)")
	_ = pdfCmd.MarkFlagRequired("uid") // nolint:errcheck // safe to ignore in init
}

func runPdf(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createArmyBookClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GetPdf(ctx, &armybookv1alpha1.GetPdfRequest{FlavouredUID: pdfUID})
	if err != nil {
		return rpcError("get pdf", err)
	}

	path := pdfOutput
	if path == "" {
		path = resp.Filename
	}
	if err := os.WriteFile(path, resp.Pdf, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("📄 Wrote %s (%d bytes, cache %s)\n", path, len(resp.Pdf), resp.CacheState)
	return nil
}
