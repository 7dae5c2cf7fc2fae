// Package main is the entry point for the army book server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/armybook-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "armybook-api",
	Short: "Army Book API server",
	Long:  `Army Book API derives skirmish flavors, recalculates point costs, and serves cached PDFs over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
