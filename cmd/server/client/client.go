// Package client provides test commands for the Army Book gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	userID     string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Army Book API",
	Long:  `Client commands allow you to exercise the Army Book API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&userID, "user", "", "Requesting user id")

	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(calculateCmd)
	ClientCmd.AddCommand(pdfCmd)
	ClientCmd.AddCommand(importCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(mineCmd)
	ClientCmd.AddCommand(detachmentCmd)
}

// createArmyBookClient dials the server and returns a client with a cleanup func
func createArmyBookClient() (armybookv1alpha1.ArmyBookServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // exiting anyway
	}
	return armybookv1alpha1.NewArmyBookServiceClient(conn), cleanup, nil
}

// requestContext applies the timeout and the requester metadata
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if userID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, armybookv1alpha1.RequesterMetadataKey, userID)
	}
	return ctx, cancel
}

// rpcError restores the server's error code and metadata from the status
func rpcError(action string, err error) error {
	return errors.Wrap(errors.FromGRPCError(err), "failed to "+action)
}

func printBook(book *entities.ArmyBook, skipped []entities.SkippedRecord) error {
	if book == nil {
		return fmt.Errorf("server returned no army book")
	}

	fmt.Printf("📖 %s (%s)\n", book.Name, book.FlavouredUID)
	fmt.Printf("Flavor: %s  Revision: %d  Units: %d\n\n", book.Flavor, book.Revision, len(book.Units))
	for _, u := range book.Units {
		fmt.Printf("  - %s [%d] %dpts\n", u.Name, u.Size, u.Cost)
	}

	if len(skipped) > 0 {
		fmt.Printf("\nSkipped:\n")
		for _, s := range skipped {
			fmt.Printf("  - %s %s: %s\n", s.Kind, s.ID, s.Reason)
		}
	}

	if jsonOutput {
		out, err := json.MarshalIndent(book, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode army book: %w", err)
		}
		fmt.Printf("\n%s\n", out)
	}
	return nil
}
