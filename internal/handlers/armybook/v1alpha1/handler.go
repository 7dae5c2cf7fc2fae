// Package v1alpha1 handles the armybook.v1alpha1 gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/grpc/metadata"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ArmyBookService armybook.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ArmyBookService == nil {
		return errors.InvalidArgument("army book service is required")
	}
	return nil
}

// Handler implements the army book gRPC service
type Handler struct {
	armybookv1alpha1.UnimplementedArmyBookServiceServer
	armyBookService armybook.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		armyBookService: cfg.ArmyBookService,
	}, nil
}

// GetArmyBook returns a flavored army book
func (h *Handler) GetArmyBook(
	ctx context.Context,
	req *armybookv1alpha1.GetArmyBookRequest,
) (*armybookv1alpha1.GetArmyBookResponse, error) {
	if req.FlavouredUID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("flavoured_uid is required"))
	}

	output, err := h.armyBookService.GetArmyBook(ctx, &armybook.GetArmyBookInput{
		FlavouredUID:       req.FlavouredUID,
		RequesterID:        requesterID(ctx),
		TargetGameSystemID: req.TargetGameSystemID,
		AuthoritativeCosts: req.AuthoritativeCosts,
		OwnedOnly:          req.OwnedOnly,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.GetArmyBookResponse{
		ArmyBook: output.ArmyBook,
		Skipped:  output.Skipped,
	}, nil
}

// RecalculateCosts reprices and saves a book owned by the requester
func (h *Handler) RecalculateCosts(
	ctx context.Context,
	req *armybookv1alpha1.RecalculateCostsRequest,
) (*armybookv1alpha1.RecalculateCostsResponse, error) {
	if req.UID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("uid is required"))
	}
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.RecalculateCosts(ctx, &armybook.RecalculateCostsInput{
		UID:         req.UID,
		RequesterID: requester,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.RecalculateCostsResponse{
		ArmyBook: output.ArmyBook,
		Skipped:  output.Skipped,
	}, nil
}

// GetPdf returns the rendered PDF of a flavor
func (h *Handler) GetPdf(
	ctx context.Context,
	req *armybookv1alpha1.GetPdfRequest,
) (*armybookv1alpha1.GetPdfResponse, error) {
	if req.FlavouredUID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("flavoured_uid is required"))
	}

	output, err := h.armyBookService.GetPdf(ctx, &armybook.GetPdfInput{
		FlavouredUID: req.FlavouredUID,
		RequesterID:  requesterID(ctx),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.GetPdfResponse{
		Pdf:         output.Bytes,
		ContentType: output.ContentType,
		Filename:    output.Filename,
		CacheState:  string(output.CacheState),
	}, nil
}

// ImportArmyBook stores an uploaded book for the requester
func (h *Handler) ImportArmyBook(
	ctx context.Context,
	req *armybookv1alpha1.ImportArmyBookRequest,
) (*armybookv1alpha1.ImportArmyBookResponse, error) {
	if req.ArmyBook == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("army_book is required"))
	}
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.ImportArmyBook(ctx, &armybook.ImportArmyBookInput{
		RequesterID: requester,
		ArmyBook:    req.ArmyBook,
		CostMode:    entities.CostMode(req.CostMode),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.ImportArmyBookResponse{
		ArmyBook: output.ArmyBook,
		Skipped:  output.Skipped,
	}, nil
}

// ListArmyBooks lists the public books of a game system
func (h *Handler) ListArmyBooks(
	ctx context.Context,
	req *armybookv1alpha1.ListArmyBooksRequest,
) (*armybookv1alpha1.ListArmyBooksResponse, error) {
	if req.GameSystemSlug == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("game_system_slug is required"))
	}

	output, err := h.armyBookService.ListArmyBooks(ctx, &armybook.ListArmyBooksInput{
		GameSystemSlug: req.GameSystemSlug,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.ListArmyBooksResponse{ArmyBooks: output.ArmyBooks}, nil
}

// ListMyArmyBooks lists the books of the requester
func (h *Handler) ListMyArmyBooks(
	ctx context.Context,
	_ *armybookv1alpha1.ListMyArmyBooksRequest,
) (*armybookv1alpha1.ListMyArmyBooksResponse, error) {
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.ListMyArmyBooks(ctx, &armybook.ListMyArmyBooksInput{RequesterID: requester})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.ListMyArmyBooksResponse{ArmyBooks: output.ArmyBooks}, nil
}

// CreateDetachment creates a book seeded with units of a parent book
func (h *Handler) CreateDetachment(
	ctx context.Context,
	req *armybookv1alpha1.CreateDetachmentRequest,
) (*armybookv1alpha1.CreateDetachmentResponse, error) {
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.CreateDetachment(ctx, &armybook.CreateDetachmentInput{
		RequesterID:  requester,
		ParentUID:    req.ParentArmyBookUID,
		Name:         req.Name,
		Hint:         req.Hint,
		GameSystemID: req.GameSystemID,
		CloneUnitIDs: req.Clones,
		SyncUnitIDs:  req.Syncs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.CreateDetachmentResponse{ArmyBook: output.ArmyBook}, nil
}

// UpdateArmyBook changes the descriptive fields of a book
func (h *Handler) UpdateArmyBook(
	ctx context.Context,
	req *armybookv1alpha1.UpdateArmyBookRequest,
) (*armybookv1alpha1.UpdateArmyBookResponse, error) {
	if req.UID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("uid is required"))
	}
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.UpdateArmyBook(ctx, &armybook.UpdateArmyBookInput{
		UID:         req.UID,
		RequesterID: requester,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.UpdateArmyBookResponse{ArmyBook: output.ArmyBook}, nil
}

// DeleteArmyBook removes a book owned by the requester
func (h *Handler) DeleteArmyBook(
	ctx context.Context,
	req *armybookv1alpha1.DeleteArmyBookRequest,
) (*armybookv1alpha1.DeleteArmyBookResponse, error) {
	if req.UID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("uid is required"))
	}
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	err := h.armyBookService.DeleteArmyBook(ctx, &armybook.DeleteArmyBookInput{
		UID:         req.UID,
		RequesterID: requester,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.DeleteArmyBookResponse{}, nil
}

// CheckOwnership confirms the requester owns a book
func (h *Handler) CheckOwnership(
	ctx context.Context,
	req *armybookv1alpha1.CheckOwnershipRequest,
) (*armybookv1alpha1.CheckOwnershipResponse, error) {
	if req.UID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("uid is required"))
	}
	requester := requesterID(ctx)
	if requester == "" {
		return nil, errors.ToGRPCError(errUnauthenticated())
	}

	output, err := h.armyBookService.CheckOwnership(ctx, &armybook.CheckOwnershipInput{
		UID:         req.UID,
		RequesterID: requester,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &armybookv1alpha1.CheckOwnershipResponse{ArmyBook: output.ArmyBook}, nil
}

func errUnauthenticated() error {
	return errors.Unauthenticated("x-user-id metadata is required")
}

func requesterID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(armybookv1alpha1.RequesterMetadataKey)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
