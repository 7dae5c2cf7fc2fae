// Package armybook sequences the derivation pipeline for army book requests:
// load the canonical document, derive the requested flavor, optionally
// reprice it, and deliver it as JSON or a cached PDF.
package armybook

//go:generate mockgen -destination=mock/mock_service.go -package=armybookmock github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/pkg/idgen"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
	"github.com/KirkDiggler/armybook-api/internal/services/artifact"
	"github.com/KirkDiggler/armybook-api/internal/services/costing"
	"github.com/KirkDiggler/armybook-api/internal/services/skirmish"
)

// Service defines the army book operations exposed to transports
type Service interface {
	GetArmyBook(ctx context.Context, input *GetArmyBookInput) (*GetArmyBookOutput, error)
	RecalculateCosts(ctx context.Context, input *RecalculateCostsInput) (*RecalculateCostsOutput, error)
	GetPdf(ctx context.Context, input *GetPdfInput) (*GetPdfOutput, error)
	ImportArmyBook(ctx context.Context, input *ImportArmyBookInput) (*ImportArmyBookOutput, error)
	ListArmyBooks(ctx context.Context, input *ListArmyBooksInput) (*ListArmyBooksOutput, error)
	ListMyArmyBooks(ctx context.Context, input *ListMyArmyBooksInput) (*ListMyArmyBooksOutput, error)
	CreateDetachment(ctx context.Context, input *CreateDetachmentInput) (*CreateDetachmentOutput, error)
	UpdateArmyBook(ctx context.Context, input *UpdateArmyBookInput) (*UpdateArmyBookOutput, error)
	DeleteArmyBook(ctx context.Context, input *DeleteArmyBookInput) error
	CheckOwnership(ctx context.Context, input *CheckOwnershipInput) (*CheckOwnershipOutput, error)
}

// Config holds the dependencies for the army book orchestrator
type Config struct {
	Repository armybookrepo.Repository
	Costing    costing.Service
	Skirmish   skirmish.Service
	Artifacts  artifact.Service
	// BookIDGenerator names imported books
	BookIDGenerator idgen.Generator
	// EquipmentIDGenerator names exploded equipment on import
	EquipmentIDGenerator idgen.Generator
	// UnitIDGenerator names units cloned into a detachment. Defaults to
	// EquipmentIDGenerator.
	UnitIDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Costing == nil {
		vb.RequiredField("Costing")
	}
	if c.Skirmish == nil {
		vb.RequiredField("Skirmish")
	}
	if c.Artifacts == nil {
		vb.RequiredField("Artifacts")
	}
	if c.BookIDGenerator == nil {
		vb.RequiredField("BookIDGenerator")
	}
	if c.EquipmentIDGenerator == nil {
		vb.RequiredField("EquipmentIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	repo         armybookrepo.Repository
	costing      costing.Service
	skirmish     skirmish.Service
	artifacts    artifact.Service
	bookIDs      idgen.Generator
	equipmentIDs idgen.Generator
	unitIDs      idgen.Generator
}

// NewOrchestrator creates a new army book orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	unitIDs := cfg.UnitIDGenerator
	if unitIDs == nil {
		unitIDs = cfg.EquipmentIDGenerator
	}

	return &orchestrator{
		repo:         cfg.Repository,
		costing:      cfg.Costing,
		skirmish:     cfg.Skirmish,
		artifacts:    cfg.Artifacts,
		bookIDs:      cfg.BookIDGenerator,
		equipmentIDs: cfg.EquipmentIDGenerator,
		unitIDs:      unitIDs,
	}, nil
}

func (o *orchestrator) GetArmyBook(ctx context.Context, input *GetArmyBookInput) (*GetArmyBookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("flavoured_uid", input.FlavouredUID, vb)
	if input.TargetGameSystemID < 0 {
		vb.Field("target_game_system_id", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	uid, flavor := entities.ParseFlavouredUID(input.FlavouredUID)
	if input.TargetGameSystemID != 0 {
		flavor = entities.FlavorSkirmish
	}

	book, err := o.load(ctx, uid, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if input.OwnedOnly && !book.OwnedBy(input.RequesterID) {
		return nil, errors.NotFoundf("army book %s not found or owned by another user", uid).
			WithMeta("army_book_uid", uid)
	}

	out := &GetArmyBookOutput{}

	if flavor == entities.FlavorSkirmish {
		target, err := skirmishTarget(book, input.TargetGameSystemID)
		if err != nil {
			return nil, err
		}

		derived, err := o.skirmish.DeriveSkirmishFlavor(ctx, &skirmish.DeriveSkirmishFlavorInput{
			ArmyBook:           book,
			TargetGameSystemID: target,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive skirmish flavor of %s", uid)
		}
		book = derived.ArmyBook
		out.Skipped = append(out.Skipped, derived.Skipped...)
	} else {
		book.Flavor = entities.FlavorFull
		book.FlavouredUID = uid
		book.Aberration = fullAberration(book)
	}

	if input.AuthoritativeCosts {
		costs, err := o.costing.RecalculateCosts(ctx, &costing.RecalculateCostsInput{ArmyBook: book})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to recalculate costs of %s", uid)
		}
		book.Units = costs.Units
		book.UpgradePackages = costs.UpgradePackages
		out.Skipped = append(out.Skipped, costs.Skipped...)
	}

	if len(out.Skipped) > 0 {
		slog.WarnContext(ctx, "served army book with skipped records",
			"flavoured_uid", book.FlavouredUID,
			"skipped", len(out.Skipped))
	}

	out.ArmyBook = book
	return out, nil
}

func (o *orchestrator) RecalculateCosts(ctx context.Context, input *RecalculateCostsInput) (*RecalculateCostsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("uid", input.UID, vb)
	errors.ValidateRequired("requester_id", input.RequesterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if _, flavor := entities.ParseFlavouredUID(input.UID); flavor != entities.FlavorFull {
		return nil, errors.InvalidArgumentf("derived flavor %s cannot be saved", input.UID)
	}

	book, err := o.load(ctx, input.UID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if !book.OwnedBy(input.RequesterID) {
		return nil, errors.PermissionDeniedf("army book %s is owned by another user", input.UID).
			WithMeta("army_book_uid", input.UID)
	}

	costs, err := o.costing.RecalculateCosts(ctx, &costing.RecalculateCostsInput{ArmyBook: book})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to recalculate costs of %s", input.UID)
	}

	saved, err := o.repo.SaveCosts(ctx, armybookrepo.SaveCostsInput{
		UID:             input.UID,
		RequesterID:     input.RequesterID,
		Units:           costs.Units,
		UpgradePackages: costs.UpgradePackages,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save costs of %s", input.UID)
	}

	slog.InfoContext(ctx, "recalculated army book costs",
		"army_book_uid", input.UID,
		"revision", saved.ArmyBook.Revision,
		"skipped", len(costs.Skipped))

	return &RecalculateCostsOutput{
		ArmyBook: saved.ArmyBook,
		Skipped:  costs.Skipped,
	}, nil
}

func (o *orchestrator) GetPdf(ctx context.Context, input *GetPdfInput) (*GetPdfOutput, error) {
	if input == nil || input.FlavouredUID == "" {
		return nil, errors.InvalidArgument("flavoured uid is required")
	}

	uid, flavor := entities.ParseFlavouredUID(input.FlavouredUID)
	book, err := o.load(ctx, uid, input.RequesterID)
	if err != nil {
		return nil, err
	}

	aberration := fullAberration(book)
	if flavor == entities.FlavorSkirmish {
		target, err := skirmishTarget(book, 0)
		if err != nil {
			return nil, err
		}
		gs, _ := entities.LookupGameSystem(target)
		aberration = gs.Aberration
	}

	pdf, err := o.artifacts.GetOrRender(ctx, &artifact.GetOrRenderInput{
		ArmyBook:   book,
		Flavor:     flavor,
		Aberration: aberration,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pdf of %s", input.FlavouredUID)
	}

	return &GetPdfOutput{
		Bytes:       pdf.Bytes,
		ContentType: pdf.ContentType,
		Filename:    pdf.Filename,
		CacheState:  pdf.State,
	}, nil
}

func (o *orchestrator) ImportArmyBook(ctx context.Context, input *ImportArmyBookInput) (*ImportArmyBookOutput, error) {
	if input == nil || input.ArmyBook == nil {
		return nil, errors.InvalidArgument("army book is required")
	}
	mode := input.CostMode
	if mode == "" {
		mode = entities.CostModeManual
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("requester_id", input.RequesterID, vb)
	errors.ValidateRequired("name", input.ArmyBook.Name, vb)
	errors.ValidateEnum("cost_mode", string(mode),
		[]string{string(entities.CostModeAutomatic), string(entities.CostModeManual)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	book := input.ArmyBook.Clone()
	book.UID = o.bookIDs.Generate()
	book.UserID = input.RequesterID
	book.Official = false
	book.Public = false
	book.Flavor = ""
	book.FlavouredUID = ""
	book.Autogenerated = false
	book.Aberration = ""

	var skipped []entities.SkippedRecord
	for _, u := range book.Units {
		if u == nil {
			continue
		}
		u.CostMode = mode
		u.Equipment = entities.ExplodeEquipment(u.Equipment, o.equipmentIDs)
		if err := u.Validate(); err != nil {
			skipped = append(skipped, entities.SkippedUnit(u, err))
		}
	}
	book.FillDefaults()

	created, err := o.repo.Create(ctx, armybookrepo.CreateInput{ArmyBook: book})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store imported army book")
	}

	slog.InfoContext(ctx, "imported army book",
		"army_book_uid", created.ArmyBook.UID,
		"user_id", input.RequesterID,
		"units", len(created.ArmyBook.Units),
		"cost_mode", string(mode))

	return &ImportArmyBookOutput{
		ArmyBook: created.ArmyBook,
		Skipped:  skipped,
	}, nil
}

func (o *orchestrator) load(ctx context.Context, uid, requesterID string) (*entities.ArmyBook, error) {
	got, err := o.repo.Get(ctx, armybookrepo.GetInput{UID: uid, RequesterID: requesterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load army book %s", uid)
	}
	book := got.ArmyBook
	book.FillDefaults()
	return book, nil
}

// skirmishTarget resolves the system a skirmish flavor is derived for
func skirmishTarget(book *entities.ArmyBook, explicit int) (int, error) {
	if explicit != 0 {
		return explicit, nil
	}
	gs, ok := entities.FirstSkirmishTarget(book.EnabledGameSystems)
	if !ok {
		return 0, errors.FailedPreconditionf("army book %s has no game system with a skirmish counterpart", book.UID).
			WithMeta("enabled_game_systems", book.EnabledGameSystems)
	}
	return gs.ID, nil
}

func fullAberration(book *entities.ArmyBook) string {
	for _, id := range book.EnabledGameSystems {
		if gs, ok := entities.LookupGameSystem(id); ok {
			return gs.Aberration
		}
	}
	return ""
}
