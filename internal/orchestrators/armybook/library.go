package armybook

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
)

func (o *orchestrator) ListArmyBooks(ctx context.Context, input *ListArmyBooksInput) (*ListArmyBooksOutput, error) {
	if input == nil || input.GameSystemSlug == "" {
		return nil, errors.InvalidArgument("game system slug is required")
	}
	gs, ok := entities.LookupGameSystemBySlug(input.GameSystemSlug)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown game system %q", input.GameSystemSlug).
			WithMeta("game_system_slug", input.GameSystemSlug)
	}

	public, err := o.repo.ListPublic(ctx, armybookrepo.ListPublicInput{GameSystemID: gs.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list army books of %s", gs.Slug)
	}
	out := summaries(public.ArmyBooks)

	if gs.IsSkirmish() {
		parent, err := o.repo.ListPublic(ctx, armybookrepo.ListPublicInput{GameSystemID: gs.SkirmishOf})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list skirmish candidates of %s", gs.Slug)
		}
		for _, book := range parent.ArmyBooks {
			// books already enabled for the skirmish system are listed as is
			if slices.Contains(book.EnabledGameSystems, gs.ID) {
				continue
			}
			summary := book.Summary()
			summary.UID = entities.FlavouredUID(book.UID, entities.FlavorSkirmish)
			summary.EnabledGameSystems = []int{gs.ID}
			summary.Flavor = entities.FlavorSkirmish
			summary.Aberration = gs.Aberration
			out = append(out, summary)
		}
	}

	return &ListArmyBooksOutput{ArmyBooks: out}, nil
}

func (o *orchestrator) ListMyArmyBooks(ctx context.Context, input *ListMyArmyBooksInput) (*ListMyArmyBooksOutput, error) {
	if input == nil || input.RequesterID == "" {
		return nil, errors.InvalidArgument("requester id is required")
	}

	mine, err := o.repo.ListByOwner(ctx, armybookrepo.ListByOwnerInput{UserID: input.RequesterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list army books of requester")
	}

	return &ListMyArmyBooksOutput{ArmyBooks: summaries(mine.ArmyBooks)}, nil
}

func (o *orchestrator) CreateDetachment(ctx context.Context, input *CreateDetachmentInput) (*CreateDetachmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("requester_id", input.RequesterID, vb)
	errors.ValidateRequired("parent_army_book_id", input.ParentUID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.GameSystemID != 0 {
		if _, ok := entities.LookupGameSystem(input.GameSystemID); !ok {
			vb.Field("game_system_id", "unknown game system")
		}
	}
	for _, id := range input.SyncUnitIDs {
		if !slices.Contains(input.CloneUnitIDs, id) {
			vb.Field("syncs", "unit "+id+" is synced but not cloned")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}
	if _, flavor := entities.ParseFlavouredUID(input.ParentUID); flavor != entities.FlavorFull {
		return nil, errors.InvalidArgumentf("derived flavor %s cannot be a detachment parent", input.ParentUID)
	}

	parent, err := o.load(ctx, input.ParentUID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	units, err := o.cloneUnits(parent, input.CloneUnitIDs, input.SyncUnitIDs)
	if err != nil {
		return nil, err
	}

	systems := slices.Clone(parent.EnabledGameSystems)
	if input.GameSystemID != 0 {
		systems = []int{input.GameSystemID}
	}

	created, err := o.repo.Create(ctx, armybookrepo.CreateInput{ArmyBook: &entities.ArmyBook{
		UID:                o.bookIDs.Generate(),
		UserID:             input.RequesterID,
		EnabledGameSystems: systems,
		Name:               input.Name,
		Hint:               input.Hint,
		VersionString:      parent.VersionString,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create detachment")
	}
	uid := created.ArmyBook.UID

	book, err := o.fillDetachment(ctx, uid, input.RequesterID, parent, units)
	if err != nil {
		if delErr := o.repo.Delete(ctx, armybookrepo.DeleteInput{UID: uid, RequesterID: input.RequesterID}); delErr != nil {
			slog.ErrorContext(ctx, "failed to remove incomplete detachment",
				"army_book_uid", uid,
				"error", delErr)
		}
		return nil, errors.Wrapf(err, "failed to fill detachment %s", uid)
	}

	slog.InfoContext(ctx, "created detachment",
		"army_book_uid", uid,
		"parent_army_book_uid", parent.UID,
		"user_id", input.RequesterID,
		"units", len(book.Units))

	return &CreateDetachmentOutput{ArmyBook: book}, nil
}

// cloneUnits copies the selected parent units under fresh ids, linking each
// copy back to its origin
func (o *orchestrator) cloneUnits(parent *entities.ArmyBook, cloneIDs, syncIDs []string) ([]*entities.Unit, error) {
	units := make([]*entities.Unit, 0, len(cloneIDs))
	var missing []string
	for _, id := range cloneIDs {
		idx := slices.IndexFunc(parent.Units, func(u *entities.Unit) bool { return u != nil && u.ID == id })
		if idx < 0 {
			missing = append(missing, id)
			continue
		}
		u := parent.Units[idx].Clone()
		u.ID = o.unitIDs.Generate()
		u.ClonedFrom = &entities.UnitLink{ParentArmyBookUID: parent.UID, UnitID: id}
		u.SyncedFrom = nil
		if slices.Contains(syncIDs, id) {
			u.SyncedFrom = &entities.UnitLink{ParentArmyBookUID: parent.UID, UnitID: id, SyncAutomatic: true}
		}
		units = append(units, u)
	}
	if len(missing) > 0 {
		return nil, errors.InvalidArgumentf("army book %s has no units %v", parent.UID, missing).
			WithMeta("unit_ids", missing)
	}
	return units, nil
}

// fillDetachment saves the cloned content into the new book stage by stage
func (o *orchestrator) fillDetachment(ctx context.Context, uid, requesterID string, parent *entities.ArmyBook, units []*entities.Unit) (*entities.ArmyBook, error) {
	if _, err := o.repo.SaveUnits(ctx, armybookrepo.SaveUnitsInput{
		UID:         uid,
		RequesterID: requesterID,
		Units:       units,
	}); err != nil {
		return nil, err
	}

	if _, err := o.repo.SaveUpgradePackages(ctx, armybookrepo.SaveUpgradePackagesInput{
		UID:             uid,
		RequesterID:     requesterID,
		UpgradePackages: entities.PackagesReferencedBy(parent.UpgradePackages, units),
	}); err != nil {
		return nil, err
	}

	// TODO: copy only the special rules the cloned units reference
	saved, err := o.repo.SaveSpecialRules(ctx, armybookrepo.SaveSpecialRulesInput{
		UID:          uid,
		RequesterID:  requesterID,
		SpecialRules: parent.SpecialRules,
	})
	if err != nil {
		return nil, err
	}

	return saved.ArmyBook, nil
}

func (o *orchestrator) UpdateArmyBook(ctx context.Context, input *UpdateArmyBookInput) (*UpdateArmyBookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateOwnedUID(input.UID, input.RequesterID); err != nil {
		return nil, err
	}

	saved, err := o.repo.UpdateMetadata(ctx, armybookrepo.UpdateMetadataInput{
		UID:         input.UID,
		RequesterID: input.RequesterID,
		Metadata:    input.Metadata,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update army book %s", input.UID)
	}

	slog.InfoContext(ctx, "updated army book",
		"army_book_uid", input.UID,
		"revision", saved.ArmyBook.Revision)

	return &UpdateArmyBookOutput{ArmyBook: saved.ArmyBook}, nil
}

func (o *orchestrator) DeleteArmyBook(ctx context.Context, input *DeleteArmyBookInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if err := validateOwnedUID(input.UID, input.RequesterID); err != nil {
		return err
	}

	if err := o.repo.Delete(ctx, armybookrepo.DeleteInput{UID: input.UID, RequesterID: input.RequesterID}); err != nil {
		return errors.Wrapf(err, "failed to delete army book %s", input.UID)
	}

	slog.InfoContext(ctx, "deleted army book",
		"army_book_uid", input.UID,
		"user_id", input.RequesterID)

	return nil
}

func (o *orchestrator) CheckOwnership(ctx context.Context, input *CheckOwnershipInput) (*CheckOwnershipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("uid", input.UID, vb)
	errors.ValidateRequired("requester_id", input.RequesterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	book, err := o.load(ctx, input.UID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if !book.OwnedBy(input.RequesterID) {
		return nil, errors.PermissionDeniedf("army book %s is owned by another user", input.UID).
			WithMeta("army_book_uid", input.UID)
	}

	return &CheckOwnershipOutput{ArmyBook: book.Summary()}, nil
}

// validateOwnedUID checks the key of a write to a stored book
func validateOwnedUID(uid, requesterID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("uid", uid, vb)
	errors.ValidateRequired("requester_id", requesterID, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	if _, flavor := entities.ParseFlavouredUID(uid); flavor != entities.FlavorFull {
		return errors.InvalidArgumentf("derived flavor %s cannot be modified", uid)
	}
	return nil
}

func summaries(books []*entities.ArmyBook) []*entities.ArmyBookSummary {
	out := make([]*entities.ArmyBookSummary, 0, len(books))
	for _, book := range books {
		out = append(out, book.Summary())
	}
	return out
}
