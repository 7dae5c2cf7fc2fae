package armybook_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
	"github.com/KirkDiggler/armybook-api/internal/testutils"
	"github.com/KirkDiggler/armybook-api/internal/testutils/builders"
	"github.com/KirkDiggler/armybook-api/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestListArmyBooksFullSystem() {
	books := []*entities.ArmyBook{
		builders.NewArmyBookBuilder().WithUID("a").WithName("Automatons").WithPublic(true).Build(),
		builders.NewArmyBookBuilder().WithUID("z").WithName("Zealots").WithPublic(true).Build(),
	}
	s.repo.EXPECT().
		ListPublic(s.ctx, armybookrepo.ListPublicInput{GameSystemID: entities.GameSystemGrimdarkFuture}).
		Return(&armybookrepo.ListOutput{ArmyBooks: books}, nil)

	out, err := s.orchestrator.ListArmyBooks(s.ctx, &armybook.ListArmyBooksInput{GameSystemSlug: "grimdark-future"})
	s.Require().NoError(err)
	s.Require().Len(out.ArmyBooks, 2)
	s.Equal("a", out.ArmyBooks[0].UID)
	s.Equal(entities.FlavorFull, out.ArmyBooks[0].Flavor)
}

func (s *OrchestratorTestSuite) TestListArmyBooksSkirmishAddsDerivedEntries() {
	dual := builders.NewArmyBookBuilder().WithUID("dual").WithName("Dual").WithPublic(true).
		WithGameSystems(entities.GameSystemGrimdarkFuture, entities.GameSystemGrimdarkFutureFirefight).Build()

	gomock.InOrder(
		s.repo.EXPECT().
			ListPublic(s.ctx, armybookrepo.ListPublicInput{GameSystemID: entities.GameSystemGrimdarkFutureFirefight}).
			Return(&armybookrepo.ListOutput{ArmyBooks: []*entities.ArmyBook{dual}}, nil),
		s.repo.EXPECT().
			ListPublic(s.ctx, armybookrepo.ListPublicInput{GameSystemID: entities.GameSystemGrimdarkFuture}).
			Return(&armybookrepo.ListOutput{ArmyBooks: []*entities.ArmyBook{dual, s.book}}, nil),
	)

	out, err := s.orchestrator.ListArmyBooks(s.ctx, &armybook.ListArmyBooksInput{GameSystemSlug: "grimdark-future-firefight"})
	s.Require().NoError(err)
	s.Require().Len(out.ArmyBooks, 2, "books enabled for both systems are listed once")

	s.Equal("dual", out.ArmyBooks[0].UID)
	s.Equal(entities.FlavorFull, out.ArmyBooks[0].Flavor)

	derived := out.ArmyBooks[1]
	s.Equal(testutils.TestArmyBookUID+"-skirmish", derived.UID)
	s.Equal(entities.FlavorSkirmish, derived.Flavor)
	s.Equal("GFF", derived.Aberration)
	s.Equal([]int{entities.GameSystemGrimdarkFutureFirefight}, derived.EnabledGameSystems)
	s.Equal(s.book.Name, derived.Name)
}

func (s *OrchestratorTestSuite) TestListArmyBooksUnknownSystem() {
	_, err := s.orchestrator.ListArmyBooks(s.ctx, &armybook.ListArmyBooksInput{GameSystemSlug: "chess"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListArmyBooks(s.ctx, &armybook.ListArmyBooksInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListMyArmyBooks() {
	s.repo.EXPECT().
		ListByOwner(s.ctx, armybookrepo.ListByOwnerInput{UserID: testutils.TestOwnerID}).
		Return(&armybookrepo.ListOutput{ArmyBooks: []*entities.ArmyBook{s.book}}, nil)

	out, err := s.orchestrator.ListMyArmyBooks(s.ctx, &armybook.ListMyArmyBooksInput{RequesterID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Require().Len(out.ArmyBooks, 1)
	s.Equal(4, out.ArmyBooks[0].UnitCount)

	_, err = s.orchestrator.ListMyArmyBooks(s.ctx, &armybook.ListMyArmyBooksInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateDetachment() {
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, s.book, testutils.TestOwnerID)

	stored := &entities.ArmyBook{}
	gomock.InOrder(
		s.repo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input armybookrepo.CreateInput) (*armybookrepo.CreateOutput, error) {
				s.Equal("book_1", input.ArmyBook.UID)
				s.Equal(testutils.TestOwnerID, input.ArmyBook.UserID)
				s.Equal([]int{entities.GameSystemAgeOfFantasy}, input.ArmyBook.EnabledGameSystems)
				s.False(input.ArmyBook.Public)
				*stored = *input.ArmyBook
				return &armybookrepo.CreateOutput{ArmyBook: input.ArmyBook}, nil
			}),
		s.repo.EXPECT().
			SaveUnits(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input armybookrepo.SaveUnitsInput) (*armybookrepo.SaveOutput, error) {
				s.Equal("book_1", input.UID)
				stored.Units = input.Units
				return &armybookrepo.SaveOutput{ArmyBook: stored}, nil
			}),
		s.repo.EXPECT().
			SaveUpgradePackages(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input armybookrepo.SaveUpgradePackagesInput) (*armybookrepo.SaveOutput, error) {
				stored.UpgradePackages = input.UpgradePackages
				return &armybookrepo.SaveOutput{ArmyBook: stored}, nil
			}),
		s.repo.EXPECT().
			SaveSpecialRules(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input armybookrepo.SaveSpecialRulesInput) (*armybookrepo.SaveOutput, error) {
				stored.SpecialRules = input.SpecialRules
				return &armybookrepo.SaveOutput{ArmyBook: stored}, nil
			}),
	)

	out, err := s.orchestrator.CreateDetachment(s.ctx, &armybook.CreateDetachmentInput{
		RequesterID:  testutils.TestOwnerID,
		ParentUID:    testutils.TestArmyBookUID,
		Name:         "Boss Retinue",
		GameSystemID: entities.GameSystemAgeOfFantasy,
		CloneUnitIDs: []string{"boss", "grunts"},
		SyncUnitIDs:  []string{"grunts"},
	})
	s.Require().NoError(err)

	book := out.ArmyBook
	s.Require().Len(book.Units, 2)

	boss := book.Units[0]
	s.Equal("eq_1", boss.ID)
	s.Equal("Chieftain Mob", boss.Name)
	s.Equal(&entities.UnitLink{ParentArmyBookUID: testutils.TestArmyBookUID, UnitID: "boss"}, boss.ClonedFrom)
	s.Nil(boss.SyncedFrom)

	grunts := book.Units[1]
	s.Equal("eq_2", grunts.ID)
	s.Require().NotNil(grunts.SyncedFrom)
	s.True(grunts.SyncedFrom.SyncAutomatic)

	s.Require().Len(book.UpgradePackages, 2)
	s.Equal("pkg-grunts", book.UpgradePackages[0].UID)
	s.Equal("pkg-boss", book.UpgradePackages[1].UID)
	s.Len(book.SpecialRules, 2)
}

func (s *OrchestratorTestSuite) TestCreateDetachmentRemovesBookWhenFillFails() {
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, s.book, testutils.TestOwnerID)

	s.repo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input armybookrepo.CreateInput) (*armybookrepo.CreateOutput, error) {
			return &armybookrepo.CreateOutput{ArmyBook: input.ArmyBook}, nil
		})
	s.repo.EXPECT().
		SaveUnits(s.ctx, gomock.Any()).
		Return(nil, errors.Abortedf("army book book_1 was modified concurrently"))
	s.repo.EXPECT().
		Delete(s.ctx, armybookrepo.DeleteInput{UID: "book_1", RequesterID: testutils.TestOwnerID}).
		Return(nil)

	_, err := s.orchestrator.CreateDetachment(s.ctx, &armybook.CreateDetachmentInput{
		RequesterID:  testutils.TestOwnerID,
		ParentUID:    testutils.TestArmyBookUID,
		Name:         "Boss Retinue",
		CloneUnitIDs: []string{"boss"},
	})
	s.Require().Error(err)
	s.Equal(errors.CodeAborted, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestCreateDetachmentValidation() {
	testCases := []struct {
		name  string
		input *armybook.CreateDetachmentInput
		field string
	}{
		{
			name:  "missing name",
			input: &armybook.CreateDetachmentInput{RequesterID: "u", ParentUID: "p"},
			field: "name",
		},
		{
			name:  "unknown game system",
			input: &armybook.CreateDetachmentInput{RequesterID: "u", ParentUID: "p", Name: "n", GameSystemID: 42},
			field: "game_system_id",
		},
		{
			name: "sync without clone",
			input: &armybook.CreateDetachmentInput{
				RequesterID: "u", ParentUID: "p", Name: "n",
				CloneUnitIDs: []string{"a"}, SyncUnitIDs: []string{"b"},
			},
			field: "syncs",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateDetachment(s.ctx, tc.input)
			s.Require().Error(err)
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateDetachmentUnknownUnit() {
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, s.book, testutils.TestOwnerID)

	_, err := s.orchestrator.CreateDetachment(s.ctx, &armybook.CreateDetachmentInput{
		RequesterID:  testutils.TestOwnerID,
		ParentUID:    testutils.TestArmyBookUID,
		Name:         "Ghosts",
		CloneUnitIDs: []string{"boss", "ghost"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal([]string{"ghost"}, errors.GetMeta(err)["unit_ids"])
}

func (s *OrchestratorTestSuite) TestUpdateArmyBook() {
	name := "Renamed"
	saved := s.book.Clone()
	saved.Name = name
	s.repo.EXPECT().
		UpdateMetadata(s.ctx, armybookrepo.UpdateMetadataInput{
			UID:         testutils.TestArmyBookUID,
			RequesterID: testutils.TestOwnerID,
			Metadata:    entities.ArmyBookMetadata{Name: &name},
		}).
		Return(&armybookrepo.SaveOutput{ArmyBook: saved}, nil)

	out, err := s.orchestrator.UpdateArmyBook(s.ctx, &armybook.UpdateArmyBookInput{
		UID:         testutils.TestArmyBookUID,
		RequesterID: testutils.TestOwnerID,
		Metadata:    entities.ArmyBookMetadata{Name: &name},
	})
	s.Require().NoError(err)
	s.Equal("Renamed", out.ArmyBook.Name)

	_, err = s.orchestrator.UpdateArmyBook(s.ctx, &armybook.UpdateArmyBookInput{
		UID:         testutils.TestArmyBookUID + "-skirmish",
		RequesterID: testutils.TestOwnerID,
		Metadata:    entities.ArmyBookMetadata{Name: &name},
	})
	s.True(errors.IsInvalidArgument(err), "derived flavors are read only")
}

func (s *OrchestratorTestSuite) TestDeleteArmyBook() {
	s.repo.EXPECT().
		Delete(s.ctx, armybookrepo.DeleteInput{UID: testutils.TestArmyBookUID, RequesterID: testutils.TestOwnerID}).
		Return(nil)
	s.Require().NoError(s.orchestrator.DeleteArmyBook(s.ctx, &armybook.DeleteArmyBookInput{
		UID:         testutils.TestArmyBookUID,
		RequesterID: testutils.TestOwnerID,
	}))

	s.repo.EXPECT().
		Delete(s.ctx, armybookrepo.DeleteInput{UID: "public-book", RequesterID: "visitor"}).
		Return(errors.PermissionDenied("army book is owned by another user"))
	err := s.orchestrator.DeleteArmyBook(s.ctx, &armybook.DeleteArmyBookInput{UID: "public-book", RequesterID: "visitor"})
	s.True(errors.IsPermissionDenied(err))

	err = s.orchestrator.DeleteArmyBook(s.ctx, &armybook.DeleteArmyBookInput{UID: "public-book"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCheckOwnership() {
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, s.book, testutils.TestOwnerID)
	out, err := s.orchestrator.CheckOwnership(s.ctx, &armybook.CheckOwnershipInput{
		UID:         testutils.TestArmyBookUID,
		RequesterID: testutils.TestOwnerID,
	})
	s.Require().NoError(err)
	s.Equal(testutils.TestArmyBookUID, out.ArmyBook.UID)

	public := builders.NewArmyBookBuilder().WithUID("public-book").WithOwner("author").WithPublic(true).Build()
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, public, "visitor")
	_, err = s.orchestrator.CheckOwnership(s.ctx, &armybook.CheckOwnershipInput{UID: "public-book", RequesterID: "visitor"})
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestGetArmyBookOwnedOnly() {
	public := builders.NewArmyBookBuilder().WithUID("public-book").WithOwner("author").WithPublic(true).Build()
	mocks.ExpectArmyBookLoad(s.ctx, s.repo, public, "visitor")

	_, err := s.orchestrator.GetArmyBook(s.ctx, &armybook.GetArmyBookInput{
		FlavouredUID: "public-book",
		RequesterID:  "visitor",
		OwnedOnly:    true,
	})
	s.True(errors.IsNotFound(err))
}
