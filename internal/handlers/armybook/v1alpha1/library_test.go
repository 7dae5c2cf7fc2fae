package v1alpha1_test

import (
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	"github.com/KirkDiggler/armybook-api/internal/testutils"
)

func (s *HandlerTestSuite) TestListArmyBooks() {
	s.service.EXPECT().
		ListArmyBooks(gomock.Any(), &armybook.ListArmyBooksInput{GameSystemSlug: "grimdark-future-firefight"}).
		Return(&armybook.ListArmyBooksOutput{ArmyBooks: []*entities.ArmyBookSummary{
			{UID: "orcs-skirmish", Name: "Orcs", Flavor: entities.FlavorSkirmish, Aberration: "GFF"},
		}}, nil)

	resp, err := s.client.ListArmyBooks(s.ctx, &armybookv1alpha1.ListArmyBooksRequest{GameSystemSlug: "grimdark-future-firefight"})
	s.Require().NoError(err)
	s.Require().Len(resp.ArmyBooks, 1)
	s.Equal("orcs-skirmish", resp.ArmyBooks[0].UID)
	s.Equal(entities.FlavorSkirmish, resp.ArmyBooks[0].Flavor)

	_, err = s.client.ListArmyBooks(s.ctx, &armybookv1alpha1.ListArmyBooksRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestListMyArmyBooks() {
	s.service.EXPECT().
		ListMyArmyBooks(gomock.Any(), &armybook.ListMyArmyBooksInput{RequesterID: testutils.TestOwnerID}).
		Return(&armybook.ListMyArmyBooksOutput{ArmyBooks: []*entities.ArmyBookSummary{{UID: testutils.TestArmyBookUID}}}, nil)

	resp, err := s.client.ListMyArmyBooks(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.ListMyArmyBooksRequest{})
	s.Require().NoError(err)
	s.Len(resp.ArmyBooks, 1)

	_, err = s.client.ListMyArmyBooks(s.ctx, &armybookv1alpha1.ListMyArmyBooksRequest{})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *HandlerTestSuite) TestCreateDetachment() {
	s.service.EXPECT().
		CreateDetachment(gomock.Any(), &armybook.CreateDetachmentInput{
			RequesterID:  testutils.TestOwnerID,
			ParentUID:    testutils.TestArmyBookUID,
			Name:         "Retinue",
			CloneUnitIDs: []string{"boss"},
			SyncUnitIDs:  []string{"boss"},
		}).
		Return(&armybook.CreateDetachmentOutput{ArmyBook: &entities.ArmyBook{UID: "book_1", Name: "Retinue"}}, nil)

	resp, err := s.client.CreateDetachment(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.CreateDetachmentRequest{
		ParentArmyBookUID: testutils.TestArmyBookUID,
		Name:              "Retinue",
		Clones:            []string{"boss"},
		Syncs:             []string{"boss"},
	})
	s.Require().NoError(err)
	s.Equal("book_1", resp.ArmyBook.UID)
}

func (s *HandlerTestSuite) TestUpdateArmyBook() {
	name := "Renamed"
	s.service.EXPECT().
		UpdateArmyBook(gomock.Any(), &armybook.UpdateArmyBookInput{
			UID:         testutils.TestArmyBookUID,
			RequesterID: testutils.TestOwnerID,
			Metadata:    entities.ArmyBookMetadata{Name: &name},
		}).
		Return(&armybook.UpdateArmyBookOutput{ArmyBook: &entities.ArmyBook{UID: testutils.TestArmyBookUID, Name: name}}, nil)

	resp, err := s.client.UpdateArmyBook(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.UpdateArmyBookRequest{
		UID:      testutils.TestArmyBookUID,
		Metadata: entities.ArmyBookMetadata{Name: &name},
	})
	s.Require().NoError(err)
	s.Equal("Renamed", resp.ArmyBook.Name)
}

func (s *HandlerTestSuite) TestDeleteArmyBook() {
	s.service.EXPECT().
		DeleteArmyBook(gomock.Any(), &armybook.DeleteArmyBookInput{UID: "public-book", RequesterID: "visitor"}).
		Return(errors.PermissionDenied("army book is owned by another user"))

	_, err := s.client.DeleteArmyBook(s.asUser("visitor"), &armybookv1alpha1.DeleteArmyBookRequest{UID: "public-book"})
	s.Equal(codes.PermissionDenied, status.Code(err))

	_, err = s.client.DeleteArmyBook(s.ctx, &armybookv1alpha1.DeleteArmyBookRequest{UID: "public-book"})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *HandlerTestSuite) TestCheckOwnership() {
	s.service.EXPECT().
		CheckOwnership(gomock.Any(), &armybook.CheckOwnershipInput{UID: testutils.TestArmyBookUID, RequesterID: testutils.TestOwnerID}).
		Return(&armybook.CheckOwnershipOutput{ArmyBook: &entities.ArmyBookSummary{UID: testutils.TestArmyBookUID, UserID: testutils.TestOwnerID}}, nil)

	resp, err := s.client.CheckOwnership(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.CheckOwnershipRequest{UID: testutils.TestArmyBookUID})
	s.Require().NoError(err)
	s.Equal(testutils.TestOwnerID, resp.ArmyBook.UserID)
}
