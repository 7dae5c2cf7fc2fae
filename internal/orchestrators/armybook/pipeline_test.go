package armybook_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	renderermock "github.com/KirkDiggler/armybook-api/internal/clients/renderer/mock"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	"github.com/KirkDiggler/armybook-api/internal/pkg/clock"
	"github.com/KirkDiggler/armybook-api/internal/pkg/idgen"
	armybookrepo "github.com/KirkDiggler/armybook-api/internal/repositories/armybook"
	artifactrepo "github.com/KirkDiggler/armybook-api/internal/repositories/artifact"
	"github.com/KirkDiggler/armybook-api/internal/services/artifact"
	"github.com/KirkDiggler/armybook-api/internal/services/costing"
	"github.com/KirkDiggler/armybook-api/internal/services/skirmish"
	"github.com/KirkDiggler/armybook-api/internal/testutils"
	"github.com/KirkDiggler/armybook-api/internal/testutils/mocks"
)

// PipelineTestSuite runs the orchestrator over real services, Redis storage
// and a fake calculator.
type PipelineTestSuite struct {
	suite.Suite
	ctx          context.Context
	clock        *clock.Manual
	renderer     *renderermock.MockClient
	orchestrator armybook.Service
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(testutils.TestModifiedAt)
	s.renderer = renderermock.NewMockClient(gomock.NewController(s.T()))

	_, client := testutils.CreateTestRedis(s.T())
	books, err := armybookrepo.NewRedisRepository(&armybookrepo.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	pdfs, err := artifactrepo.NewRedisRepository(&artifactrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	calc := testutils.NewTestCalculator()
	costs, err := costing.NewService(&costing.Config{Calculator: calc})
	s.Require().NoError(err)
	skirmishes, err := skirmish.NewService(&skirmish.Config{Calculator: calc, Costing: costs})
	s.Require().NoError(err)
	artifacts, err := artifact.NewService(&artifact.Config{Repository: pdfs, Renderer: s.renderer})
	s.Require().NoError(err)

	s.orchestrator, err = armybook.NewOrchestrator(&armybook.Config{
		Repository:           books,
		Costing:              costs,
		Skirmish:             skirmishes,
		Artifacts:            artifacts,
		BookIDGenerator:      idgen.NewSequential("book"),
		EquipmentIDGenerator: idgen.NewSequential("eq"),
	})
	s.Require().NoError(err)

	_, err = books.Create(s.ctx, armybookrepo.CreateInput{ArmyBook: testutils.CreateTestArmyBook()})
	s.Require().NoError(err)
}

func (s *PipelineTestSuite) TestSkirmishFlavor() {
	out, err := s.orchestrator.GetArmyBook(s.ctx, &armybook.GetArmyBookInput{
		FlavouredUID: testutils.TestArmyBookUID + "-skirmish",
		RequesterID:  testutils.TestOwnerID,
	})
	s.Require().NoError(err)

	book := out.ArmyBook
	s.Equal(entities.FlavorSkirmish, book.Flavor)
	s.Equal("GFF", book.Aberration)
	s.True(book.Autogenerated)
	s.Require().Len(book.Units, 2)

	grunts := book.Units[0]
	s.Equal("Grunt Squads", grunts.Name)
	s.Equal(3, grunts.Size)
	s.Equal(36, grunts.Cost)
	s.Equal(1, grunts.SplitPageNumber)

	s.Equal("Chieftain", book.Units[1].Name)
	s.Equal(1, book.Units[1].Size)
}

func (s *PipelineTestSuite) TestRecalculateThenPdfRegenerates() {
	mocks.ExpectRender(s.renderer, testutils.TestArmyBookUID, []byte("before"))
	first, err := s.orchestrator.GetPdf(s.ctx, &armybook.GetPdfInput{
		FlavouredUID: testutils.TestArmyBookUID,
		RequesterID:  testutils.TestOwnerID,
	})
	s.Require().NoError(err)
	s.Equal([]byte("before"), first.Bytes)
	s.Equal("GF - Orc Marauders 1.0.pdf", first.Filename)

	// same second, new revision
	saved, err := s.orchestrator.RecalculateCosts(s.ctx, &armybook.RecalculateCostsInput{
		UID:         testutils.TestArmyBookUID,
		RequesterID: testutils.TestOwnerID,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), saved.ArmyBook.Revision)
	s.Equal(20, saved.ArmyBook.UpgradePackages[0].Sections[0].Options[0].Cost)

	mocks.ExpectRender(s.renderer, testutils.TestArmyBookUID, []byte("after"))
	second, err := s.orchestrator.GetPdf(s.ctx, &armybook.GetPdfInput{
		FlavouredUID: testutils.TestArmyBookUID,
		RequesterID:  testutils.TestOwnerID,
	})
	s.Require().NoError(err)
	s.Equal([]byte("after"), second.Bytes)
}

func (s *PipelineTestSuite) TestDetachmentLifecycle() {
	s.clock.Advance(time.Minute)

	created, err := s.orchestrator.CreateDetachment(s.ctx, &armybook.CreateDetachmentInput{
		RequesterID:  testutils.TestOwnerID,
		ParentUID:    testutils.TestArmyBookUID,
		Name:         "Grunt Patrol",
		CloneUnitIDs: []string{"grunts"},
	})
	s.Require().NoError(err)
	detachment := created.ArmyBook
	s.Equal("book_1", detachment.UID)
	s.Equal(int64(4), detachment.Revision, "create plus three staged saves")
	s.Require().Len(detachment.Units, 1)
	s.Equal("grunts", detachment.Units[0].ClonedFrom.UnitID)
	s.Require().Len(detachment.UpgradePackages, 1)
	s.Equal("pkg-grunts", detachment.UpgradePackages[0].UID)

	mine, err := s.orchestrator.ListMyArmyBooks(s.ctx, &armybook.ListMyArmyBooksInput{RequesterID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Require().Len(mine.ArmyBooks, 2)
	s.Equal("book_1", mine.ArmyBooks[0].UID, "newest first")

	public := true
	_, err = s.orchestrator.UpdateArmyBook(s.ctx, &armybook.UpdateArmyBookInput{
		UID:         testutils.TestArmyBookUID,
		RequesterID: testutils.TestOwnerID,
		Metadata:    entities.ArmyBookMetadata{Public: &public},
	})
	s.Require().NoError(err)

	listed, err := s.orchestrator.ListArmyBooks(s.ctx, &armybook.ListArmyBooksInput{GameSystemSlug: "grimdark-future-firefight"})
	s.Require().NoError(err)
	s.Require().Len(listed.ArmyBooks, 1, "the private detachment is not listed")
	s.Equal(testutils.TestArmyBookUID+"-skirmish", listed.ArmyBooks[0].UID)

	s.Require().NoError(s.orchestrator.DeleteArmyBook(s.ctx, &armybook.DeleteArmyBookInput{
		UID:         detachment.UID,
		RequesterID: testutils.TestOwnerID,
	}))

	mine, err = s.orchestrator.ListMyArmyBooks(s.ctx, &armybook.ListMyArmyBooksInput{RequesterID: testutils.TestOwnerID})
	s.Require().NoError(err)
	s.Len(mine.ArmyBooks, 1)
}
