package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	armybookv1alpha1 "github.com/KirkDiggler/armybook-api/internal/api/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/handlers/armybook/v1alpha1"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	armybookmock "github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook/mock"
	"github.com/KirkDiggler/armybook-api/internal/testutils"
)

const bufSize = 1024 * 1024

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *armybookmock.MockService
	client  armybookv1alpha1.ArmyBookServiceClient
	ctx     context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = armybookmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{ArmyBookService: s.service})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	armybookv1alpha1.RegisterArmyBookServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // returns when the listener closes
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.T().Cleanup(func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
		srv.Stop()
	})

	s.client = armybookv1alpha1.NewArmyBookServiceClient(conn)
}

func (s *HandlerTestSuite) asUser(userID string) context.Context {
	return metadata.AppendToOutgoingContext(s.ctx, armybookv1alpha1.RequesterMetadataKey, userID)
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetArmyBook() {
	book := testutils.CreateTestArmyBook()
	s.service.EXPECT().
		GetArmyBook(gomock.Any(), &armybook.GetArmyBookInput{
			FlavouredUID:       testutils.TestArmyBookUID + "-skirmish",
			RequesterID:        testutils.TestOwnerID,
			AuthoritativeCosts: true,
		}).
		Return(&armybook.GetArmyBookOutput{
			ArmyBook: book,
			Skipped:  []entities.SkippedRecord{{Kind: entities.RecordKindUnit, ID: "u9", Reason: "bad"}},
		}, nil)

	resp, err := s.client.GetArmyBook(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.GetArmyBookRequest{
		FlavouredUID:       testutils.TestArmyBookUID + "-skirmish",
		AuthoritativeCosts: true,
	})
	s.Require().NoError(err)
	s.Equal(book.UID, resp.ArmyBook.UID)
	s.Len(resp.ArmyBook.Units, len(book.Units))
	s.Equal("Grunt Squad", resp.ArmyBook.Units[0].Name)
	s.Require().Len(resp.Skipped, 1)
	s.Equal("u9", resp.Skipped[0].ID)
}

func (s *HandlerTestSuite) TestGetArmyBookErrors() {
	testCases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "not found", err: errors.NotFound("army book not found"), code: codes.NotFound},
		{name: "no skirmish counterpart", err: errors.FailedPrecondition("no counterpart"), code: codes.FailedPrecondition},
		{name: "upstream failure", err: errors.Upstream("calculator down"), code: codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.service.EXPECT().GetArmyBook(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			_, err := s.client.GetArmyBook(s.ctx, &armybookv1alpha1.GetArmyBookRequest{FlavouredUID: "x"})
			s.Require().Error(err)
			s.Equal(tc.code, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestGetArmyBookRequiresUID() {
	_, err := s.client.GetArmyBook(s.ctx, &armybookv1alpha1.GetArmyBookRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRecalculateCostsRequiresRequester() {
	_, err := s.client.RecalculateCosts(s.ctx, &armybookv1alpha1.RecalculateCostsRequest{UID: testutils.TestArmyBookUID})
	s.Equal(codes.Unauthenticated, status.Code(err))
}

func (s *HandlerTestSuite) TestRecalculateCosts() {
	saved := testutils.CreateTestArmyBook()
	saved.Revision = 4
	s.service.EXPECT().
		RecalculateCosts(gomock.Any(), &armybook.RecalculateCostsInput{
			UID:         testutils.TestArmyBookUID,
			RequesterID: testutils.TestOwnerID,
		}).
		Return(&armybook.RecalculateCostsOutput{ArmyBook: saved}, nil)

	resp, err := s.client.RecalculateCosts(s.asUser(testutils.TestOwnerID), &armybookv1alpha1.RecalculateCostsRequest{
		UID: testutils.TestArmyBookUID,
	})
	s.Require().NoError(err)
	s.Equal(int64(4), resp.ArmyBook.Revision)
}

func (s *HandlerTestSuite) TestRecalculateCostsPermissionDenied() {
	s.service.EXPECT().RecalculateCosts(gomock.Any(), gomock.Any()).
		Return(nil, errors.PermissionDenied("army book is owned by another user"))

	_, err := s.client.RecalculateCosts(s.asUser("visitor"), &armybookv1alpha1.RecalculateCostsRequest{UID: "public-book"})
	s.Equal(codes.PermissionDenied, status.Code(err))
}

func (s *HandlerTestSuite) TestGetPdf() {
	s.service.EXPECT().
		GetPdf(gomock.Any(), &armybook.GetPdfInput{FlavouredUID: testutils.TestArmyBookUID}).
		Return(&armybook.GetPdfOutput{
			Bytes:       []byte("%PDF-1.7\x00\x01"),
			ContentType: entities.ContentTypePDF,
			Filename:    "GF - Orc Marauders 1.0.pdf",
			CacheState:  metrics.LookupFresh,
		}, nil)

	resp, err := s.client.GetPdf(s.ctx, &armybookv1alpha1.GetPdfRequest{FlavouredUID: testutils.TestArmyBookUID})
	s.Require().NoError(err)
	s.Equal([]byte("%PDF-1.7\x00\x01"), resp.Pdf)
	s.Equal(entities.ContentTypePDF, resp.ContentType)
	s.Equal("fresh", resp.CacheState)
}

func (s *HandlerTestSuite) TestImportArmyBook() {
	s.service.EXPECT().
		ImportArmyBook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *armybook.ImportArmyBookInput) (*armybook.ImportArmyBookOutput, error) {
			s.Equal("importer", input.RequesterID)
			s.Equal(entities.CostModeAutomatic, input.CostMode)
			book := input.ArmyBook.Clone()
			book.UID = "book_1"
			return &armybook.ImportArmyBookOutput{ArmyBook: book}, nil
		})

	resp, err := s.client.ImportArmyBook(s.asUser("importer"), &armybookv1alpha1.ImportArmyBookRequest{
		ArmyBook: testutils.CreateTestArmyBook(),
		CostMode: "automatic",
	})
	s.Require().NoError(err)
	s.Equal("book_1", resp.ArmyBook.UID)
}

func (s *HandlerTestSuite) TestImportArmyBookValidationError() {
	s.service.EXPECT().ImportArmyBook(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().RequiredField("name").Build())

	_, err := s.client.ImportArmyBook(s.asUser("importer"), &armybookv1alpha1.ImportArmyBookRequest{
		ArmyBook: &entities.ArmyBook{},
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
