package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
)

func (s *RouterTestSuite) TestListArmyBooks() {
	s.service.EXPECT().
		ListArmyBooks(gomock.Any(), &armybook.ListArmyBooksInput{GameSystemSlug: "age-of-fantasy-skirmish"}).
		Return(&armybook.ListArmyBooksOutput{ArmyBooks: []*entities.ArmyBookSummary{
			{UID: "elves", Name: "Elves", Flavor: entities.FlavorFull},
			{UID: "orcs-skirmish", Name: "Orcs", Flavor: entities.FlavorSkirmish, Aberration: "AOFS"},
		}}, nil)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books?gameSystemSlug=age-of-fantasy-skirmish", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("public, max-age=600", rec.Header().Get("Cache-Control"))

	var body struct {
		ArmyBooks []entities.ArmyBookSummary `json:"armyBooks"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.ArmyBooks, 2)
	s.Equal("orcs-skirmish", body.ArmyBooks[1].UID)
	s.Equal("AOFS", body.ArmyBooks[1].Aberration)
}

func (s *RouterTestSuite) TestListArmyBooksRequiresSlug() {
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books", nil))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestListMyArmyBooks() {
	s.service.EXPECT().
		ListMyArmyBooks(gomock.Any(), &armybook.ListMyArmyBooksInput{RequesterID: "user-1"}).
		Return(&armybook.ListMyArmyBooksOutput{ArmyBooks: []*entities.ArmyBookSummary{{UID: "mine"}}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/army-books/mine", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"uid":"mine"`)

	rec = s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books/mine", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestGetMyArmyBook() {
	s.service.EXPECT().
		GetArmyBook(gomock.Any(), &armybook.GetArmyBookInput{FlavouredUID: "abc", RequesterID: "user-1", OwnedOnly: true}).
		Return(nil, errors.NotFound("army book abc not found or owned by another user"))

	req := httptest.NewRequest(http.MethodGet, "/api/army-books/abc/mine", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestCreateDetachment() {
	s.service.EXPECT().
		CreateDetachment(gomock.Any(), &armybook.CreateDetachmentInput{
			RequesterID:  "user-1",
			ParentUID:    "parent",
			Name:         "Retinue",
			GameSystemID: 4,
			CloneUnitIDs: []string{"a", "b"},
			SyncUnitIDs:  []string{"a"},
		}).
		Return(&armybook.CreateDetachmentOutput{ArmyBook: &entities.ArmyBook{UID: "book_1", Name: "Retinue"}}, nil)

	body := `{"parentArmyBookId":"parent","name":"Retinue","gameSystemId":4,"clones":["a","b"],"syncs":["a"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/army-books/detachment", strings.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "book_1")
}

func (s *RouterTestSuite) TestUpdateArmyBook() {
	s.service.EXPECT().
		UpdateArmyBook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *armybook.UpdateArmyBookInput) (*armybook.UpdateArmyBookOutput, error) {
			s.Equal("abc", input.UID)
			s.Equal("user-1", input.RequesterID)
			s.Require().NotNil(input.Metadata.Public)
			s.True(*input.Metadata.Public)
			s.Nil(input.Metadata.Name)
			return &armybook.UpdateArmyBookOutput{ArmyBook: &entities.ArmyBook{UID: "abc", Public: true, Revision: 4}}, nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/api/army-books/abc", strings.NewReader(`{"public":true}`))
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"revision":4`)
}

func (s *RouterTestSuite) TestDeleteArmyBook() {
	s.service.EXPECT().
		DeleteArmyBook(gomock.Any(), &armybook.DeleteArmyBookInput{UID: "abc", RequesterID: "user-1"}).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/army-books/abc", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.Bytes())
}

func (s *RouterTestSuite) TestCheckOwnership() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "owner", status: http.StatusOK},
		{name: "missing", err: errors.NotFound("army book not found"), status: http.StatusNotFound},
		{name: "other owner", err: errors.PermissionDenied("army book is owned by another user"), status: http.StatusForbidden},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			call := s.service.EXPECT().
				CheckOwnership(gomock.Any(), &armybook.CheckOwnershipInput{UID: "abc", RequesterID: "user-1"})
			if tc.err != nil {
				call.Return(nil, tc.err)
			} else {
				call.Return(&armybook.CheckOwnershipOutput{ArmyBook: &entities.ArmyBookSummary{UID: "abc", UserID: "user-1"}}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/army-books/abc/ownership", nil)
			req.Header.Set("X-User-Id", "user-1")
			rec := s.serve(req)
			s.Equal(tc.status, rec.Code)
		})
	}
}
