package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/handlers/rest"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	"github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook"
	armybookmock "github.com/KirkDiggler/armybook-api/internal/orchestrators/armybook/mock"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *armybookmock.MockService
	router  http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = armybookmock.NewMockService(s.ctrl)

	router, err := rest.NewRouter(&rest.RouterConfig{
		ArmyBookService: s.service,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("armybook_up 1\n")) // nolint:errcheck // test
		}),
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *RouterTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) decodeError(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *RouterTestSuite) TestNewRouterRequiresService() {
	_, err := rest.NewRouter(&rest.RouterConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RouterTestSuite) TestHealthz() {
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *RouterTestSuite) TestMetricsMounted() {
	rec := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "armybook_up")
}

func (s *RouterTestSuite) TestGetArmyBookPassesQuery() {
	s.service.EXPECT().
		GetArmyBook(gomock.Any(), &armybook.GetArmyBookInput{
			FlavouredUID:       "abc-skirmish",
			RequesterID:        "user-1",
			TargetGameSystemID: 3,
			AuthoritativeCosts: true,
		}).
		Return(&armybook.GetArmyBookOutput{
			ArmyBook: &entities.ArmyBook{UID: "abc", FlavouredUID: "abc-skirmish", Flavor: entities.FlavorSkirmish},
			Skipped:  []entities.SkippedRecord{{Kind: "unit", ID: "u9", Reason: "no size"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/army-books/abc-skirmish?targetGameSystemId=3&authoritative=true", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		ArmyBook entities.ArmyBook        `json:"armyBook"`
		Skipped  []entities.SkippedRecord `json:"skipped"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("abc-skirmish", body.ArmyBook.FlavouredUID)
	s.Len(body.Skipped, 1)
}

func (s *RouterTestSuite) TestGetArmyBookRejectsBadQuery() {
	testCases := []struct {
		name  string
		query string
	}{
		{"non-numeric target", "?targetGameSystemId=grim"},
		{"non-boolean authoritative", "?authoritative=maybe"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books/abc"+tc.query, nil))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(string(errors.CodeInvalidArgument), s.decodeError(rec)["code"])
		})
	}
}

func (s *RouterTestSuite) TestErrorStatusMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errors.NotFound("army book abc not found"), http.StatusNotFound},
		{"permission denied", errors.PermissionDenied("not yours"), http.StatusForbidden},
		{"no counterpart", errors.FailedPrecondition("no skirmish counterpart"), http.StatusPreconditionFailed},
		{"renderer down", errors.Upstream("renderer failed"), http.StatusBadGateway},
		{"renderer timed out", errors.New(errors.CodeDeadlineExceeded, "pdf render timed out"), http.StatusGatewayTimeout},
		{"client went away", errors.New(errors.CodeCanceled, "pdf request abandoned"), http.StatusRequestTimeout},
		{"plain error", stdError("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.service.EXPECT().GetArmyBook(gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books/abc", nil))
			s.Equal(tc.status, rec.Code)
			s.NotEmpty(s.decodeError(rec)["error"])
		})
	}
}

func (s *RouterTestSuite) TestGetPdfHeaders() {
	pdf := []byte("%PDF-1.7 grunts")
	s.service.EXPECT().
		GetPdf(gomock.Any(), &armybook.GetPdfInput{FlavouredUID: "abc", RequesterID: ""}).
		Return(&armybook.GetPdfOutput{
			Bytes:       pdf,
			ContentType: "application/pdf",
			Filename:    "Orc Marauders.pdf",
			CacheState:  metrics.LookupFresh,
		}, nil)

	rec := s.serve(httptest.NewRequest(http.MethodGet, "/api/army-books/abc/pdf", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get("Content-Type"))
	s.Equal(`inline; filename="Orc Marauders.pdf"`, rec.Header().Get("Content-Disposition"))
	s.Equal("public, max-age=60", rec.Header().Get("Cache-Control"))
	s.Equal("fresh", rec.Header().Get("X-Cache-State"))
	s.Equal(pdf, rec.Body.Bytes())
}

func (s *RouterTestSuite) TestRecalculateCostsRequiresRequester() {
	rec := s.serve(httptest.NewRequest(http.MethodPost, "/api/army-books/abc/calculate", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterTestSuite) TestRecalculateCosts() {
	s.service.EXPECT().
		RecalculateCosts(gomock.Any(), &armybook.RecalculateCostsInput{UID: "abc", RequesterID: "user-1"}).
		Return(&armybook.RecalculateCostsOutput{ArmyBook: &entities.ArmyBook{UID: "abc", Revision: 2}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/army-books/abc/calculate", nil)
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"revision":2`)
}

func (s *RouterTestSuite) TestImportArmyBook() {
	s.service.EXPECT().
		ImportArmyBook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *armybook.ImportArmyBookInput) (*armybook.ImportArmyBookOutput, error) {
			s.Equal("user-1", input.RequesterID)
			s.Equal(entities.CostModeAutomatic, input.CostMode)
			s.Equal("Orc Marauders", input.ArmyBook.Name)
			return &armybook.ImportArmyBookOutput{ArmyBook: &entities.ArmyBook{UID: "new-uid", Name: "Orc Marauders"}}, nil
		})

	body := `{"armyBook":{"name":"Orc Marauders","units":[]},"costMode":"automatic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/army-books/import", strings.NewReader(body))
	req.Header.Set("X-User-Id", "user-1")
	rec := s.serve(req)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "new-uid")
}

func (s *RouterTestSuite) TestImportArmyBookRejectsBadBody() {
	testCases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"armyBook":`},
		{"missing book", `{"costMode":"manual"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodPost, "/api/army-books/import", strings.NewReader(tc.body))
			req.Header.Set("X-User-Id", "user-1")
			rec := s.serve(req)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

type stdError string

func (e stdError) Error() string { return string(e) }
