package artifact_test

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	renderermock "github.com/KirkDiggler/armybook-api/internal/clients/renderer/mock"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	artifactrepo "github.com/KirkDiggler/armybook-api/internal/repositories/artifact"
	artifactrepomock "github.com/KirkDiggler/armybook-api/internal/repositories/artifact/mock"
	"github.com/KirkDiggler/armybook-api/internal/services/artifact"
	"github.com/KirkDiggler/armybook-api/internal/testutils"
	"github.com/KirkDiggler/armybook-api/internal/testutils/mocks"
)

type countingRecorder struct {
	metrics.NoopRecorder
	lookups       atomic.Int64
	shared        atomic.Int64
	storeFailures atomic.Int64
}

func (c *countingRecorder) IncArtifactLookup(metrics.LookupState) { c.lookups.Add(1) }
func (c *countingRecorder) IncRenderShared()                      { c.shared.Add(1) }
func (c *countingRecorder) IncArtifactStoreFailure()              { c.storeFailures.Add(1) }

type ArtifactServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	renderer *renderermock.MockClient
	repo     artifactrepo.Repository
	recorder *countingRecorder
	service  artifact.Service
	ctx      context.Context
	book     *entities.ArmyBook
}

func TestArtifactServiceSuite(t *testing.T) {
	suite.Run(t, new(ArtifactServiceTestSuite))
}

func (s *ArtifactServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.renderer = renderermock.NewMockClient(s.ctrl)
	s.renderer.EXPECT().Service().Return("html2pdf.app").AnyTimes()
	s.recorder = &countingRecorder{}
	s.ctx = context.Background()

	_, client := testutils.CreateTestRedis(s.T())
	repo, err := artifactrepo.NewRedisRepository(&artifactrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo

	s.service = s.newService(repo)
	s.book = testutils.CreateTestArmyBook()
}

func (s *ArtifactServiceTestSuite) newService(repo artifactrepo.Repository) artifact.Service {
	svc, err := artifact.NewService(&artifact.Config{
		Repository:    repo,
		Renderer:      s.renderer,
		RenderTimeout: time.Second,
		Metrics:       s.recorder,
	})
	s.Require().NoError(err)
	return svc
}

func (s *ArtifactServiceTestSuite) get(flavor entities.Flavor) *artifact.GetOrRenderOutput {
	out, err := s.service.GetOrRender(s.ctx, &artifact.GetOrRenderInput{
		ArmyBook:   s.book,
		Flavor:     flavor,
		Aberration: "GF",
	})
	s.Require().NoError(err)
	return out
}

func (s *ArtifactServiceTestSuite) TestNewServiceValidation() {
	_, err := artifact.NewService(&artifact.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Repository")
	s.Contains(err.Error(), "Renderer")
}

func (s *ArtifactServiceTestSuite) TestCacheLifecycle() {
	// absent: render at T1
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf-T1"), nil)
	out := s.get(entities.FlavorFull)
	s.Equal([]byte("pdf-T1"), out.Bytes)
	s.Equal(metrics.LookupAbsent, out.State)
	s.True(out.Rendered)
	s.Equal(entities.ContentTypePDF, out.ContentType)
	s.Equal("GF - Orc Marauders 1.0.pdf", out.Filename)

	stored, err := s.repo.Get(s.ctx, artifactrepo.GetInput{Key: testutils.TestArmyBookUID + "_full"})
	s.Require().NoError(err)
	s.Equal(testutils.TestModifiedAt, stored.Artifact.CreatedAt)
	s.Equal(s.book.Revision, stored.Artifact.Revision)
	s.Equal("html2pdf.app", stored.Artifact.SourceService)

	// fresh: same T1, no render
	out = s.get(entities.FlavorFull)
	s.Equal([]byte("pdf-T1"), out.Bytes)
	s.Equal(metrics.LookupFresh, out.State)
	s.False(out.Rendered)

	// sub-second drift still counts as the same version
	s.book.ModifiedAt = testutils.TestModifiedAt.Add(300 * time.Millisecond)
	out = s.get(entities.FlavorFull)
	s.Equal(metrics.LookupFresh, out.State)

	// stale: T2
	s.book.ModifiedAt = testutils.TestModifiedAt.Add(time.Minute)
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf-T2"), nil)
	out = s.get(entities.FlavorFull)
	s.Equal([]byte("pdf-T2"), out.Bytes)
	s.Equal(metrics.LookupStale, out.State)

	// stale: edit within the same second bumps only the revision
	s.book.Revision++
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf-T2b"), nil)
	out = s.get(entities.FlavorFull)
	s.Equal([]byte("pdf-T2b"), out.Bytes)
	s.Equal(metrics.LookupStale, out.State)
}

func (s *ArtifactServiceTestSuite) TestFlavorsAreCachedSeparately() {
	mocks.ExpectRender(s.renderer, testutils.TestArmyBookUID, []byte("full"))
	mocks.ExpectRender(s.renderer, testutils.TestArmyBookUID+"-skirmish", []byte("skirmish"))

	s.Equal([]byte("full"), s.get(entities.FlavorFull).Bytes)
	s.Equal([]byte("skirmish"), s.get(entities.FlavorSkirmish).Bytes)
	s.Equal([]byte("full"), s.get(entities.FlavorFull).Bytes)
	s.Equal([]byte("skirmish"), s.get(entities.FlavorSkirmish).Bytes)
}

func (s *ArtifactServiceTestSuite) TestRenderFailureIsNotCached() {
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).
		Return(nil, stderrors.New("connection reset"))

	_, err := s.service.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull})
	s.Require().Error(err)
	s.True(errors.IsUpstream(err))

	_, err = s.repo.Get(s.ctx, artifactrepo.GetInput{Key: testutils.TestArmyBookUID + "_full"})
	s.True(errors.IsNotFound(err))

	// the next read retries
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf"), nil)
	s.Equal([]byte("pdf"), s.get(entities.FlavorFull).Bytes)
}

func (s *ArtifactServiceTestSuite) TestStoreFailureStillReturnsBytes() {
	repo := artifactrepomock.NewMockRepository(s.ctrl)
	svc := s.newService(repo)

	// lookup, then the pre-store revision check
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.NotFound("artifact not found")).Times(2)
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf"), nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).
		Return(nil, errors.WrapWithCode(stderrors.New("dial tcp"), errors.CodeUnavailable, "redis down"))

	out, err := svc.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull})
	s.Require().NoError(err)
	s.Equal([]byte("pdf"), out.Bytes)
	s.Equal(int64(1), s.recorder.storeFailures.Load())
}

func (s *ArtifactServiceTestSuite) TestReadFailureFallsBackToRender() {
	repo := artifactrepomock.NewMockRepository(s.ctrl)
	svc := s.newService(repo)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.WrapWithCode(stderrors.New("dial tcp"), errors.CodeUnavailable, "redis down")).
		Times(2)
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf"), nil)
	repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&artifactrepo.PutOutput{}, nil)

	out, err := svc.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull})
	s.Require().NoError(err)
	s.Equal(metrics.LookupAbsent, out.State)
}

func (s *ArtifactServiceTestSuite) TestOlderRenderKeepsNewerStoredArtifact() {
	newer := &entities.PdfArtifact{
		ArmyBookUID: s.book.UID,
		Flavor:      entities.FlavorFull,
		Bytes:       []byte("pdf-rev5"),
		CreatedAt:   s.book.ModifiedAt.Add(time.Minute),
		Revision:    5,
	}
	_, err := s.repo.Put(s.ctx, artifactrepo.PutInput{Artifact: newer})
	s.Require().NoError(err)

	// a reader still holding revision 4 renders its own copy
	s.book.Revision = 4
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf-rev4"), nil)
	out := s.get(entities.FlavorFull)
	s.Equal([]byte("pdf-rev4"), out.Bytes)
	s.Equal(metrics.LookupStale, out.State)

	stored, err := s.repo.Get(s.ctx, artifactrepo.GetInput{Key: testutils.TestArmyBookUID + "_full"})
	s.Require().NoError(err)
	s.Equal(int64(5), stored.Artifact.Revision)
	s.Equal([]byte("pdf-rev5"), stored.Artifact.Bytes)
}

func (s *ArtifactServiceTestSuite) TestSameOrNewerRevisionReplacesStoredArtifact() {
	older := &entities.PdfArtifact{
		ArmyBookUID: s.book.UID,
		Flavor:      entities.FlavorFull,
		Bytes:       []byte("pdf-rev3"),
		CreatedAt:   s.book.ModifiedAt.Add(-time.Minute),
		Revision:    3,
	}
	_, err := s.repo.Put(s.ctx, artifactrepo.PutInput{Artifact: older})
	s.Require().NoError(err)

	s.book.Revision = 4
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf-rev4"), nil)
	s.get(entities.FlavorFull)

	stored, err := s.repo.Get(s.ctx, artifactrepo.GetInput{Key: testutils.TestArmyBookUID + "_full"})
	s.Require().NoError(err)
	s.Equal(int64(4), stored.Artifact.Revision)
}

func (s *ArtifactServiceTestSuite) TestRenderTimeoutIsDeadlineExceeded() {
	svc, err := artifact.NewService(&artifact.Config{
		Repository:    s.repo,
		Renderer:      s.renderer,
		RenderTimeout: 20 * time.Millisecond,
		Metrics:       s.recorder,
	})
	s.Require().NoError(err)

	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).
		DoAndReturn(func(ctx context.Context, _ string) ([]byte, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err = svc.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull})
	s.Require().Error(err)
	s.True(errors.IsDeadlineExceeded(err))
	s.False(errors.IsUpstream(err))
}

func (s *ArtifactServiceTestSuite) TestSingleCallerIsNotCountedAsShared() {
	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).Return([]byte("pdf"), nil)
	s.get(entities.FlavorFull)
	s.Equal(int64(0), s.recorder.shared.Load())
}

func (s *ArtifactServiceTestSuite) TestConcurrentMissesShareOneRender() {
	const callers = 5
	release := make(chan struct{})

	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).
		DoAndReturn(func(context.Context, string) ([]byte, error) {
			<-release
			return []byte("shared"), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	results := make([][]byte, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := s.service.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull})
			errs[i] = err
			if out != nil {
				results[i] = out.Bytes
			}
		}(i)
	}

	s.Eventually(func() bool { return s.recorder.lookups.Load() == callers }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		s.Require().NoError(errs[i])
		s.Equal([]byte("shared"), results[i])
	}
	s.Equal(int64(callers-1), s.recorder.shared.Load())
}

func (s *ArtifactServiceTestSuite) TestRenderSurvivesCallerCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	rendered := make(chan struct{})

	s.renderer.EXPECT().Render(gomock.Any(), testutils.TestArmyBookUID).
		DoAndReturn(func(renderCtx context.Context, _ string) ([]byte, error) {
			cancel()
			// the render context is detached from the caller
			s.NoError(renderCtx.Err())
			close(rendered)
			return []byte("pdf"), nil
		})

	_, _ = s.service.GetOrRender(ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: entities.FlavorFull}) // nolint:errcheck // either outcome is valid for the caller
	<-rendered

	s.Eventually(func() bool {
		_, err := s.repo.Get(s.ctx, artifactrepo.GetInput{Key: testutils.TestArmyBookUID + "_full"})
		return err == nil
	}, time.Second, 5*time.Millisecond)
}

func (s *ArtifactServiceTestSuite) TestInvalidInput() {
	_, err := s.service.GetOrRender(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.GetOrRender(s.ctx, &artifact.GetOrRenderInput{ArmyBook: s.book, Flavor: "poster"})
	s.True(errors.IsInvalidArgument(err))
}
