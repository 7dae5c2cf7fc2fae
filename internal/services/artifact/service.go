// Package artifact serves rendered PDFs of army book flavors.
//
// A stored artifact is reused while its createdAt matches the book's
// modifiedAt to the second and its revision matches the book's revision.
// Otherwise the flavor is rendered again and the result stored. Concurrent
// misses for the same content version share a single render.
package artifact

//go:generate mockgen -destination=mock/mock_service.go -package=artifactmock github.com/KirkDiggler/armybook-api/internal/services/artifact Service

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/armybook-api/internal/clients/renderer"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	artifactrepo "github.com/KirkDiggler/armybook-api/internal/repositories/artifact"
)

// DefaultRenderTimeout bounds a render when the config leaves it unset
const DefaultRenderTimeout = 90 * time.Second

// Service returns the PDF for an army book flavor
type Service interface {
	GetOrRender(ctx context.Context, input *GetOrRenderInput) (*GetOrRenderOutput, error)
}

// Config holds the dependencies for the artifact service
type Config struct {
	Repository    artifactrepo.Repository
	Renderer      renderer.Client
	RenderTimeout time.Duration
	Metrics       metrics.Recorder
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
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.RenderTimeout < 0 {
		vb.Field("RenderTimeout", "cannot be negative")
	}
	return vb.Build()
}

type service struct {
	repo          artifactrepo.Repository
	renderer      renderer.Client
	renderTimeout time.Duration
	metrics       metrics.Recorder
	flights       singleflight.Group
}

// NewService creates an artifact service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.RenderTimeout
	if timeout == 0 {
		timeout = DefaultRenderTimeout
	}
	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	return &service{
		repo:          cfg.Repository,
		renderer:      cfg.Renderer,
		renderTimeout: timeout,
		metrics:       rec,
	}, nil
}

func (s *service) GetOrRender(ctx context.Context, input *GetOrRenderInput) (*GetOrRenderOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book := input.ArmyBook
	key := entities.ArtifactKey(book.UID, input.Flavor)
	out := &GetOrRenderOutput{
		ContentType: entities.ContentTypePDF,
		Filename:    entities.PdfFilename(input.Aberration, book.Name, book.VersionString),
	}

	stored, state := s.lookup(ctx, key, book)
	s.metrics.IncArtifactLookup(state)
	out.State = state

	if state == metrics.LookupFresh {
		slog.DebugContext(ctx, "serving cached pdf", "cache_key", key, "revision", book.Revision)
		out.Bytes = stored.Bytes
		return out, nil
	}

	slog.InfoContext(ctx, "rendering pdf",
		"cache_key", key,
		"state", string(state),
		"modified_at", book.ModifiedAt,
		"revision", book.Revision)

	// Result.Shared is true for the leader too; only the leader runs fn
	led := false
	ch := s.flights.DoChan(flightKey(book, input.Flavor), func() (interface{}, error) {
		led = true
		return s.renderAndStore(ctx, book, input.Flavor)
	})

	select {
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeDeadlineExceeded, "pdf request timed out")
		}
		return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "pdf request abandoned")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared && !led {
			s.metrics.IncRenderShared()
		}
		out.Bytes = res.Val.([]byte)
		out.Rendered = true
		return out, nil
	}
}

// lookup classifies the stored artifact. Read failures count as absent so a
// broken store degrades to rendering on every request.
func (s *service) lookup(ctx context.Context, key string, book *entities.ArmyBook) (*entities.PdfArtifact, metrics.LookupState) {
	got, err := s.repo.Get(ctx, artifactrepo.GetInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to read cached pdf", "cache_key", key, "error", err)
		}
		return nil, metrics.LookupAbsent
	}
	if !got.Artifact.FreshFor(book) {
		return got.Artifact, metrics.LookupStale
	}
	return got.Artifact, metrics.LookupFresh
}

// renderAndStore runs once per flight. It is detached from the caller so an
// impatient first requester does not fail everyone sharing the flight.
func (s *service) renderAndStore(ctx context.Context, book *entities.ArmyBook, flavor entities.Flavor) ([]byte, error) {
	renderCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.renderTimeout)
	defer cancel()

	start := time.Now()
	pdf, err := s.renderer.Render(renderCtx, entities.FlavouredUID(book.UID, flavor))
	s.metrics.ObserveRender(time.Since(start), err == nil)
	if err != nil {
		// never cache a failure; the next request renders again
		if errors.IsDeadlineExceeded(err) || stderrors.Is(renderCtx.Err(), context.DeadlineExceeded) {
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "pdf render timed out")
		}
		return nil, errors.WrapUpstream(err, "failed to render pdf")
	}

	artifact := &entities.PdfArtifact{
		ArmyBookUID:   book.UID,
		Flavor:        flavor,
		Bytes:         pdf,
		CreatedAt:     book.ModifiedAt,
		Revision:      book.Revision,
		SourceService: s.renderer.Service(),
	}
	if s.supersededBy(renderCtx, artifact) {
		slog.DebugContext(ctx, "newer pdf already stored, keeping it",
			"cache_key", artifact.Key(),
			"revision", artifact.Revision)
		return pdf, nil
	}
	if _, err := s.repo.Put(renderCtx, artifactrepo.PutInput{Artifact: artifact}); err != nil {
		s.metrics.IncArtifactStoreFailure()
		slog.ErrorContext(ctx, "failed to store rendered pdf",
			"cache_key", artifact.Key(),
			"error", err)
	}

	return pdf, nil
}

// supersededBy reports whether the store already holds a render of a later
// revision. The check and the Put are not atomic; a concurrent writer can
// still land in between and the last writer wins until the next stale read
// renders again.
func (s *service) supersededBy(ctx context.Context, artifact *entities.PdfArtifact) bool {
	got, err := s.repo.Get(ctx, artifactrepo.GetInput{Key: artifact.Key()})
	if err != nil {
		return false
	}
	return got.Artifact.Revision > artifact.Revision
}

func flightKey(book *entities.ArmyBook, flavor entities.Flavor) string {
	return fmt.Sprintf("%s|%s|%d|%d", book.UID, flavor, book.ModifiedAt.Unix(), book.Revision)
}
