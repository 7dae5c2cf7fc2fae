// Package artifact provides storage for rendered PDF artifacts keyed by
// "<armyBookUid>_<flavor>"
package artifact

import (
	"context"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=artifactrepomock github.com/KirkDiggler/armybook-api/internal/repositories/artifact Repository

// Repository stores the latest rendered artifact per book flavor.
// Put overwrites whatever is stored under the key.
type Repository interface {
	// Get returns the stored artifact or a NotFound error
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores the artifact under its key
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput contains the cache key to look up
type GetInput struct {
	Key string
}

// GetOutput contains the stored artifact
type GetOutput struct {
	Artifact *entities.PdfArtifact
}

// PutInput contains the artifact to store
type PutInput struct {
	Artifact *entities.PdfArtifact
}

// PutOutput is empty; reserved for future fields
type PutOutput struct{}

func validatePut(input PutInput) error {
	if input.Artifact == nil {
		return errors.InvalidArgument("artifact cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("army_book_uid", input.Artifact.ArmyBookUID, vb)
	errors.ValidateRequired("flavor", string(input.Artifact.Flavor), vb)
	if len(input.Artifact.Bytes) == 0 {
		vb.RequiredField("bytes")
	}
	return vb.Build()
}
