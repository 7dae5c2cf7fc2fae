package artifact

import (
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
)

// GetOrRenderInput identifies the flavor to serve. ArmyBook is the canonical
// document; its modifiedAt and revision version the artifact.
type GetOrRenderInput struct {
	ArmyBook *entities.ArmyBook
	Flavor   entities.Flavor
	// Aberration is the game system tag used in the download filename
	Aberration string
}

// Validate checks the input
func (i *GetOrRenderInput) Validate() error {
	if i == nil || i.ArmyBook == nil {
		return errors.InvalidArgument("army book is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("uid", i.ArmyBook.UID, vb)
	errors.ValidateEnum("flavor", string(i.Flavor),
		[]string{string(entities.FlavorFull), string(entities.FlavorSkirmish)}, vb)
	return vb.Build()
}

// GetOrRenderOutput is the PDF ready for delivery
type GetOrRenderOutput struct {
	Bytes       []byte
	ContentType string
	Filename    string
	// State is the cache state observed before serving
	State metrics.LookupState
	// Rendered is true when this request waited on a render
	Rendered bool
}
