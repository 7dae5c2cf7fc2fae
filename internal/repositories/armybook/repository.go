// Package armybook provides storage for canonical army books
package armybook

import (
	"context"

	"github.com/KirkDiggler/armybook-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=armybookrepomock github.com/KirkDiggler/armybook-api/internal/repositories/armybook Repository

// Repository defines the interface for army book storage.
//
// Reads succeed for public books and for the owner; anything else is reported
// as not found. Saves require ownership and stamp modifiedAt and bump the
// revision counter on every write.
type Repository interface {
	// Get retrieves a book visible to the requester
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new book owned by its UserID
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// SaveUnits replaces the unit list
	SaveUnits(ctx context.Context, input SaveUnitsInput) (*SaveOutput, error)

	// SaveUpgradePackages replaces the upgrade package list
	SaveUpgradePackages(ctx context.Context, input SaveUpgradePackagesInput) (*SaveOutput, error)

	// SaveSpecialRules replaces the special rule list
	SaveSpecialRules(ctx context.Context, input SaveSpecialRulesInput) (*SaveOutput, error)

	// SaveCosts replaces units and upgrade packages in one atomic write
	SaveCosts(ctx context.Context, input SaveCostsInput) (*SaveOutput, error)

	// UpdateMetadata applies a partial update of the descriptive fields
	UpdateMetadata(ctx context.Context, input UpdateMetadataInput) (*SaveOutput, error)

	// Delete removes a book owned by the requester
	Delete(ctx context.Context, input DeleteInput) error

	// ListPublic returns the public books enabled for a game system, by name
	ListPublic(ctx context.Context, input ListPublicInput) (*ListOutput, error)

	// ListByOwner returns every book owned by the user, most recently modified first
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListOutput, error)
}

// GetInput contains parameters for retrieving a book
type GetInput struct {
	UID         string
	RequesterID string
}

// GetOutput contains the retrieved book
type GetOutput struct {
	ArmyBook *entities.ArmyBook
}

// CreateInput contains the book to store
type CreateInput struct {
	ArmyBook *entities.ArmyBook
}

// CreateOutput contains the stored book with modifiedAt and revision set
type CreateOutput struct {
	ArmyBook *entities.ArmyBook
}

// SaveUnitsInput contains parameters for replacing units
type SaveUnitsInput struct {
	UID         string
	RequesterID string
	Units       []*entities.Unit
}

// SaveUpgradePackagesInput contains parameters for replacing upgrade packages
type SaveUpgradePackagesInput struct {
	UID             string
	RequesterID     string
	UpgradePackages []*entities.UpgradePackage
}

// SaveSpecialRulesInput contains parameters for replacing special rules
type SaveSpecialRulesInput struct {
	UID          string
	RequesterID  string
	SpecialRules []*entities.SpecialRule
}

// SaveCostsInput contains the output of a cost recalculation
type SaveCostsInput struct {
	UID             string
	RequesterID     string
	Units           []*entities.Unit
	UpgradePackages []*entities.UpgradePackage
}

// SaveOutput contains the book as stored after the write
type SaveOutput struct {
	ArmyBook *entities.ArmyBook
}

// UpdateMetadataInput contains a partial update of the descriptive fields
type UpdateMetadataInput struct {
	UID         string
	RequesterID string
	Metadata    entities.ArmyBookMetadata
}

// DeleteInput identifies the book to remove
type DeleteInput struct {
	UID         string
	RequesterID string
}

// ListPublicInput selects public books by game system
type ListPublicInput struct {
	GameSystemID int
}

// ListByOwnerInput selects the books of one user
type ListByOwnerInput struct {
	UserID string
}

// ListOutput contains the matching books
type ListOutput struct {
	ArmyBooks []*entities.ArmyBook
}
