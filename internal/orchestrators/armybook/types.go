package armybook

import (
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
)

// GetArmyBookInput defines the request for a flavored army book
type GetArmyBookInput struct {
	// FlavouredUID is "<uid>" or "<uid>-skirmish"
	FlavouredUID string
	RequesterID  string
	// TargetGameSystemID forces a skirmish derivation for that system. Zero
	// picks the counterpart of the book's first enabled system.
	TargetGameSystemID int
	// AuthoritativeCosts reprices the returned document without saving it
	AuthoritativeCosts bool
	// OwnedOnly hides public books of other users
	OwnedOnly bool
}

// GetArmyBookOutput defines the response for a flavored army book
type GetArmyBookOutput struct {
	ArmyBook *entities.ArmyBook
	Skipped  []entities.SkippedRecord
}

// RecalculateCostsInput defines the request to reprice and save a book
type RecalculateCostsInput struct {
	UID         string
	RequesterID string
}

// RecalculateCostsOutput contains the book as saved
type RecalculateCostsOutput struct {
	ArmyBook *entities.ArmyBook
	Skipped  []entities.SkippedRecord
}

// GetPdfInput defines the request for a rendered flavor
type GetPdfInput struct {
	FlavouredUID string
	RequesterID  string
}

// GetPdfOutput is the PDF ready for download
type GetPdfOutput struct {
	Bytes       []byte
	ContentType string
	Filename    string
	CacheState  metrics.LookupState
}

// ImportArmyBookInput defines the request to create a book from an upload
type ImportArmyBookInput struct {
	RequesterID string
	ArmyBook    *entities.ArmyBook
	// CostMode is forced onto every unit; empty means manual so uploaded
	// costs survive until the owner opts in to recalculation
	CostMode entities.CostMode
}

// ImportArmyBookOutput contains the stored book
type ImportArmyBookOutput struct {
	ArmyBook *entities.ArmyBook
	Skipped  []entities.SkippedRecord
}

// ListArmyBooksInput selects the public catalogue of one game system
type ListArmyBooksInput struct {
	GameSystemSlug string
}

// ListArmyBooksOutput lists public books, followed by the derived skirmish
// entries when the system is played at skirmish scale
type ListArmyBooksOutput struct {
	ArmyBooks []*entities.ArmyBookSummary
}

// ListMyArmyBooksInput selects the books of the requester
type ListMyArmyBooksInput struct {
	RequesterID string
}

// ListMyArmyBooksOutput lists the requester's books, newest first
type ListMyArmyBooksOutput struct {
	ArmyBooks []*entities.ArmyBookSummary
}

// CreateDetachmentInput defines a new book seeded with units of a parent
type CreateDetachmentInput struct {
	RequesterID string
	ParentUID   string
	Name        string
	Hint        string
	// GameSystemID of the new book; zero keeps the parent's systems
	GameSystemID int
	// CloneUnitIDs are parent units copied under fresh ids
	CloneUnitIDs []string
	// SyncUnitIDs are cloned units that follow later parent changes
	SyncUnitIDs []string
}

// CreateDetachmentOutput contains the stored detachment
type CreateDetachmentOutput struct {
	ArmyBook *entities.ArmyBook
}

// UpdateArmyBookInput defines a partial update of the descriptive fields
type UpdateArmyBookInput struct {
	UID         string
	RequesterID string
	Metadata    entities.ArmyBookMetadata
}

// UpdateArmyBookOutput contains the book as saved
type UpdateArmyBookOutput struct {
	ArmyBook *entities.ArmyBook
}

// DeleteArmyBookInput identifies the book to remove
type DeleteArmyBookInput struct {
	UID         string
	RequesterID string
}

// CheckOwnershipInput identifies the book and the claimed owner
type CheckOwnershipInput struct {
	UID         string
	RequesterID string
}

// CheckOwnershipOutput is the summary of a book the requester owns
type CheckOwnershipOutput struct {
	ArmyBook *entities.ArmyBookSummary
}
