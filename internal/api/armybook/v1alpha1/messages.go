package v1alpha1

import "github.com/KirkDiggler/armybook-api/internal/entities"

// RequesterMetadataKey carries the requesting user id
const RequesterMetadataKey = "x-user-id"

type GetArmyBookRequest struct {
	FlavouredUID       string `json:"flavouredUid"`
	TargetGameSystemID int    `json:"targetGameSystemId,omitempty"`
	AuthoritativeCosts bool   `json:"authoritativeCosts,omitempty"`
	OwnedOnly          bool   `json:"ownedOnly,omitempty"`
}

type GetArmyBookResponse struct {
	ArmyBook *entities.ArmyBook       `json:"armyBook"`
	Skipped  []entities.SkippedRecord `json:"skipped,omitempty"`
}

type RecalculateCostsRequest struct {
	UID string `json:"uid"`
}

type RecalculateCostsResponse struct {
	ArmyBook *entities.ArmyBook       `json:"armyBook"`
	Skipped  []entities.SkippedRecord `json:"skipped,omitempty"`
}

type GetPdfRequest struct {
	FlavouredUID string `json:"flavouredUid"`
}

type GetPdfResponse struct {
	Pdf         []byte `json:"pdf"`
	ContentType string `json:"contentType"`
	Filename    string `json:"filename"`
	CacheState  string `json:"cacheState"`
}

type ImportArmyBookRequest struct {
	ArmyBook *entities.ArmyBook `json:"armyBook"`
	CostMode string             `json:"costMode,omitempty"`
}

type ImportArmyBookResponse struct {
	ArmyBook *entities.ArmyBook       `json:"armyBook"`
	Skipped  []entities.SkippedRecord `json:"skipped,omitempty"`
}

type ListArmyBooksRequest struct {
	GameSystemSlug string `json:"gameSystemSlug"`
}

type ListArmyBooksResponse struct {
	ArmyBooks []*entities.ArmyBookSummary `json:"armyBooks"`
}

type ListMyArmyBooksRequest struct{}

type ListMyArmyBooksResponse struct {
	ArmyBooks []*entities.ArmyBookSummary `json:"armyBooks"`
}

type CreateDetachmentRequest struct {
	ParentArmyBookUID string   `json:"parentArmyBookId"`
	Name              string   `json:"name"`
	Hint              string   `json:"hint,omitempty"`
	GameSystemID      int      `json:"gameSystemId,omitempty"`
	Clones            []string `json:"clones"`
	Syncs             []string `json:"syncs,omitempty"`
}

type CreateDetachmentResponse struct {
	ArmyBook *entities.ArmyBook `json:"armyBook"`
}

type UpdateArmyBookRequest struct {
	UID      string                    `json:"uid"`
	Metadata entities.ArmyBookMetadata `json:"metadata"`
}

type UpdateArmyBookResponse struct {
	ArmyBook *entities.ArmyBook `json:"armyBook"`
}

type DeleteArmyBookRequest struct {
	UID string `json:"uid"`
}

type DeleteArmyBookResponse struct{}

type CheckOwnershipRequest struct {
	UID string `json:"uid"`
}

type CheckOwnershipResponse struct {
	ArmyBook *entities.ArmyBookSummary `json:"armyBook"`
}
