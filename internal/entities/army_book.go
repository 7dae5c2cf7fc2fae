// Package entities holds the army book document model shared by the
// derivation pipeline, the repositories and the transport handlers.
package entities

import (
	"encoding/json"
	"time"
)

// ArmyBook is the canonical document describing a faction
type ArmyBook struct {
	UID                string            `json:"uid"`
	UserID             string            `json:"userId"`
	EnabledGameSystems []int             `json:"enabledGameSystems"`
	Name               string            `json:"name"`
	Hint               string            `json:"hint"`
	Background         string            `json:"background"`
	VersionString      string            `json:"versionString"`
	Units              []*Unit           `json:"units"`
	UpgradePackages    []*UpgradePackage `json:"upgradePackages"`
	SpecialRules       []*SpecialRule    `json:"specialRules"`
	Spells             []*Spell          `json:"spells"`
	ModifiedAt         time.Time         `json:"modifiedAt"`
	Revision           int64             `json:"revision"`
	Official           bool              `json:"official"`
	Public             bool              `json:"public"`

	// Set only on derived documents
	Flavor        Flavor `json:"flavor,omitempty"`
	FlavouredUID  string `json:"flavouredUid,omitempty"`
	Autogenerated bool   `json:"autogenerated,omitempty"`
	Aberration    string `json:"aberration,omitempty"`
}

// VisibleTo reports whether the requester may read the book
func (a *ArmyBook) VisibleTo(requesterID string) bool {
	return a.Public || (requesterID != "" && a.UserID == requesterID)
}

// OwnedBy reports whether the requester owns the book
func (a *ArmyBook) OwnedBy(requesterID string) bool {
	return requesterID != "" && a.UserID == requesterID
}

// DefaultSplitPageNumber is assumed for units stored without one
const DefaultSplitPageNumber = 1

// FillDefaults sets values older documents were stored without
func (a *ArmyBook) FillDefaults() {
	for _, u := range a.Units {
		if u != nil && u.SplitPageNumber == 0 {
			u.SplitPageNumber = DefaultSplitPageNumber
		}
	}
}

// CostMode controls whether a unit's cost is recomputed
type CostMode string

const (
	CostModeAutomatic CostMode = "automatic"
	CostModeManual    CostMode = "manual"

	legacyCostModeManual = "manually"
)

// UnmarshalJSON accepts the legacy "manually" spelling
func (m *CostMode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == legacyCostModeManual {
		raw = string(CostModeManual)
	}
	*m = CostMode(raw)
	return nil
}

// IsAutomatic is true only for an explicit automatic mode; an empty mode is sticky
func (m CostMode) IsAutomatic() bool {
	return m == CostModeAutomatic
}

// Unit is a single entry of the army list
type Unit struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Size            int          `json:"size"`
	Cost            int          `json:"cost"`
	CostMode        CostMode     `json:"costMode"`
	Quality         int          `json:"quality"`
	Defense         int          `json:"defense"`
	Equipment       []*Equipment `json:"equipment"`
	Upgrades        []string     `json:"upgrades"`
	SpecialRules    []UnitRule   `json:"specialRules"`
	SplitPageNumber int          `json:"splitPageNumber"`
	// ClonedFrom and SyncedFrom are set on units copied into a detachment
	ClonedFrom *UnitLink `json:"clone,omitempty"`
	SyncedFrom *UnitLink `json:"sync,omitempty"`
}

// UnitLink points a detachment unit back at the unit it was copied from
type UnitLink struct {
	ParentArmyBookUID string `json:"parentArmyBookId"`
	UnitID            string `json:"unitId"`
	SyncAutomatic     bool   `json:"syncAutomatic,omitempty"`
}

// References reports whether the unit lists the upgrade package
func (u *Unit) References(packageUID string) bool {
	for _, uid := range u.Upgrades {
		if uid == packageUID {
			return true
		}
	}
	return false
}

// HasRule reports whether the unit carries a special rule with the key
func (u *Unit) HasRule(key string) bool {
	for _, r := range u.SpecialRules {
		if r.Key == key {
			return true
		}
	}
	return false
}

// UnitRule references a special rule from a unit or weapon
type UnitRule struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Rating string `json:"rating,omitempty"`
}

// Equipment is a weapon or item carried by a unit or granted by an option
type Equipment struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Label        string     `json:"label"`
	Count        int        `json:"count,omitempty"`
	Range        int        `json:"range"`
	Attacks      int        `json:"attacks"`
	SpecialRules []UnitRule `json:"specialRules"`
}

// DisplayName falls back to the label when the name is empty
func (e *Equipment) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Label
}

// UpgradePackage groups optional modifications for the units referencing it
type UpgradePackage struct {
	UID      string     `json:"uid"`
	Hint     string     `json:"hint"`
	Sections []*Section `json:"sections"`
}

// Section is a labelled set of options within an upgrade package
type Section struct {
	ID      string    `json:"id"`
	Label   string    `json:"label"`
	Options []*Option `json:"options"`
}

// Option is a single purchasable upgrade
type Option struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Cost     int          `json:"cost"`
	Gains    []*Equipment `json:"gains"`
	Replaces []string     `json:"replaces"`
}

// SpecialRule is a rule definition on the army book
type SpecialRule struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HasRating   bool     `json:"hasRating"`
	Cost        *float64 `json:"cost,omitempty"`
}

// Spell is a psychic or magic power
type Spell struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Effect    string `json:"effect"`
}

// SkippedRecord reports a record quarantined by a pipeline stage
type SkippedRecord struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

const (
	RecordKindUnit           = "unit"
	RecordKindUpgradePackage = "upgradePackage"
)
