package entities

import (
	"slices"
	"time"
)

// ArmyBookSummary is the list view of a book, without its content
type ArmyBookSummary struct {
	UID                string    `json:"uid"`
	UserID             string    `json:"userId"`
	EnabledGameSystems []int     `json:"enabledGameSystems"`
	Name               string    `json:"name"`
	Hint               string    `json:"hint"`
	VersionString      string    `json:"versionString"`
	Official           bool      `json:"official"`
	Public             bool      `json:"public"`
	ModifiedAt         time.Time `json:"modifiedAt"`
	Revision           int64     `json:"revision"`
	UnitCount          int       `json:"unitCount"`

	// Set on entries that list a derived flavor
	Flavor     Flavor `json:"flavor,omitempty"`
	Aberration string `json:"aberration,omitempty"`
}

// Summary returns the list view of the book
func (a *ArmyBook) Summary() *ArmyBookSummary {
	return &ArmyBookSummary{
		UID:                a.UID,
		UserID:             a.UserID,
		EnabledGameSystems: slices.Clone(a.EnabledGameSystems),
		Name:               a.Name,
		Hint:               a.Hint,
		VersionString:      a.VersionString,
		Official:           a.Official,
		Public:             a.Public,
		ModifiedAt:         a.ModifiedAt,
		Revision:           a.Revision,
		UnitCount:          len(a.Units),
		Flavor:             FlavorFull,
	}
}

// ArmyBookMetadata is a partial update of the descriptive fields. Nil fields
// are left unchanged.
type ArmyBookMetadata struct {
	Name          *string `json:"name,omitempty"`
	Hint          *string `json:"hint,omitempty"`
	Background    *string `json:"background,omitempty"`
	VersionString *string `json:"versionString,omitempty"`
	Official      *bool   `json:"official,omitempty"`
	Public        *bool   `json:"public,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (m ArmyBookMetadata) IsEmpty() bool {
	return m.Name == nil && m.Hint == nil && m.Background == nil &&
		m.VersionString == nil && m.Official == nil && m.Public == nil
}

// Apply writes the set fields onto the book
func (m ArmyBookMetadata) Apply(book *ArmyBook) {
	if m.Name != nil {
		book.Name = *m.Name
	}
	if m.Hint != nil {
		book.Hint = *m.Hint
	}
	if m.Background != nil {
		book.Background = *m.Background
	}
	if m.VersionString != nil {
		book.VersionString = *m.VersionString
	}
	if m.Official != nil {
		book.Official = *m.Official
	}
	if m.Public != nil {
		book.Public = *m.Public
	}
}

// PackagesReferencedBy returns the packages listed by any of the units, in
// package order
func PackagesReferencedBy(packages []*UpgradePackage, units []*Unit) []*UpgradePackage {
	out := make([]*UpgradePackage, 0, len(packages))
	for _, pkg := range packages {
		if pkg == nil {
			continue
		}
		for _, u := range units {
			if u != nil && u.References(pkg.UID) {
				out = append(out, pkg)
				break
			}
		}
	}
	return out
}
