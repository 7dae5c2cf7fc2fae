// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/armybook-api/internal/entities"
)

// ArmyBookBuilder provides a fluent interface for building test ArmyBook instances
type ArmyBookBuilder struct {
	book *entities.ArmyBook
}

// NewArmyBookBuilder creates a new builder with minimal defaults
func NewArmyBookBuilder() *ArmyBookBuilder {
	return &ArmyBookBuilder{
		book: &entities.ArmyBook{
			UID:                "book-test-123",
			UserID:             "user-test-123",
			EnabledGameSystems: []int{entities.GameSystemGrimdarkFuture},
			Name:               "Orc Marauders",
			VersionString:      "1.0",
			Units:              []*entities.Unit{},
			UpgradePackages:    []*entities.UpgradePackage{},
			SpecialRules:       []*entities.SpecialRule{},
			Spells:             []*entities.Spell{},
			ModifiedAt:         time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Revision:           1,
		},
	}
}

// WithUID sets the army book uid
func (b *ArmyBookBuilder) WithUID(uid string) *ArmyBookBuilder {
	b.book.UID = uid
	return b
}

// WithOwner sets the owning user
func (b *ArmyBookBuilder) WithOwner(userID string) *ArmyBookBuilder {
	b.book.UserID = userID
	return b
}

// WithName sets the book name
func (b *ArmyBookBuilder) WithName(name string) *ArmyBookBuilder {
	b.book.Name = name
	return b
}

// WithGameSystems replaces the enabled game systems
func (b *ArmyBookBuilder) WithGameSystems(ids ...int) *ArmyBookBuilder {
	b.book.EnabledGameSystems = ids
	return b
}

// WithPublic marks the book public
func (b *ArmyBookBuilder) WithPublic(public bool) *ArmyBookBuilder {
	b.book.Public = public
	return b
}

// WithUnits appends units
func (b *ArmyBookBuilder) WithUnits(units ...*entities.Unit) *ArmyBookBuilder {
	b.book.Units = append(b.book.Units, units...)
	return b
}

// WithPackages appends upgrade packages
func (b *ArmyBookBuilder) WithPackages(packages ...*entities.UpgradePackage) *ArmyBookBuilder {
	b.book.UpgradePackages = append(b.book.UpgradePackages, packages...)
	return b
}

// WithSpecialRules appends special rules
func (b *ArmyBookBuilder) WithSpecialRules(rules ...*entities.SpecialRule) *ArmyBookBuilder {
	b.book.SpecialRules = append(b.book.SpecialRules, rules...)
	return b
}

// WithModified sets modifiedAt and the revision counter
func (b *ArmyBookBuilder) WithModified(at time.Time, revision int64) *ArmyBookBuilder {
	b.book.ModifiedAt = at
	b.book.Revision = revision
	return b
}

// Build returns the constructed army book
func (b *ArmyBookBuilder) Build() *entities.ArmyBook {
	return b.book
}

// UnitBuilder provides a fluent interface for building test Unit instances
type UnitBuilder struct {
	unit *entities.Unit
}

// NewUnitBuilder creates an automatic unit of one model
func NewUnitBuilder(id, name string) *UnitBuilder {
	return &UnitBuilder{
		unit: &entities.Unit{
			ID:              id,
			Name:            name,
			Size:            1,
			CostMode:        entities.CostModeAutomatic,
			Quality:         4,
			Defense:         4,
			Equipment:       []*entities.Equipment{},
			Upgrades:        []string{},
			SpecialRules:    []entities.UnitRule{},
			SplitPageNumber: 1,
		},
	}
}

// WithSize sets the model count
func (b *UnitBuilder) WithSize(size int) *UnitBuilder {
	b.unit.Size = size
	return b
}

// WithCost sets the current cost
func (b *UnitBuilder) WithCost(cost int) *UnitBuilder {
	b.unit.Cost = cost
	return b
}

// Manual marks the cost as manually maintained
func (b *UnitBuilder) Manual() *UnitBuilder {
	b.unit.CostMode = entities.CostModeManual
	return b
}

// WithUpgrades sets the referenced package uids
func (b *UnitBuilder) WithUpgrades(uids ...string) *UnitBuilder {
	b.unit.Upgrades = uids
	return b
}

// WithRule adds a special rule reference
func (b *UnitBuilder) WithRule(key string) *UnitBuilder {
	b.unit.SpecialRules = append(b.unit.SpecialRules, entities.UnitRule{Key: key, Name: key})
	return b
}

// WithWeapon adds an equipment entry
func (b *UnitBuilder) WithWeapon(id, name string) *UnitBuilder {
	b.unit.Equipment = append(b.unit.Equipment, &entities.Equipment{ID: id, Name: name, Label: name, Attacks: 1})
	return b
}

// WithSplitPage sets the split page number
func (b *UnitBuilder) WithSplitPage(n int) *UnitBuilder {
	b.unit.SplitPageNumber = n
	return b
}

// Build returns the constructed unit
func (b *UnitBuilder) Build() *entities.Unit {
	return b.unit
}

// NewPackage builds a single-section package
func NewPackage(uid, sectionLabel string, options ...*entities.Option) *entities.UpgradePackage {
	return &entities.UpgradePackage{
		UID: uid,
		Sections: []*entities.Section{
			{ID: uid + "-s0", Label: sectionLabel, Options: options},
		},
	}
}

// NewOption builds an option with a cost
func NewOption(id, label string, cost int) *entities.Option {
	return &entities.Option{ID: id, Label: label, Cost: cost, Gains: []*entities.Equipment{}, Replaces: []string{}}
}
