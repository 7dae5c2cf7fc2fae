package costing

import (
	"github.com/KirkDiggler/armybook-api/internal/clients/calculator"
	"github.com/KirkDiggler/armybook-api/internal/entities"
)

// RecalculateCostsInput carries the book to reprice; it is never modified
type RecalculateCostsInput struct {
	ArmyBook *entities.ArmyBook
}

// RecalculateCostsOutput holds the repriced records ready for an atomic save
type RecalculateCostsOutput struct {
	Units           []*entities.Unit
	UpgradePackages []*entities.UpgradePackage
	Skipped         []entities.SkippedRecord
}

// RecalculateUnitsInput defines the unit stage request
type RecalculateUnitsInput struct {
	Units       []*entities.Unit
	CustomRules calculator.CustomRules
}

// RecalculateUnitsOutput defines the unit stage response
type RecalculateUnitsOutput struct {
	Units    []*entities.Unit
	Skipped  []entities.SkippedRecord
	Repriced int
}

// RecalculatePackagesInput defines the package stage request
type RecalculatePackagesInput struct {
	ArmyBookUID     string
	Units           []*entities.Unit
	UpgradePackages []*entities.UpgradePackage
	CustomRules     calculator.CustomRules
}

// RecalculatePackagesOutput defines the package stage response
type RecalculatePackagesOutput struct {
	UpgradePackages []*entities.UpgradePackage
	Skipped         []entities.SkippedRecord
	Repriced        int
}
