package testutils

import (
	"time"

	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/testutils/builders"
)

const (
	// TestOwnerID owns every fixture book
	TestOwnerID = "user-owner"
	// TestArmyBookUID is the uid of CreateTestArmyBook
	TestArmyBookUID = "orc-marauders"
)

// TestModifiedAt is the modifiedAt of fixture books
var TestModifiedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// CreateTestArmyBook creates a small book exercising every pipeline stage:
//   - grunts: 12 pts per model, shrinks to 3 models and keeps its name suffix
//   - boss: 40 pts per model, stays single and loses " Mob"
//   - giant: 120 pts per model, discarded from skirmish output
//   - cannon: artillery, discarded from skirmish output
//
// Pair it with NewTestCalculator for matching prices.
func CreateTestArmyBook() *entities.ArmyBook {
	toughCost := 2.0

	return builders.NewArmyBookBuilder().
		WithUID(TestArmyBookUID).
		WithOwner(TestOwnerID).
		WithGameSystems(entities.GameSystemGrimdarkFuture).
		WithModified(TestModifiedAt, 3).
		WithUnits(
			builders.NewUnitBuilder("grunts", "Grunt Squad").WithSize(10).WithCost(120).
				WithUpgrades("pkg-grunts").WithWeapon("w1", "Rifle").WithSplitPage(2).Build(),
			builders.NewUnitBuilder("boss", "Chieftain Mob").WithSize(1).WithCost(40).
				WithUpgrades("pkg-boss").WithWeapon("w2", "Choppa").Build(),
			builders.NewUnitBuilder("giant", "Giant").WithSize(1).WithCost(120).Build(),
			builders.NewUnitBuilder("cannon", "Cannon").WithSize(1).WithCost(30).WithRule("artillery").Build(),
		).
		WithPackages(
			builders.NewPackage("pkg-grunts", "Replace one Rifle",
				builders.NewOption("opt-banner", "Banner", 5),
				builders.NewOption("opt-flamer", "Flamer", 60),
			),
			builders.NewPackage("pkg-boss", "Upgrade one model with",
				builders.NewOption("opt-armor", "Armor", 10),
			),
			builders.NewPackage("pkg-unused", "Add one model with",
				builders.NewOption("opt-extra", "Extra", 20),
			),
		).
		WithSpecialRules(
			&entities.SpecialRule{Key: "hero", Name: "Hero", Description: "The hero and its unit get Fearless."},
			&entities.SpecialRule{Key: "tough", Name: "Tough", HasRating: true, Cost: &toughCost},
		).
		Build()
}

// NewTestCalculator returns a fake calculator priced for CreateTestArmyBook
func NewTestCalculator() *FakeCalculator {
	calc := NewFakeCalculator()
	calc.PerModel["grunts"] = 12
	calc.PerModel["boss"] = 40
	calc.PerModel["giant"] = 120
	calc.PerModel["cannon"] = 30
	calc.OptionPerModel["opt-banner"] = 2
	calc.OptionPerModel["opt-flamer"] = 20
	calc.OptionPerModel["opt-armor"] = 10
	return calc
}
