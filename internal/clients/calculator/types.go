package calculator

import (
	"math"

	"github.com/KirkDiggler/armybook-api/internal/entities"
)

const (
	defaultQuality = 4
	defaultDefense = 4
)

// NormalizedUnit is the statline the point-cost service prices
type NormalizedUnit struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Models       int                   `json:"models"`
	Quality      int                   `json:"quality"`
	Defense      int                   `json:"defense"`
	Equipment    []*entities.Equipment `json:"equipment"`
	SpecialRules []entities.UnitRule   `json:"specialRules"`
	Upgrades     []string              `json:"upgrades"`
}

// CustomRules maps special rule keys to house-rule point costs
type CustomRules map[string]float64

// OptionUpdate replaces one option of a package, addressed by position
type OptionUpdate struct {
	SectionIndex int              `json:"sectionIndex"`
	OptionIndex  int              `json:"optionIndex"`
	Option       *entities.Option `json:"option"`
}

// RecalculatePackageInput carries a package and the units that reference it
type RecalculatePackageInput struct {
	ArmyBookUID string                   `json:"armyBookUid"`
	Package     *entities.UpgradePackage `json:"upgradePackage"`
	Units       []*entities.Unit         `json:"units"`
	CustomRules CustomRules              `json:"customRules"`
}

// NormalizeUnit fills statline defaults and sets models to the unit size
func NormalizeUnit(u *entities.Unit) *NormalizedUnit {
	n := &NormalizedUnit{
		ID:           u.ID,
		Name:         u.Name,
		Models:       u.Size,
		Quality:      u.Quality,
		Defense:      u.Defense,
		Equipment:    u.Equipment,
		SpecialRules: u.SpecialRules,
		Upgrades:     u.Upgrades,
	}
	if n.Models < 1 {
		n.Models = 1
	}
	if n.Quality == 0 {
		n.Quality = defaultQuality
	}
	if n.Defense == 0 {
		n.Defense = defaultDefense
	}
	if n.Equipment == nil {
		n.Equipment = []*entities.Equipment{}
	}
	if n.SpecialRules == nil {
		n.SpecialRules = []entities.UnitRule{}
	}
	if n.Upgrades == nil {
		n.Upgrades = []string{}
	}
	return n
}

// WithModels returns a copy priced at a different model count
func (n *NormalizedUnit) WithModels(models int) *NormalizedUnit {
	c := *n
	c.Models = models
	return &c
}

// Round is round-half-up to a whole point
func Round(cost float64) int {
	return int(math.Floor(cost + 0.5))
}

// CustomRulesFrom collects the house-rule costs of the special rules.
// The result depends only on the rule list.
func CustomRulesFrom(rules []*entities.SpecialRule) CustomRules {
	out := CustomRules{}
	for _, r := range rules {
		if r == nil || r.Cost == nil || r.Key == "" {
			continue
		}
		out[r.Key] = *r.Cost
	}
	return out
}
