package entities

import (
	"github.com/KirkDiggler/armybook-api/internal/errors"
)

var validCostModes = []string{string(CostModeAutomatic), string(CostModeManual)}

// Validate checks the fields the pipeline depends on
func (u *Unit) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("id", u.ID, vb)
	errors.ValidateRequired("name", u.Name, vb)
	errors.ValidateMin("size", u.Size, 1, vb)
	if u.Upgrades == nil {
		vb.RequiredField("upgrades")
	}
	if u.CostMode != "" {
		errors.ValidateEnum("costMode", string(u.CostMode), validCostModes, vb)
	}
	for _, e := range u.Equipment {
		if e == nil {
			vb.InvalidField("equipment", "contains a null entry")
			break
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid unit %q", u.ID)
	}
	return nil
}

// Validate checks the package identity and section structure
func (p *UpgradePackage) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("uid", p.UID, vb)
	for _, s := range p.Sections {
		if s == nil {
			vb.InvalidField("sections", "contains a null entry")
			break
		}
		for _, o := range s.Options {
			if o == nil {
				vb.InvalidField("options", "contains a null entry")
				break
			}
		}
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid upgrade package %q", p.UID)
	}
	return nil
}

// SkippedUnit builds the report entry for an invalid unit
func SkippedUnit(u *Unit, err error) SkippedRecord {
	id := ""
	if u != nil {
		id = u.ID
	}
	return SkippedRecord{Kind: RecordKindUnit, ID: id, Reason: err.Error()}
}

// SkippedPackage builds the report entry for an invalid upgrade package
func SkippedPackage(p *UpgradePackage, err error) SkippedRecord {
	uid := ""
	if p != nil {
		uid = p.UID
	}
	return SkippedRecord{Kind: RecordKindUpgradePackage, ID: uid, Reason: err.Error()}
}

// ValidateUnit validates a possibly nil unit
func ValidateUnit(u *Unit) error {
	if u == nil {
		return errors.InvalidArgument("unit is null")
	}
	return u.Validate()
}

// ValidatePackage validates a possibly nil upgrade package
func ValidatePackage(p *UpgradePackage) error {
	if p == nil {
		return errors.InvalidArgument("upgrade package is null")
	}
	return p.Validate()
}
