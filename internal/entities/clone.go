package entities

// Clone returns a deep copy of the book
func (a *ArmyBook) Clone() *ArmyBook {
	if a == nil {
		return nil
	}
	out := *a
	if a.EnabledGameSystems != nil {
		out.EnabledGameSystems = append([]int{}, a.EnabledGameSystems...)
	}
	out.Units = CloneUnits(a.Units)
	out.UpgradePackages = ClonePackages(a.UpgradePackages)
	if a.SpecialRules != nil {
		out.SpecialRules = make([]*SpecialRule, len(a.SpecialRules))
		for i, r := range a.SpecialRules {
			out.SpecialRules[i] = r.Clone()
		}
	}
	if a.Spells != nil {
		out.Spells = make([]*Spell, len(a.Spells))
		for i, sp := range a.Spells {
			if sp != nil {
				c := *sp
				out.Spells[i] = &c
			}
		}
	}
	return &out
}

// CloneUnits deep copies a unit list, preserving nil entries
func CloneUnits(units []*Unit) []*Unit {
	if units == nil {
		return nil
	}
	out := make([]*Unit, len(units))
	for i, u := range units {
		out[i] = u.Clone()
	}
	return out
}

// ClonePackages deep copies a package list, preserving nil entries
func ClonePackages(packages []*UpgradePackage) []*UpgradePackage {
	if packages == nil {
		return nil
	}
	out := make([]*UpgradePackage, len(packages))
	for i, p := range packages {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the unit
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	out := *u
	out.Equipment = cloneEquipmentList(u.Equipment)
	if u.Upgrades != nil {
		out.Upgrades = append([]string{}, u.Upgrades...)
	}
	out.SpecialRules = cloneUnitRules(u.SpecialRules)
	if u.ClonedFrom != nil {
		link := *u.ClonedFrom
		out.ClonedFrom = &link
	}
	if u.SyncedFrom != nil {
		link := *u.SyncedFrom
		out.SyncedFrom = &link
	}
	return &out
}

// Clone returns a deep copy of the equipment entry
func (e *Equipment) Clone() *Equipment {
	if e == nil {
		return nil
	}
	out := *e
	out.SpecialRules = cloneUnitRules(e.SpecialRules)
	return &out
}

// Clone returns a deep copy of the package
func (p *UpgradePackage) Clone() *UpgradePackage {
	if p == nil {
		return nil
	}
	out := *p
	if p.Sections != nil {
		out.Sections = make([]*Section, len(p.Sections))
		for i, s := range p.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the section
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	out := *s
	if s.Options != nil {
		out.Options = make([]*Option, len(s.Options))
		for i, o := range s.Options {
			out.Options[i] = o.Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the option
func (o *Option) Clone() *Option {
	if o == nil {
		return nil
	}
	out := *o
	out.Gains = cloneEquipmentList(o.Gains)
	if o.Replaces != nil {
		out.Replaces = append([]string{}, o.Replaces...)
	}
	return &out
}

// Clone returns a deep copy of the rule
func (r *SpecialRule) Clone() *SpecialRule {
	if r == nil {
		return nil
	}
	out := *r
	if r.Cost != nil {
		cost := *r.Cost
		out.Cost = &cost
	}
	return &out
}

func cloneEquipmentList(list []*Equipment) []*Equipment {
	if list == nil {
		return nil
	}
	out := make([]*Equipment, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

func cloneUnitRules(rules []UnitRule) []UnitRule {
	if rules == nil {
		return nil
	}
	return append([]UnitRule{}, rules...)
}
