package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/armybook-api/internal/clients/calculator"
	"github.com/KirkDiggler/armybook-api/internal/entities"
)

// FakeCalculator is a deterministic point-cost service.
//
// A unit costs (PerModel[id] + sum of custom rule costs for its rules) * models;
// units missing from PerModel cost DefaultPerModel per model. Package options
// listed in OptionPerModel are repriced at OptionPerModel[optionID] * the largest
// referencing unit size.
type FakeCalculator struct {
	PerModel        map[string]float64
	DefaultPerModel float64
	OptionPerModel  map[string]float64

	UnitErr    error
	PackageErr error
	// BadIndex makes RecalculatePackage address a section that does not exist
	BadIndex bool

	mu    sync.Mutex
	calls []string
}

// NewFakeCalculator creates a calculator with empty price lists
func NewFakeCalculator() *FakeCalculator {
	return &FakeCalculator{
		PerModel:        map[string]float64{},
		DefaultPerModel: 10,
		OptionPerModel:  map[string]float64{},
	}
}

var _ calculator.Client = (*FakeCalculator)(nil)

// UnitCost implements calculator.Client
func (f *FakeCalculator) UnitCost(_ context.Context, unit *calculator.NormalizedUnit, customRules calculator.CustomRules) (float64, error) {
	f.record(fmt.Sprintf("unit:%s:%d", unit.ID, unit.Models))
	if f.UnitErr != nil {
		return 0, f.UnitErr
	}

	perModel, ok := f.PerModel[unit.ID]
	if !ok {
		perModel = f.DefaultPerModel
	}
	for _, r := range unit.SpecialRules {
		perModel += customRules[r.Key]
	}
	return perModel * float64(unit.Models), nil
}

// RecalculatePackage implements calculator.Client
func (f *FakeCalculator) RecalculatePackage(_ context.Context, input *calculator.RecalculatePackageInput) ([]calculator.OptionUpdate, error) {
	f.record("package:" + input.Package.UID)
	if f.PackageErr != nil {
		return nil, f.PackageErr
	}
	if f.BadIndex {
		return []calculator.OptionUpdate{{SectionIndex: len(input.Package.Sections), Option: &entities.Option{}}}, nil
	}

	maxSize := 0
	for _, u := range input.Units {
		if u.Size > maxSize {
			maxSize = u.Size
		}
	}

	var updates []calculator.OptionUpdate
	for si, section := range input.Package.Sections {
		for oi, option := range section.Options {
			perModel, ok := f.OptionPerModel[option.ID]
			if !ok {
				continue
			}
			repriced := option.Clone()
			repriced.Cost = calculator.Round(perModel * float64(maxSize))
			updates = append(updates, calculator.OptionUpdate{SectionIndex: si, OptionIndex: oi, Option: repriced})
		}
	}
	return updates, nil
}

// Calls returns the recorded calls in order
func (f *FakeCalculator) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeCalculator) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}
