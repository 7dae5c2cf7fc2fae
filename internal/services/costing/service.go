// Package costing recomputes unit and upgrade package point costs.
//
// Recalculation is a two-stage cascade: every automatic unit is repriced
// first, then every upgrade package referenced by at least one unit is
// repriced against an immutable snapshot of the repriced units. A failure in
// either stage fails the whole run and no partial output is returned.
package costing

//go:generate mockgen -destination=mock/mock_service.go -package=costingmock github.com/KirkDiggler/armybook-api/internal/services/costing Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/clients/calculator"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
)

// Service defines the cost recalculation operations
type Service interface {
	// RecalculateCosts runs both stages over a book
	RecalculateCosts(ctx context.Context, input *RecalculateCostsInput) (*RecalculateCostsOutput, error)

	// RecalculateUnits runs the unit stage only
	RecalculateUnits(ctx context.Context, input *RecalculateUnitsInput) (*RecalculateUnitsOutput, error)

	// RecalculatePackages runs the package stage only
	RecalculatePackages(ctx context.Context, input *RecalculatePackagesInput) (*RecalculatePackagesOutput, error)
}

// Config holds the dependencies for the costing service
type Config struct {
	Calculator calculator.Client
	Metrics    metrics.Recorder
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Calculator == nil {
		vb.RequiredField("Calculator")
	}
	return vb.Build()
}

type service struct {
	calc    calculator.Client
	metrics metrics.Recorder
}

// NewService creates a costing service
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rec := cfg.Metrics
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	return &service{
		calc:    cfg.Calculator,
		metrics: rec,
	}, nil
}

func (s *service) RecalculateCosts(ctx context.Context, input *RecalculateCostsInput) (*RecalculateCostsOutput, error) {
	if input == nil || input.ArmyBook == nil {
		return nil, errors.InvalidArgument("army book is required")
	}
	book := input.ArmyBook
	rules := calculator.CustomRulesFrom(book.SpecialRules)

	unitsOut, err := s.RecalculateUnits(ctx, &RecalculateUnitsInput{
		Units:       book.Units,
		CustomRules: rules,
	})
	if err != nil {
		return nil, err
	}

	packagesOut, err := s.RecalculatePackages(ctx, &RecalculatePackagesInput{
		ArmyBookUID:     book.UID,
		Units:           unitsOut.Units,
		UpgradePackages: book.UpgradePackages,
		CustomRules:     rules,
	})
	if err != nil {
		return nil, err
	}

	skipped := append(unitsOut.Skipped, packagesOut.Skipped...)

	slog.InfoContext(ctx, "recalculated army book costs",
		"army_book_uid", book.UID,
		"units_repriced", unitsOut.Repriced,
		"packages_repriced", packagesOut.Repriced,
		"skipped", len(skipped))

	return &RecalculateCostsOutput{
		Units:           unitsOut.Units,
		UpgradePackages: packagesOut.UpgradePackages,
		Skipped:         skipped,
	}, nil
}

func (s *service) RecalculateUnits(ctx context.Context, input *RecalculateUnitsInput) (out *RecalculateUnitsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	start := time.Now()
	defer func() {
		s.metrics.ObserveDerivation(metrics.StageUnits, time.Since(start), err == nil)
	}()

	units := entities.CloneUnits(input.Units)
	result := &RecalculateUnitsOutput{Units: units}

	for _, u := range units {
		if vErr := entities.ValidateUnit(u); vErr != nil {
			result.Skipped = append(result.Skipped, entities.SkippedUnit(u, vErr))
			continue
		}
		if !u.CostMode.IsAutomatic() {
			continue
		}

		cost, cErr := s.calc.UnitCost(ctx, calculator.NormalizeUnit(u), input.CustomRules)
		if cErr != nil {
			return nil, errors.WrapUpstream(cErr, "failed to price unit "+u.ID)
		}
		u.Cost = calculator.Round(cost)
		result.Repriced++
	}

	s.metrics.IncSkippedRecords(metrics.StageUnits, entities.RecordKindUnit, len(result.Skipped))
	return result, nil
}

func (s *service) RecalculatePackages(ctx context.Context, input *RecalculatePackagesInput) (out *RecalculatePackagesOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	start := time.Now()
	defer func() {
		s.metrics.ObserveDerivation(metrics.StagePackages, time.Since(start), err == nil)
	}()

	snapshot := make([]*entities.Unit, 0, len(input.Units))
	for _, u := range input.Units {
		if entities.ValidateUnit(u) == nil {
			snapshot = append(snapshot, u.Clone())
		}
	}

	packages := entities.ClonePackages(input.UpgradePackages)
	result := &RecalculatePackagesOutput{UpgradePackages: packages}

	for _, pkg := range packages {
		if vErr := entities.ValidatePackage(pkg); vErr != nil {
			result.Skipped = append(result.Skipped, entities.SkippedPackage(pkg, vErr))
			continue
		}

		referencing := referencingUnits(snapshot, pkg.UID)
		if len(referencing) == 0 {
			continue
		}

		updates, cErr := s.calc.RecalculatePackage(ctx, &calculator.RecalculatePackageInput{
			ArmyBookUID: input.ArmyBookUID,
			Package:     pkg.Clone(),
			Units:       referencing,
			CustomRules: input.CustomRules,
		})
		if cErr != nil {
			return nil, errors.WrapUpstream(cErr, "failed to recalculate upgrade package "+pkg.UID)
		}
		if aErr := applyUpdates(pkg, updates); aErr != nil {
			return nil, aErr
		}
		result.Repriced++
	}

	s.metrics.IncSkippedRecords(metrics.StagePackages, entities.RecordKindUpgradePackage, len(result.Skipped))
	return result, nil
}

func referencingUnits(units []*entities.Unit, packageUID string) []*entities.Unit {
	var out []*entities.Unit
	for _, u := range units {
		if u.References(packageUID) {
			out = append(out, u)
		}
	}
	return out
}

// applyUpdates replaces options positionally; any out-of-range address fails the package
func applyUpdates(pkg *entities.UpgradePackage, updates []calculator.OptionUpdate) error {
	for _, up := range updates {
		if up.SectionIndex < 0 || up.SectionIndex >= len(pkg.Sections) {
			return errors.Upstreamf("package %s: section index %d out of range", pkg.UID, up.SectionIndex).
				WithMeta("upgrade_package_uid", pkg.UID)
		}
		section := pkg.Sections[up.SectionIndex]
		if up.OptionIndex < 0 || up.OptionIndex >= len(section.Options) {
			return errors.Upstreamf("package %s: option index %d out of range in section %d",
				pkg.UID, up.OptionIndex, up.SectionIndex).
				WithMeta("upgrade_package_uid", pkg.UID)
		}
		if up.Option == nil {
			return errors.Upstreamf("package %s: empty option at %d/%d", pkg.UID, up.SectionIndex, up.OptionIndex)
		}
		section.Options[up.OptionIndex] = up.Option.Clone()
	}
	return nil
}
