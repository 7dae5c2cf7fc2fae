// Package skirmish derives the skirmish flavor of an army book: units are
// resized into fixed buckets by their single-model cost, renamed for the new
// size, and expensive units and upgrades are dropped.
package skirmish

//go:generate mockgen -destination=mock/mock_service.go -package=skirmishmock github.com/KirkDiggler/armybook-api/internal/services/skirmish Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/armybook-api/internal/clients/calculator"
	"github.com/KirkDiggler/armybook-api/internal/entities"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/metrics"
	"github.com/KirkDiggler/armybook-api/internal/services/costing"
	"github.com/KirkDiggler/armybook-api/internal/wording"
)

const (
	// Units and their single model at or above this are not playable at skirmish scale
	maxUnitCost = 100
	// Options at or above this are dropped
	maxOptionCost = 50

	artilleryRuleKey = "artillery"
	addModelPrefix   = "Add one model with"
)

type sizeBucket struct {
	below float64
	size  int
}

// Checked in order; the first bucket whose bound exceeds the single-model
// cost wins, otherwise the unit is fielded as one model.
var sizeBuckets = []sizeBucket{
	{below: 15, size: 3},
	// shadowed by the bucket above, never selected
	{below: 5, size: 5},
}

// Service defines the skirmish derivation
type Service interface {
	DeriveSkirmishFlavor(ctx context.Context, input *DeriveSkirmishFlavorInput) (*DeriveSkirmishFlavorOutput, error)
}

// DeriveSkirmishFlavorInput carries the canonical book and the target system
type DeriveSkirmishFlavorInput struct {
	ArmyBook           *entities.ArmyBook
	TargetGameSystemID int
}

// DeriveSkirmishFlavorOutput holds the derived book and quarantined records
type DeriveSkirmishFlavorOutput struct {
	ArmyBook *entities.ArmyBook
	Skipped  []entities.SkippedRecord
}

// Config holds the dependencies for the skirmish service
type Config struct {
	Calculator calculator.Client
	Costing    costing.Service
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
	if c.Costing == nil {
		vb.RequiredField("Costing")
	}
	return vb.Build()
}

type service struct {
	calc    calculator.Client
	costing costing.Service
	metrics metrics.Recorder
}

// NewService creates a skirmish service
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
		costing: cfg.Costing,
		metrics: rec,
	}, nil
}

func (s *service) DeriveSkirmishFlavor(ctx context.Context, input *DeriveSkirmishFlavorInput) (out *DeriveSkirmishFlavorOutput, err error) {
	if input == nil || input.ArmyBook == nil {
		return nil, errors.InvalidArgument("army book is required")
	}
	target, ok := entities.LookupGameSystem(input.TargetGameSystemID)
	if !ok || !target.IsSkirmish() {
		return nil, errors.InvalidArgumentf("game system %d is not a skirmish system", input.TargetGameSystemID).
			WithMeta("game_system_id", input.TargetGameSystemID)
	}

	start := time.Now()
	defer func() {
		s.metrics.ObserveDerivation(metrics.StageSkirmish, time.Since(start), err == nil)
	}()

	book := input.ArmyBook.Clone()
	var skipped []entities.SkippedRecord

	units := make([]*entities.Unit, 0, len(book.Units))
	for _, u := range book.Units {
		if vErr := entities.ValidateUnit(u); vErr != nil {
			skipped = append(skipped, entities.SkippedUnit(u, vErr))
			continue
		}
		keep, rErr := s.resize(ctx, u)
		if rErr != nil {
			return nil, rErr
		}
		if keep {
			units = append(units, u)
		}
	}
	book.Units = units

	for _, r := range book.SpecialRules {
		if r != nil {
			r.Description = wording.RewriteRuleDescription(r.Description)
		}
	}

	packages := make([]*entities.UpgradePackage, 0, len(book.UpgradePackages))
	for _, pkg := range book.UpgradePackages {
		if vErr := entities.ValidatePackage(pkg); vErr != nil {
			skipped = append(skipped, entities.SkippedPackage(pkg, vErr))
			continue
		}
		if maxReferencingSize(units, pkg.UID) == 1 {
			for _, section := range pkg.Sections {
				section.Label = wording.CollapseSectionLabel(section.Label)
			}
		}
		packages = append(packages, pkg)
	}

	repriced, err := s.costing.RecalculatePackages(ctx, &costing.RecalculatePackagesInput{
		ArmyBookUID:     book.UID,
		Units:           units,
		UpgradePackages: packages,
		CustomRules:     calculator.CustomRules{},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reprice skirmish upgrade packages")
	}
	book.UpgradePackages = trimPackages(repriced.UpgradePackages)

	book.Flavor = entities.FlavorSkirmish
	book.FlavouredUID = entities.FlavouredUID(book.UID, entities.FlavorSkirmish)
	book.Autogenerated = true
	book.Aberration = target.Aberration

	s.metrics.IncSkippedRecords(metrics.StageSkirmish, entities.RecordKindUnit, countKind(skipped, entities.RecordKindUnit))
	s.metrics.IncSkippedRecords(metrics.StageSkirmish, entities.RecordKindUpgradePackage, countKind(skipped, entities.RecordKindUpgradePackage))

	slog.InfoContext(ctx, "derived skirmish army book",
		"army_book_uid", book.UID,
		"aberration", target.Aberration,
		"units_in", len(input.ArmyBook.Units),
		"units_out", len(book.Units),
		"skipped", len(skipped))

	return &DeriveSkirmishFlavorOutput{
		ArmyBook: book,
		Skipped:  skipped,
	}, nil
}

// resize buckets the unit in place and reports whether it survives
func (s *service) resize(ctx context.Context, u *entities.Unit) (bool, error) {
	normalized := calculator.NormalizeUnit(u)

	single, err := s.calc.UnitCost(ctx, normalized.WithModels(1), calculator.CustomRules{})
	if err != nil {
		return false, errors.WrapUpstream(err, "failed to price single model of unit "+u.ID)
	}

	discard := false
	switch {
	case single >= maxUnitCost:
		discard = true
		u.Size = 1
	default:
		u.Size = bucketSize(single)
	}

	cost, err := s.calc.UnitCost(ctx, normalized.WithModels(u.Size), calculator.CustomRules{})
	if err != nil {
		return false, errors.WrapUpstream(err, "failed to price resized unit "+u.ID)
	}
	u.Cost = calculator.Round(cost)

	if discard || u.Cost >= maxUnitCost || u.HasRule(artilleryRuleKey) {
		return false, nil
	}

	if u.Size == 1 {
		u.Name = wording.StripSizeSuffix(u.Name)
	}
	u.Name = wording.Pluralize(u.Name, u.Size)
	for _, e := range u.Equipment {
		name := wording.Pluralize(e.DisplayName(), u.Size)
		e.Name = name
		e.Label = name
	}
	u.SplitPageNumber = 1

	return true, nil
}

func bucketSize(singleModelCost float64) int {
	for _, b := range sizeBuckets {
		if singleModelCost < b.below {
			return b.size
		}
	}
	return 1
}

// maxReferencingSize is the largest size among units listing the package, 0 if none do
func maxReferencingSize(units []*entities.Unit, packageUID string) int {
	maxSize := 0
	for _, u := range units {
		if u.References(packageUID) && u.Size > maxSize {
			maxSize = u.Size
		}
	}
	return maxSize
}

// trimPackages drops expensive options, then empty sections and model-adding sections
func trimPackages(packages []*entities.UpgradePackage) []*entities.UpgradePackage {
	for _, pkg := range packages {
		sections := make([]*entities.Section, 0, len(pkg.Sections))
		for _, section := range pkg.Sections {
			options := make([]*entities.Option, 0, len(section.Options))
			for _, o := range section.Options {
				if o.Cost < maxOptionCost {
					options = append(options, o)
				}
			}
			section.Options = options
			if len(options) == 0 || strings.HasPrefix(section.Label, addModelPrefix) {
				continue
			}
			sections = append(sections, section)
		}
		pkg.Sections = sections
	}
	return packages
}

func countKind(records []entities.SkippedRecord, kind string) int {
	n := 0
	for _, r := range records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
