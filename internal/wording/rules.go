// Package wording rewrites army book text for a different game scale:
// pluralization, size suffix stripping and ordered description rewrites.
package wording

import (
	"regexp"
	"strings"
)

// Rule is a single named substitution applied to the first match only
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites the first match of the pattern. Replacement may reference
// capture groups with ${n}.
func (r Rule) Apply(text string) string {
	loc := r.Pattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	expanded := r.Pattern.ExpandString(nil, r.Replacement, text, loc)
	return text[:loc[0]] + string(expanded) + text[loc[1]:]
}

// Literal builds a rule matching text verbatim
func Literal(name, text, replacement string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(regexp.QuoteMeta(text)),
		Replacement: escapeTemplate(replacement),
	}
}

// Pattern builds a rule from a regular expression
func Pattern(name, expr, replacement string) Rule {
	return Rule{
		Name:        name,
		Pattern:     regexp.MustCompile(expr),
		Replacement: replacement,
	}
}

// RuleSet applies its rules in order, each once
type RuleSet []Rule

// Apply runs every rule over the text
func (rs RuleSet) Apply(text string) string {
	for _, r := range rs {
		text = r.Apply(text)
	}
	return text
}

func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

const friendlyUnitsWithin = `This model and all friendly units within 12"`

// RuleDescriptionRules turn hero auras into skirmish-scale area effects
var RuleDescriptionRules = RuleSet{
	Literal("hero-and-unit", "The hero and its unit", friendlyUnitsWithin),
	Literal("model-and-unit", "This model and its unit", friendlyUnitsWithin),
	Pattern("joined-unit-counts",
		`If the hero is part of a unit of (.*), the unit counts`,
		`All friendly units of ${1} within 12" count`),
}

// SectionLabelRules drop model counts from labels of single-model units
var SectionLabelRules = RuleSet{
	Literal("replace-one", "Replace one", "Replace"),
	Literal("replace-all", "Replace all", "Replace"),
	Pattern("replace-up-to", `Replace up to \w+`, "Replace"),
	Pattern("replace-with-up-to", `Replace with up to \w+`, "Replace"),
	Literal("upgrade-one-model", "Upgrade one model", "Upgrade"),
	Literal("upgrade-all-models", "Upgrade all models", "Upgrade"),
	Literal("upgrade-any-model", "Upgrade any model", "Upgrade"),
}

// RewriteRuleDescription applies RuleDescriptionRules
func RewriteRuleDescription(text string) string {
	return RuleDescriptionRules.Apply(text)
}

// CollapseSectionLabel applies SectionLabelRules and singularizes the result
func CollapseSectionLabel(label string) string {
	return Pluralize(SectionLabelRules.Apply(label), 1)
}

var sizeSuffixes = []string{" Squads", " Squad", " Mob"}

// StripSizeSuffix trims each size suffix at most once, in order
func StripSizeSuffix(name string) string {
	for _, suffix := range sizeSuffixes {
		name = strings.TrimSuffix(name, suffix)
	}
	return name
}
