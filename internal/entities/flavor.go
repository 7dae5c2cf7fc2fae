package entities

import "strings"

// Flavor names a derived variant of an army book
type Flavor string

const (
	FlavorFull     Flavor = "full"
	FlavorSkirmish Flavor = "skirmish"

	skirmishSuffix = "-skirmish"
)

// ParseFlavouredUID splits "<uid>" or "<uid>-skirmish" into the canonical uid and flavor
func ParseFlavouredUID(flavouredUID string) (string, Flavor) {
	if uid, ok := strings.CutSuffix(flavouredUID, skirmishSuffix); ok && uid != "" {
		return uid, FlavorSkirmish
	}
	return flavouredUID, FlavorFull
}

// FlavouredUID is the inverse of ParseFlavouredUID
func FlavouredUID(uid string, flavor Flavor) string {
	if flavor == FlavorSkirmish {
		return uid + skirmishSuffix
	}
	return uid
}
