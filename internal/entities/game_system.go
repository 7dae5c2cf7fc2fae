package entities

// GameSystem is an entry of the fixed game-system catalogue
type GameSystem struct {
	ID         int
	Slug       string
	Aberration string
	// SkirmishOf is the full-scale system this one shrinks, zero for full systems
	SkirmishOf int
}

// IsSkirmish reports whether the system is played at skirmish scale
func (g GameSystem) IsSkirmish() bool {
	return g.SkirmishOf != 0
}

const (
	GameSystemGrimdarkFuture          = 2
	GameSystemGrimdarkFutureFirefight = 3
	GameSystemAgeOfFantasy            = 4
	GameSystemAgeOfFantasySkirmish    = 5
)

var gameSystems = []GameSystem{
	{ID: GameSystemGrimdarkFuture, Slug: "grimdark-future", Aberration: "GF"},
	{ID: GameSystemGrimdarkFutureFirefight, Slug: "grimdark-future-firefight", Aberration: "GFF", SkirmishOf: GameSystemGrimdarkFuture},
	{ID: GameSystemAgeOfFantasy, Slug: "age-of-fantasy", Aberration: "AOF"},
	{ID: GameSystemAgeOfFantasySkirmish, Slug: "age-of-fantasy-skirmish", Aberration: "AOFS", SkirmishOf: GameSystemAgeOfFantasy},
}

// LookupGameSystem finds a catalogue entry by id
func LookupGameSystem(id int) (GameSystem, bool) {
	for _, gs := range gameSystems {
		if gs.ID == id {
			return gs, true
		}
	}
	return GameSystem{}, false
}

// LookupGameSystemBySlug finds a catalogue entry by its slug
func LookupGameSystemBySlug(slug string) (GameSystem, bool) {
	for _, gs := range gameSystems {
		if gs.Slug == slug {
			return gs, true
		}
	}
	return GameSystem{}, false
}

// SkirmishCounterpart returns the skirmish-scale system for id. A skirmish
// system is its own counterpart.
func SkirmishCounterpart(id int) (GameSystem, bool) {
	gs, ok := LookupGameSystem(id)
	if !ok {
		return GameSystem{}, false
	}
	if gs.IsSkirmish() {
		return gs, true
	}
	for _, candidate := range gameSystems {
		if candidate.SkirmishOf == id {
			return candidate, true
		}
	}
	return GameSystem{}, false
}

// FirstSkirmishTarget picks the counterpart of the first enabled system that has one
func FirstSkirmishTarget(enabled []int) (GameSystem, bool) {
	for _, id := range enabled {
		if gs, ok := SkirmishCounterpart(id); ok {
			return gs, true
		}
	}
	return GameSystem{}, false
}
