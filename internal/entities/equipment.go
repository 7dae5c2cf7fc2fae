package entities

import (
	"sort"

	"github.com/KirkDiggler/armybook-api/internal/pkg/idgen"
)

// ExplodeEquipment expands every entry with Count > 1 into Count count-free
// entries, gives each entry a fresh id, fills an empty name from the label,
// and stably sorts the result by name. The input is not modified.
func ExplodeEquipment(list []*Equipment, ids idgen.Generator) []*Equipment {
	out := make([]*Equipment, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		n := e.Count
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			c := e.Clone()
			c.Name = e.DisplayName()
			c.Count = 0
			c.ID = ids.Generate()
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out
}
