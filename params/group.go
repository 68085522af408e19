package params

import (
	"sort"
	"strconv"

	"github.com/Konsultn-Engineering/sqlbind/scanner"
)

// =========================================================================
// Rewrite Grouping
// =========================================================================

// Grouping assigns each occurrence the 1-based index it is rewritten with.
// Named occurrences share the index of their name, assigned in first-seen
// order; positional and bare occurrences each get their own.
type Grouping struct {
	Indexes []int          // parallel to the occurrence slice
	Names   map[string]int // named parameter -> index
	Count   int            // number of distinct indexes
}

// GroupForRewrite builds the rewrite grouping of occurrences, which must be
// sorted by position as the scanner returns them.
func GroupForRewrite(occurrences []scanner.Occurrence) Grouping {
	g := Grouping{
		Indexes: make([]int, len(occurrences)),
		Names:   make(map[string]int),
	}

	for i, o := range occurrences {
		if o.Kind == scanner.Named {
			idx, ok := g.Names[o.Key]
			if !ok {
				g.Count++
				idx = g.Count
				g.Names[o.Key] = idx
			}
			g.Indexes[i] = idx
			continue
		}
		g.Count++
		g.Indexes[i] = g.Count
	}

	return g
}

// =========================================================================
// Display Grouping
// =========================================================================

// ParameterSlot is one editable parameter in a value-entry surface.
type ParameterSlot struct {
	SlotKey         string
	Kind            scanner.Kind
	OccurrenceCount int
	FirstPosition   int
	Label           string
}

// SlotKey derives the display-grouping key of an occurrence. Named
// parameters merge by name and positional ones by number; a bare mark has no
// identity in the source, so each keeps its own "?index" key.
func SlotKey(o scanner.Occurrence) string {
	switch o.Kind {
	case scanner.Positional:
		return "$" + o.Key
	case scanner.Bare:
		return "?" + strconv.Itoa(o.SequenceIndex)
	default:
		return o.Key
	}
}

// GroupForDisplay merges occurrences into slots ordered by first position.
func GroupForDisplay(occurrences []scanner.Occurrence) []ParameterSlot {
	slots := make([]ParameterSlot, 0, len(occurrences))
	bySlot := make(map[string]int, len(occurrences))

	for _, o := range occurrences {
		key := SlotKey(o)
		if i, ok := bySlot[key]; ok {
			slots[i].OccurrenceCount++
			if o.Position < slots[i].FirstPosition {
				slots[i].FirstPosition = o.Position
				slots[i].Label = o.Literal()
			}
			continue
		}
		bySlot[key] = len(slots)
		slots = append(slots, ParameterSlot{
			SlotKey:         key,
			Kind:            o.Kind,
			OccurrenceCount: 1,
			FirstPosition:   o.Position,
			Label:           o.Literal(),
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].FirstPosition < slots[j].FirstPosition
	})
	return slots
}
