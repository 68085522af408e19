package params

import (
	"fmt"

	"github.com/Konsultn-Engineering/sqlbind/utils"
)

// Describe renders the slot for a value-entry list, e.g. ":id (2 occurrences)".
func (s ParameterSlot) Describe() string {
	if s.OccurrenceCount <= 1 {
		return s.Label
	}
	return fmt.Sprintf("%s (%s)", s.Label, utils.Count("occurrence", s.OccurrenceCount))
}
