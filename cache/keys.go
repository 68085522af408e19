package cache

import (
	"fmt"

	"github.com/Konsultn-Engineering/sqlbind/utils"
)

// FormatKey identifies one formatted rendering: the value's content digest
// and Go type, the canonical type it was rendered as, and the option bits
// that change the output. Locale and Currency are set by formatters that
// share a cache.
type FormatKey struct {
	Content  uint64
	Kind     string
	Type     string
	Grouping bool
	Locale   string
	Currency string
}

// NewFormatKey digests value and builds its key.
func NewFormatKey(value any, typ string, grouping bool) FormatKey {
	return FormatKey{
		Content:  utils.ContentHash(value),
		Kind:     fmt.Sprintf("%T", value),
		Type:     typ,
		Grouping: grouping,
	}
}
