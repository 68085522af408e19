package value

import (
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlbind/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders values of one canonical type. Compare never panics:
// values that cannot be interpreted as the type compare equal.
type Comparator struct {
	mu       sync.Mutex
	collator *collate.Collator
}

// NewComparator creates a Comparator collating strings for tag.
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{
		collator: collate.New(tag),
	}
}

// Compare returns -1, 0 or 1. nil sorts before everything else.
func (c *Comparator) Compare(a, b any, t types.Type) (result int) {
	defer func() {
		if r := recover(); r != nil {
			result = 0
		}
	}()

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	canon := types.Canonical(t)
	if canon.IsArray() {
		return compareJSON(a, b)
	}

	switch types.ToBaseType(canon) {
	case types.Number:
		x, err := toDecimal(a)
		if err != nil {
			return 0
		}
		y, err := toDecimal(b)
		if err != nil {
			return 0
		}
		return x.Cmp(y)

	case types.Boolean:
		x, err := toBool(a)
		if err != nil {
			return 0
		}
		y, err := toBool(b)
		if err != nil {
			return 0
		}
		return compareBool(x, y)

	case types.DateTime:
		x, ok := epochMillis(a, canon)
		if !ok {
			return 0
		}
		y, ok := epochMillis(b, canon)
		if !ok {
			return 0
		}
		return compareInt(x, y)

	case types.Object, types.Array:
		return compareJSON(a, b)

	case types.Binary:
		return compareInt(int64(byteLen(a)), int64(byteLen(b)))
	}

	return c.compareStrings(toString(a), toString(b))
}

func (c *Comparator) compareStrings(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

// epochMillis normalizes a temporal value. Durations count from zero.
func epochMillis(v any, t types.Type) (int64, bool) {
	if t == types.Duration {
		d, err := toDuration(v)
		return d.Milliseconds(), err == nil
	}
	ts, err := toTime(v)
	return ts.UnixMilli(), err == nil
}

func compareJSON(a, b any) int {
	x, err := toJSON(a)
	if err != nil {
		return 0
	}
	y, err := toJSON(b)
	if err != nil {
		return 0
	}
	return strings.Compare(x, y)
}

func byteLen(v any) int {
	switch val := v.(type) {
	case []byte:
		return len(val)
	case string:
		return len(val)
	}
	return len(toString(v))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
