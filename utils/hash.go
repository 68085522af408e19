package utils

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns a stable digest of v. Strings and byte slices are hashed
// as-is; anything else is stringified first, via JSON when it marshals and
// fmt otherwise.
func ContentHash(v any) uint64 {
	switch val := v.(type) {
	case string:
		return xxhash.Sum64String(val)
	case []byte:
		return xxhash.Sum64(val)
	case fmt.Stringer:
		return xxhash.Sum64String(val.String())
	}
	if b, err := json.Marshal(v); err == nil {
		return xxhash.Sum64(b)
	}
	return xxhash.Sum64String(fmt.Sprint(v))
}
