package utils

import (
	"github.com/cespare/xxhash/v2"
)

// FingerprintString hashes SQL text for cache lookups.
func FingerprintString(s string) uint64 {
	return xxhash.Sum64String(s)
}
