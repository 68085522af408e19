package utils

import (
	"sync"

	"github.com/gertd/go-pluralize"
)

var (
	pluralizer     *pluralize.Client
	pluralizerOnce sync.Once
)

// Count renders n with word inflected to match, e.g. "2 days", "1 occurrence".
func Count(word string, n int) string {
	pluralizerOnce.Do(func() {
		pluralizer = pluralize.NewClient()
	})
	return pluralizer.Pluralize(word, n, true)
}
