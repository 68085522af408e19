package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/sqlbind/scanner"
	"github.com/Konsultn-Engineering/sqlbind/utils"
)

// DefaultScanCacheSize bounds the scan cache used by the engine facade.
const DefaultScanCacheSize = 512

// CachedScan is the memoized scan of one SQL text.
type CachedScan struct {
	SQL         string
	Occurrences []scanner.Occurrence
}

// ScanCache memoizes scanner output keyed by SQL fingerprint. Entries carry
// the SQL text so a fingerprint collision is detected instead of served.
type ScanCache interface {
	GetScan(sql string) (*CachedScan, bool)
	SetScan(q *CachedScan)
}

type lruScanCache struct {
	data *lru.Cache[uint64, *CachedScan]
}

func NewScanCache(size int) ScanCache {
	if size <= 0 {
		size = DefaultScanCacheSize
	}
	c, _ := lru.New[uint64, *CachedScan](size)
	return &lruScanCache{data: c}
}

func (c *lruScanCache) GetScan(sql string) (*CachedScan, bool) {
	q, ok := c.data.Get(utils.FingerprintString(sql))
	if !ok || q.SQL != sql {
		return nil, false
	}
	return q, true
}

func (c *lruScanCache) SetScan(q *CachedScan) {
	c.data.Add(utils.FingerprintString(q.SQL), q)
}
