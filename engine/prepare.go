package engine

import (
	"slices"

	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/params"
	"github.com/Konsultn-Engineering/sqlbind/scanner"
	"go.uber.org/zap"
)

// Prepared is everything derived from one scan of a SQL text.
type Prepared struct {
	SQL         string
	Occurrences []scanner.Occurrence
	Slots       []params.ParameterSlot
	Grouping    params.Grouping
}

// Prepare scans sql once and derives both groupings from the result.
func (e *Engine) Prepare(sql string) Prepared {
	occs := e.scan(sql)
	return Prepared{
		SQL:         sql,
		Occurrences: occs,
		Slots:       params.GroupForDisplay(occs),
		Grouping:    params.GroupForRewrite(occs),
	}
}

func (e *Engine) scan(sql string) []scanner.Occurrence {
	if e.scans != nil {
		if cached, ok := e.scans.GetScan(sql); ok {
			e.logger.Debug("scan cache hit", zap.Int("occurrences", len(cached.Occurrences)))
			return slices.Clone(cached.Occurrences)
		}
	}

	occs := scanner.Scan(sql)
	if e.scans != nil {
		e.scans.SetScan(&cache.CachedScan{SQL: sql, Occurrences: slices.Clone(occs)})
	}
	e.logger.Debug("scanned sql", zap.Int("length", len(sql)), zap.Int("occurrences", len(occs)))
	return occs
}
