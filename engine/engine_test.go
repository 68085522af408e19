package engine

import (
	"testing"
	"time"

	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/params"
	"github.com/Konsultn-Engineering/sqlbind/scanner"
	"github.com/Konsultn-Engineering/sqlbind/types"
	"github.com/Konsultn-Engineering/sqlbind/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(opts ...Option) *Engine {
	f := value.NewFormatter(value.WithCache(cache.NewFormatCache(64)))
	return New(append([]Option{WithFormatter(f)}, opts...)...)
}

// staleScanCache serves one fixed scan for every SQL text.
type staleScanCache struct {
	occurrences []scanner.Occurrence
}

func (s *staleScanCache) GetScan(sql string) (*cache.CachedScan, bool) {
	return &cache.CachedScan{SQL: sql, Occurrences: s.occurrences}, true
}

func (s *staleScanCache) SetScan(*cache.CachedScan) {}

// =========================================================================
// Prepare Tests
// =========================================================================

func TestPrepare(t *testing.T) {
	e := newTestEngine()
	p := e.Prepare("SELECT * FROM t WHERE x = :id AND y = :id AND z = ?")

	require.Len(t, p.Occurrences, 3)
	require.Len(t, p.Slots, 2)
	assert.Equal(t, "id", p.Slots[0].SlotKey)
	assert.Equal(t, 2, p.Slots[0].OccurrenceCount)
	assert.Equal(t, "?2", p.Slots[1].SlotKey)
	assert.Equal(t, 1, p.Slots[1].OccurrenceCount)
	assert.Equal(t, 2, p.Grouping.Count)
}

func TestPrepareUsesScanCache(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := newTestEngine(WithLogger(zap.New(core)))

	sql := "SELECT :a"
	first := e.Prepare(sql)
	second := e.Prepare(sql)

	assert.Equal(t, first.Occurrences, second.Occurrences)
	assert.Equal(t, 1, logs.FilterMessage("scan cache hit").Len())
}

func TestPrepareReturnsCopyOfCachedScan(t *testing.T) {
	e := newTestEngine()
	sql := "SELECT :a, :b"

	p := e.Prepare(sql)
	p.Occurrences[0].Position = 99

	again := e.Prepare(sql)
	assert.Equal(t, 7, again.Occurrences[0].Position)

	b := e.Bind(sql, dialect.TemplateNumbered, nil)
	assert.Equal(t, "SELECT $1, $2", b.SQL)
	assert.Empty(t, b.Skipped)
}

func TestPrepareWithoutScanCache(t *testing.T) {
	e := newTestEngine(WithScanCache(nil))
	assert.Len(t, e.Prepare("SELECT :a, :b").Occurrences, 2)
}

// =========================================================================
// Bind Tests
// =========================================================================

func TestBind(t *testing.T) {
	e := newTestEngine()
	sql := "SELECT * FROM t WHERE x = :id AND y = :id AND z = ?"

	t.Run("Numbered", func(t *testing.T) {
		b := e.Bind(sql, dialect.TemplateNumbered, params.Values{"id": 5, "?": "z"})
		assert.Equal(t, "SELECT * FROM t WHERE x = $1 AND y = $1 AND z = $2", b.SQL)
		assert.Equal(t, []any{5, "z"}, b.Args)
	})

	t.Run("ColonNameKeepsBare", func(t *testing.T) {
		b := e.Bind(sql, dialect.TemplateColonName, params.Values{"id": 5})
		assert.Equal(t, sql, b.SQL)
		assert.Equal(t, []string{"id", ""}, b.Names)
		assert.Empty(t, b.Skipped)
	})

	t.Run("Default", func(t *testing.T) {
		e := newTestEngine(WithTemplate(dialect.TemplateQuestion))
		b := e.BindDefault(sql, params.Values{"id": 5})
		assert.Equal(t, "SELECT * FROM t WHERE x = ? AND y = ? AND z = ?", b.SQL)
		assert.Equal(t, []any{5, 5, nil}, b.Args)
	})
}

func TestBindForDriver(t *testing.T) {
	e := newTestEngine()

	b, err := e.BindForDriver("SELECT :a, :b", "sqlserver", params.Values{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, "SELECT @a, @b", b.SQL)

	b, err = e.BindForDriver("SELECT :a, :b", "MySQL", params.Values{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, "SELECT ?, ?", b.SQL)

	_, err = e.BindForDriver("SELECT 1", "nosuchdb", nil)
	assert.ErrorIs(t, err, dialect.ErrUnknownDriver)
}

func TestBindLogsSkipped(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	stale := &staleScanCache{occurrences: scanner.Scan("SELECT :gone")}
	e := newTestEngine(WithLogger(zap.New(core)), WithScanCache(stale))

	b := e.Bind("SELECT :here", dialect.TemplateNumbered, nil)
	assert.Equal(t, "SELECT :here", b.SQL)
	require.Len(t, b.Skipped, 1)

	entries := logs.FilterMessage("placeholder left unrewritten").All()
	require.Len(t, entries, 1)
	assert.Equal(t, ":gone", entries[0].ContextMap()["expected"])
}

// =========================================================================
// Value Tests
// =========================================================================

func TestInferFormatCompare(t *testing.T) {
	e := newTestEngine(WithMaxLength(4))

	typ, ok := e.Infer("2025-07-09")
	require.True(t, ok)
	assert.Equal(t, types.Date, typ)

	_, ok = e.Infer(nil)
	assert.False(t, ok)

	assert.Equal(t, "abcd", e.Format("abcdefgh", types.String))
	assert.Equal(t, "1,234,567.89", e.Format(1234567.89, types.Decimal))
	assert.Equal(t, "'x'", e.FormatWith("x", types.String, value.Options{}))

	s, typ := e.FormatInferred(90 * time.Minute)
	assert.Equal(t, types.Duration, typ)
	assert.Equal(t, "01:30:00.000", s)

	assert.Equal(t, -1, e.Compare("9", "10", types.Int))
	assert.Equal(t, 1, e.Compare("b", "A", types.String))
}
