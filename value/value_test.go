package value

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/types"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func newTestFormatter(opts ...FormatterOption) *Formatter {
	return NewFormatter(append([]FormatterOption{WithCache(cache.NewFormatCache(64))}, opts...)...)
}

// =========================================================================
// Formatter Tests
// =========================================================================

func TestFormat(t *testing.T) {
	f := newTestFormatter()
	at := time.Date(2025, 7, 9, 12, 34, 56, 0, time.UTC)

	tests := []struct {
		name string
		v    any
		t    types.Type
		opts Options
		want string
	}{
		{"Nil", nil, types.String, DefaultOptions(), ""},
		{"String", "hello", types.String, DefaultOptions(), "hello"},
		{"StringTruncated", "abcdef", types.String, Options{MaxLength: 3, Display: true}, "abc"},
		{"StringLiteral", "O'Brien", types.String, Options{}, "'O''Brien'"},
		{"Email", "a@b.io", types.Email, DefaultOptions(), "a@b.io"},

		{"DecimalGrouped", 1234567.89, types.Decimal, DefaultOptions(), "1,234,567.89"},
		{"DecimalUngrouped", 1234567.89, types.Decimal, Options{Display: true}, "1234567.89"},
		{"DecimalNotDisplay", 1234567.89, types.Decimal, Options{ThousandsSeparator: true}, "1234567.89"},
		{"DecimalNegative", "-1234.5", types.Decimal, DefaultOptions(), "-1,234.5"},
		{"DecimalExact", decimal.RequireFromString("12345678901234567890.123456789"), types.Decimal, DefaultOptions(), "12,345,678,901,234,567,890.123456789"},
		{"BigInt", "123456789012345678901234567890", types.BigInt, DefaultOptions(), "123,456,789,012,345,678,901,234,567,890"},
		{"SmallDecimal", "999", types.Decimal, DefaultOptions(), "999"},
		{"NumberPlain", 1234567.5, types.Number, DefaultOptions(), "1234567.5"},
		{"IntPlain", 1234567, types.Int, DefaultOptions(), "1234567"},
		{"DBTypeName", "1234.5", "NUMERIC(10,2)", DefaultOptions(), "1,234.5"},
		{"NotANumber", "abc", types.Decimal, DefaultOptions(), "abc"},
		{"MoneyNotDisplay", 1234.567, types.Money, Options{}, "1234.57"},

		{"BoolTrue", true, types.Boolean, DefaultOptions(), "true"},
		{"BoolFromString", "f", types.Boolean, DefaultOptions(), "false"},
		{"BitFromInt", 1, types.Bit, DefaultOptions(), "true"},

		{"Date", at, types.Date, DefaultOptions(), "2025-07-09"},
		{"DateFromString", "2025-07-09T12:34:56Z", types.Date, DefaultOptions(), "2025-07-09"},
		{"Time", at, types.Time, DefaultOptions(), "12:34:56"},
		{"DateTime", at, types.DateTime, DefaultOptions(), "2025-07-09T12:34:56.000Z"},
		{"PgTimestamp", pgtype.Timestamp{Time: at, Valid: true}, types.DateTime, DefaultOptions(), "2025-07-09T12:34:56.000Z"},
		{"BadDate", "someday", types.Date, DefaultOptions(), "someday"},

		{"Duration", 3*time.Hour + 4*time.Minute + 5*time.Second + 6*time.Millisecond, types.Duration, DefaultOptions(), "03:04:05.006"},
		{"DurationExactlyADay", 24 * time.Hour, types.Duration, DefaultOptions(), "24:00:00.000"},
		{"DurationDays", 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second, types.Duration, DefaultOptions(), "2 days 03:04:05.000"},
		{"DurationOneDay", "P1DT2H", types.Duration, DefaultOptions(), "1 day 02:00:00.000"},
		{"DurationNegative", -90 * time.Second, types.Duration, DefaultOptions(), "-00:01:30.000"},
		{"DurationMillis", 1500, types.Duration, DefaultOptions(), "00:00:01.500"},
		{"DurationInterval", pgtype.Interval{Days: 2, Microseconds: 3_600_000_000, Valid: true}, types.Duration, DefaultOptions(), "2 days 01:00:00.000"},
		{"DurationVerbose", "3 days 04:05:06", types.Duration, DefaultOptions(), "3 days 04:05:06.000"},
		{"DurationOverflowISO", "P300Y", types.Duration, DefaultOptions(), "P300Y"},
		{"DurationOverflowMillis", int64(10_000_000_000_000), types.Duration, DefaultOptions(), "10000000000000"},
		{"DurationLongISO", "P200Y", types.Duration, DefaultOptions(), "73000 days 00:00:00.000"},

		{"JSONMap", map[string]any{"a": 1}, types.JSON, DefaultOptions(), `{"a":1}`},
		{"JSONText", `{"a": 1}`, types.JSON, DefaultOptions(), `{"a": 1}`},
		{"Geometry", "POINT(1 2)", types.Geometry, DefaultOptions(), "POINT(1 2)"},
		{"Enum", "active", types.Enum, DefaultOptions(), "active"},
		{"ObjectFallback", []int{1}, types.Object, DefaultOptions(), "[1]"},

		{"BinaryText", "not bytes", types.Binary, DefaultOptions(), "not bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.v, tt.t, tt.opts))
		})
	}
}

func TestFormatArray(t *testing.T) {
	f := newTestFormatter()

	assert.Equal(t, "[1, 2, 3]", f.Format([]any{1, 2, 3}, types.ArrayOf(types.Int), DefaultOptions()))
	assert.Equal(t, "[1, 2, 3]", f.Format([]int{1, 2, 3}, types.ArrayOf(types.Int), DefaultOptions()))
	assert.Equal(t, "[1,000, 2,000]", f.Format([]string{"1000", "2000"}, types.ArrayOf(types.Decimal), DefaultOptions()))
	assert.Equal(t, "[a, b]", f.Format(`["a", "b"]`, "text[]", DefaultOptions()))
	assert.Equal(t, "[]", f.Format([]any{}, types.ArrayOf(types.Int), DefaultOptions()))
	assert.Equal(t, "[1, x]", f.Format([]any{1, "x"}, types.Array, DefaultOptions()))

	t.Run("Truncated", func(t *testing.T) {
		opts := Options{MaxLength: 8, Display: true}
		got := f.Format([]string{"aaaa", "bbbb", "cccc"}, types.ArrayOf(types.String), opts)
		assert.Equal(t, "[aaaa, ...]", got)
	})

	t.Run("FirstElementAlwaysShown", func(t *testing.T) {
		opts := Options{MaxLength: 2, Display: true}
		got := f.Format([]int{12345, 2}, types.ArrayOf(types.Int), opts)
		assert.Equal(t, "[12345, ...]", got)
	})
}

func TestFormatMoney(t *testing.T) {
	f := newTestFormatter()
	got := f.Format(1234.567, types.Money, DefaultOptions())
	assert.True(t, strings.HasSuffix(got, "1,234.57"), got)
	assert.NotEqual(t, "1,234.57", got, "currency symbol expected")

	neg := f.Format(-5, types.Money, DefaultOptions())
	assert.True(t, strings.HasPrefix(neg, "-"), neg)
}

func TestFormatLocale(t *testing.T) {
	shared := cache.NewFormatCache(64)
	en := NewFormatter(WithCache(shared))
	de := NewFormatter(WithCache(shared), WithLocale(language.German))

	assert.Equal(t, "1,234,567.89", en.Format(1234567.89, types.Decimal, DefaultOptions()))
	assert.Equal(t, "1.234.567,89", de.Format(1234567.89, types.Decimal, DefaultOptions()))
	assert.Equal(t, 2, shared.Len())

	ungrouped := Options{Display: true}
	assert.Equal(t, "1234567.89", en.Format(1234567.89, types.Decimal, ungrouped))
	assert.Equal(t, "1234567,89", de.Format(1234567.89, types.Decimal, ungrouped))
}

func TestFormatCurrencySharedCache(t *testing.T) {
	shared := cache.NewFormatCache(64)
	usd := NewFormatter(WithCache(shared))
	eur := NewFormatter(WithCache(shared), WithCurrency(currency.EUR))
	fresh := NewFormatter(WithCache(cache.NewFormatCache(8)), WithCurrency(currency.EUR))

	dollars := usd.Format(12.5, types.Money, DefaultOptions())
	euros := eur.Format(12.5, types.Money, DefaultOptions())

	assert.NotEqual(t, dollars, euros)
	assert.Equal(t, fresh.Format(12.5, types.Money, DefaultOptions()), euros)
	assert.Equal(t, 2, shared.Len())
}

func TestFormatCacheKeysByGoType(t *testing.T) {
	f := newTestFormatter()
	at := time.Date(2025, 7, 9, 12, 34, 56, 0, time.UTC)

	assert.Equal(t, "1e+21", f.Format("1e+21", types.Number, DefaultOptions()))
	assert.Equal(t, "1000000000000000000000", f.Format(1e21, types.Number, DefaultOptions()))

	f.Format(at.String(), types.DateTime, DefaultOptions())
	assert.Equal(t, "2025-07-09T12:34:56.000Z", f.Format(at, types.DateTime, DefaultOptions()))
}

func TestFormatIdempotent(t *testing.T) {
	c := cache.NewFormatCache(64)
	f := NewFormatter(WithCache(c))

	values := []struct {
		v any
		t types.Type
	}{
		{1234567.89, types.Decimal},
		{"x@example.com", types.Email},
		{map[string]any{"k": []int{1, 2}}, types.JSON},
		{90 * time.Minute, types.Duration},
	}

	for _, v := range values {
		first := f.Format(v.v, v.t, DefaultOptions())
		second := f.Format(v.v, v.t, DefaultOptions())
		assert.Equal(t, first, second)
	}

	stats := c.Stats()
	assert.Equal(t, uint64(len(values)), stats.Hits)
	assert.Equal(t, len(values), stats.Len)
}

func TestFormatDisplayFalseNotCached(t *testing.T) {
	c := cache.NewFormatCache(64)
	f := NewFormatter(WithCache(c))

	f.Format("abc", types.String, Options{})
	assert.Equal(t, 0, c.Len())
}

func TestFormatBinary(t *testing.T) {
	store := NewBlobStore(4)
	f := newTestFormatter(WithBlobStore(store))

	handle := f.Format([]byte{0xde, 0xad}, types.Blob, DefaultOptions())
	require.True(t, strings.HasPrefix(handle, BlobPrefix), handle)

	b, ok := store.Lookup(handle)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad}, b)

	_, ok = store.Lookup("nope")
	assert.False(t, ok)

	again := f.Format([]byte{0xde, 0xad}, types.Blob, DefaultOptions())
	assert.Equal(t, handle, again)
	assert.Equal(t, 1, store.Len())

	other := f.Format([]byte{0xbe, 0xef}, types.Blob, DefaultOptions())
	assert.NotEqual(t, handle, other)
}

func TestBlobStoreEviction(t *testing.T) {
	store := NewBlobStore(2)
	first := store.Register([]byte("a"))
	store.Register([]byte("b"))
	store.Register([]byte("c"))

	assert.Equal(t, 2, store.Len())
	_, ok := store.Lookup(first)
	assert.False(t, ok)

	readded := store.Register([]byte("a"))
	assert.NotEqual(t, first, readded)
	b, ok := store.Lookup(readded)
	require.True(t, ok)
	assert.Equal(t, []byte("a"), b)
}

// =========================================================================
// Comparator Tests
// =========================================================================

func TestCompare(t *testing.T) {
	c := NewComparator(language.English)
	day := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		t    types.Type
		want int
	}{
		{"NilFirst", nil, "a", types.String, -1},
		{"NilLast", "a", nil, types.String, 1},
		{"BothNil", nil, nil, types.String, 0},

		{"CollatedCase", "a", "B", types.String, -1},
		{"CollatedEqual", "abc", "abc", types.Email, 0},

		{"DecimalNumeric", "10", "9", types.Decimal, 1},
		{"DecimalScale", "1.10", 1.1, types.Decimal, 0},
		{"IntVsFloat", 2, 2.5, types.Int, -1},
		{"BigInt", "123456789012345678901234567891", "123456789012345678901234567890", types.BigInt, 1},
		{"Unparseable", "abc", "1", types.Number, 0},

		{"BoolOrder", false, true, types.Boolean, -1},
		{"BoolEqual", "t", true, types.Bit, 0},

		{"DateTime", "2025-01-01", day, types.DateTime, 1},
		{"DateSame", day, "2024-12-31", types.Date, 0},
		{"Duration", "PT1H", 90 * time.Minute, types.Duration, -1},
		{"BadDate", "soon", day, types.DateTime, 0},

		{"Object", map[string]any{"a": 1}, map[string]any{"a": 2}, types.JSON, -1},
		{"Array", []int{1, 3}, []int{1, 2}, types.ArrayOf(types.Int), 1},

		{"BinaryLength", []byte{1, 2, 3}, []byte{1}, types.Blob, 1},
		{"BinaryStringProxy", "ab", "abc", types.Binary, -1},

		{"UnknownType", "a", "b", "mystery", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Compare(tt.a, tt.b, tt.t))
		})
	}
}

func TestCompareConcurrent(t *testing.T) {
	c := NewComparator(language.English)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, -1, c.Compare("apple", "banana", types.String))
			}
		}()
	}
	wg.Wait()
}
