// Package value renders and orders result-cell values by canonical type.
package value

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/types"
	"github.com/Konsultn-Engineering/sqlbind/utils"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"

	truncationMarker = "..."
	elementSeparator = ", "
)

// Options control one rendering.
type Options struct {
	// MaxLength truncates string values and bounds array output. Zero means
	// unlimited.
	MaxLength int

	// Display selects the human-facing form. When false strings render as
	// single-quoted SQL literals and nothing is cached.
	Display bool

	// ThousandsSeparator groups integer digits of decimal values when
	// Display is also set.
	ThousandsSeparator bool
}

// DefaultOptions returns display rendering with digit grouping.
func DefaultOptions() Options {
	return Options{Display: true, ThousandsSeparator: true}
}

// Formatter renders values to display strings. Scalar renderings are
// memoized in a FormatCache. A Formatter is safe for concurrent use.
type Formatter struct {
	cache   *cache.FormatCache
	blobs   *BlobStore
	locale  language.Tag
	unit    currency.Unit
	printer *message.Printer

	group  string // digit group separator, may be empty
	point  string // decimal separator
	symbol string
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithCache uses c instead of the process-wide cache.
func WithCache(c *cache.FormatCache) FormatterOption {
	return func(f *Formatter) {
		if c != nil {
			f.cache = c
		}
	}
}

// WithLocale sets the locale used for separators and the currency symbol.
func WithLocale(tag language.Tag) FormatterOption {
	return func(f *Formatter) {
		f.locale = tag
	}
}

// WithCurrency sets the unit money values are rendered in.
func WithCurrency(u currency.Unit) FormatterOption {
	return func(f *Formatter) {
		f.unit = u
	}
}

// WithBlobStore registers binary values in s.
func WithBlobStore(s *BlobStore) FormatterOption {
	return func(f *Formatter) {
		if s != nil {
			f.blobs = s
		}
	}
}

// NewFormatter creates a Formatter. Without options it formats for US
// English in USD and shares cache.Default.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		cache:  cache.Default(),
		locale: language.AmericanEnglish,
		unit:   currency.USD,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.blobs == nil {
		f.blobs = NewBlobStore(DefaultBlobStoreSize)
	}

	f.printer = message.NewPrinter(f.locale)
	f.group, f.point = separators(f.printer)
	f.symbol = currencySymbol(f.printer, f.unit)
	return f
}

// currencySymbol resolves the locale's symbol for u, falling back to the ISO
// code.
func currencySymbol(p *message.Printer, u currency.Unit) (sym string) {
	defer func() {
		if r := recover(); r != nil || sym == "" {
			sym = u.String()
		}
	}()
	return p.Sprint(currency.Symbol(u))
}

// separators reads the locale's digit group and decimal marks off a sample
// rendering.
func separators(p *message.Printer) (group, point string) {
	sample := p.Sprint(number.Decimal(1234567.5))

	var seps []string
	var run strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				seps = append(seps, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}

	switch len(seps) {
	case 0:
		return ",", "."
	case 1:
		return "", seps[0]
	default:
		return seps[0], seps[len(seps)-1]
	}
}

// Blobs returns the store binary values are registered in.
func (f *Formatter) Blobs() *BlobStore {
	return f.blobs
}

// Format renders v as type t. nil renders as "". t may be a canonical type,
// an array marker, or a database column type name.
func (f *Formatter) Format(v any, t types.Type, opts Options) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok && opts.MaxLength > 0 {
		v = truncate(s, opts.MaxLength)
	}

	canon := types.Canonical(t)
	if canon.IsArray() || canon == types.Array {
		if elems, ok := elements(v); ok {
			return f.formatArray(elems, canon, opts)
		}
		canon = canon.Elem()
	}

	cacheable := opts.Display && types.ToBaseType(canon) != types.Binary
	var key cache.FormatKey
	if cacheable {
		key = cache.NewFormatKey(v, string(canon), opts.ThousandsSeparator)
		key.Locale = f.locale.String()
		key.Currency = f.unit.String()
		if s, ok := f.cache.Get(key); ok {
			return s
		}
	}

	out := f.formatScalar(v, canon, opts)

	if cacheable {
		f.cache.Put(key, out)
	}
	return out
}

func (f *Formatter) formatArray(elems []any, t types.Type, opts Options) string {
	var parts []string
	total := 0

	for i, e := range elems {
		et := t.Elem()
		if t == types.Array {
			et, _ = types.Infer(e)
		}

		s := f.Format(e, et, opts)
		n := utf8.RuneCountInString(s)
		if i > 0 {
			n += len(elementSeparator)
		}
		if opts.MaxLength > 0 && i > 0 && total+n > opts.MaxLength {
			parts = append(parts, truncationMarker)
			break
		}
		total += n
		parts = append(parts, s)
	}

	return "[" + strings.Join(parts, elementSeparator) + "]"
}

func (f *Formatter) formatScalar(v any, t types.Type, opts Options) string {
	switch types.ToBaseType(t) {
	case types.Number:
		return f.formatNumber(v, t, opts)
	case types.Boolean:
		if b, err := toBool(v); err == nil {
			return fmt.Sprint(b)
		}
	case types.DateTime:
		return formatTemporal(v, t)
	case types.Object:
		return formatObject(v, t)
	case types.Binary:
		return f.formatBinary(v)
	default:
		if !opts.Display {
			return "'" + strings.ReplaceAll(toString(v), "'", "''") + "'"
		}
	}
	return toString(v)
}

func (f *Formatter) formatNumber(v any, t types.Type, opts Options) string {
	grouped := opts.Display && opts.ThousandsSeparator

	if types.ToGeneralType(t) != types.Decimal {
		return toString(v)
	}

	d, err := toDecimal(v)
	if err != nil {
		return toString(v)
	}

	if t == types.Money {
		scale, _ := currency.Standard.Rounding(f.unit)
		s := d.Round(int32(scale)).StringFixed(int32(scale))
		if !opts.Display {
			return s
		}
		if grouped {
			s = f.groupDigits(s)
		} else {
			s = f.localizePoint(s)
		}
		sign := ""
		if strings.HasPrefix(s, "-") {
			sign, s = "-", s[1:]
		}
		return sign + f.symbol + s
	}

	if grouped {
		return f.groupDigits(d.String())
	}
	if opts.Display {
		return f.localizePoint(d.String())
	}
	return d.String()
}

// groupDigits inserts the locale's group separator into the integer part of
// a plain decimal string and swaps in its decimal mark.
func (f *Formatter) groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString(f.point)
		b.WriteString(frac)
	}
	return b.String()
}

func (f *Formatter) localizePoint(s string) string {
	return strings.Replace(s, ".", f.point, 1)
}

func formatTemporal(v any, t types.Type) string {
	if t == types.Duration {
		if d, err := toDuration(v); err == nil {
			return formatDuration(d)
		}
		return toString(v)
	}

	ts, err := toTime(v)
	if err != nil {
		return toString(v)
	}
	switch t {
	case types.Date:
		return ts.Format(dateLayout)
	case types.Time:
		return ts.Format(timeLayout)
	default:
		return ts.Format(timestampLayout)
	}
}

// formatDuration renders HH:MM:SS.mmm, prefixed with a day count once the
// magnitude is over a day.
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign, d = "-", -d
	}

	ms := d.Milliseconds()
	hours := ms / int64(time.Hour/time.Millisecond)
	minutes := ms / int64(time.Minute/time.Millisecond) % 60
	seconds := ms / int64(time.Second/time.Millisecond) % 60
	millis := ms % 1000

	if d > 24*time.Hour {
		days := hours / 24
		return fmt.Sprintf("%s%s %02d:%02d:%02d.%03d", sign, utils.Count("day", int(days)), hours%24, minutes, seconds, millis)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%03d", sign, hours, minutes, seconds, millis)
}

func formatObject(v any, t types.Type) string {
	switch t {
	case types.XML, types.Enum, types.Geometry:
		return toString(v)
	}
	if s, err := toJSON(v); err == nil {
		return s
	}
	return toString(v)
}

func (f *Formatter) formatBinary(v any) string {
	if b, ok := v.([]byte); ok {
		return f.blobs.Register(b)
	}
	return toString(v)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
