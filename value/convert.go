package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var errNotConvertible = errors.New("value: not convertible")

// toString renders v the way a cell shows it before any type-specific
// treatment.
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case json.RawMessage:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case fmt.Stringer:
		return val.String()
	}
	return fmt.Sprint(v)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, nil
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, errNotConvertible
		}
		return *val, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(val))
	case json.Number:
		return decimal.NewFromString(string(val))
	case float64:
		return decimal.NewFromFloat(val), nil
	case float32:
		return decimal.NewFromFloat32(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int8:
		return decimal.NewFromInt(int64(val)), nil
	case int16:
		return decimal.NewFromInt(int64(val)), nil
	case int32:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case uint, uint8, uint16, uint32, uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(reflect.ValueOf(val).Uint()), 0), nil
	case *big.Int:
		if val == nil {
			return decimal.Zero, errNotConvertible
		}
		return decimal.NewFromBigInt(val, 0), nil
	case pgtype.Numeric:
		if !val.Valid || val.NaN || val.InfinityModifier != pgtype.Finite {
			return decimal.Zero, errNotConvertible
		}
		return decimal.NewFromBigInt(val.Int, val.Exp), nil
	case bool:
		if val {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	}
	return decimal.NewFromString(toString(v))
}

func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "t", "1", "yes", "y", "on":
			return true, nil
		case "false", "f", "0", "no", "n", "off", "":
			return false, nil
		}
		return false, errNotConvertible
	case pgtype.Bool:
		return val.Bool, nil
	}
	d, err := toDecimal(v)
	if err != nil {
		return false, err
	}
	return !d.IsZero(), nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05.999999999",
	"15:04",
}

func toTime(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case *time.Time:
		if val == nil {
			return time.Time{}, errNotConvertible
		}
		return *val, nil
	case pgtype.Timestamp:
		if !val.Valid {
			return time.Time{}, errNotConvertible
		}
		return val.Time, nil
	case pgtype.Timestamptz:
		if !val.Valid {
			return time.Time{}, errNotConvertible
		}
		return val.Time, nil
	case pgtype.Date:
		if !val.Valid {
			return time.Time{}, errNotConvertible
		}
		return val.Time, nil
	case pgtype.Time:
		if !val.Valid {
			return time.Time{}, errNotConvertible
		}
		return time.Time{}.Add(time.Duration(val.Microseconds) * time.Microsecond), nil
	case string:
		s := strings.TrimSpace(val)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("%w: %q is not a time", errNotConvertible, val)
	}

	// numbers are epoch milliseconds
	d, err := toDecimal(v)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(d.IntPart()).UTC(), nil
}

var isoDuration = regexp.MustCompile(`^([+-])?P(?:(\d+(?:\.\d+)?)Y)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)W)?(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// isoUnits are the lengths of the ISO-8601 duration components in order.
// Years and months are nominal.
var isoUnits = []time.Duration{
	365 * 24 * time.Hour,
	30 * 24 * time.Hour,
	7 * 24 * time.Hour,
	24 * time.Hour,
	time.Hour,
	time.Minute,
	time.Second,
}

func toDuration(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case pgtype.Interval:
		if !val.Valid {
			return 0, errNotConvertible
		}
		return intervalDuration(val)
	case string:
		return parseDuration(strings.TrimSpace(val))
	}

	// numbers are milliseconds
	d, err := toDecimal(v)
	if err != nil {
		return 0, err
	}
	return nanos(d.Mul(decimal.NewFromInt(int64(time.Millisecond))))
}

var (
	minNanos = decimal.NewFromInt(-math.MaxInt64)
	maxNanos = decimal.NewFromInt(math.MaxInt64)
)

// nanos converts a nanosecond count to a Duration, failing past the roughly
// 292 years a Duration can hold.
func nanos(n decimal.Decimal) (time.Duration, error) {
	if n.LessThan(minNanos) || n.GreaterThan(maxNanos) {
		return 0, fmt.Errorf("%w: %s ns overflows a duration", errNotConvertible, n)
	}
	return time.Duration(n.IntPart()), nil
}

func intervalDuration(iv pgtype.Interval) (time.Duration, error) {
	day := decimal.NewFromInt(int64(24 * time.Hour))
	total := decimal.NewFromInt(iv.Microseconds).Mul(decimal.NewFromInt(int64(time.Microsecond))).
		Add(decimal.NewFromInt(int64(iv.Days)).Mul(day)).
		Add(decimal.NewFromInt(int64(iv.Months)).Mul(day.Mul(decimal.NewFromInt(30))))
	return nanos(total)
}

func parseDuration(s string) (time.Duration, error) {
	if m := isoDuration.FindStringSubmatch(s); m != nil && s != "P" && !strings.HasSuffix(s, "T") {
		total := decimal.Zero
		for i, unit := range isoUnits {
			part := m[i+2]
			if part == "" {
				continue
			}
			n, err := decimal.NewFromString(part)
			if err != nil {
				return 0, err
			}
			total = total.Add(n.Mul(decimal.NewFromInt(int64(unit))))
		}
		if m[1] == "-" {
			total = total.Neg()
		}
		return nanos(total)
	}

	var iv pgtype.Interval
	if err := iv.Scan(s); err == nil && iv.Valid {
		return intervalDuration(iv)
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q is not a duration", errNotConvertible, s)
}

// toJSON stringifies v. Text and bytes that already hold valid JSON are used
// as they are.
func toJSON(v any) (string, error) {
	switch val := v.(type) {
	case json.RawMessage:
		return string(val), nil
	case []byte:
		if json.Valid(val) {
			return string(val), nil
		}
	case string:
		if json.Valid([]byte(val)) {
			return val, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// elements expands v into a slice. JSON array text is decoded.
func elements(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case string:
		var out []any
		if err := json.Unmarshal([]byte(val), &out); err == nil {
			return out, true
		}
		return nil, false
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
