package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Infer classifies a raw cell value. Strings go through the cascade; values
// that already carry a Go type are mapped directly. ok is false only for nil.
func Infer(v any) (t Type, ok bool) {
	if v == nil {
		return "", false
	}

	switch val := v.(type) {
	case string:
		return InferString(val), true
	case *string:
		if val == nil {
			return "", false
		}
		return InferString(*val), true
	case bool:
		return Boolean, true
	case int, int8, int16, int32, uint8, uint16, uint32:
		return Int, true
	case int64:
		return intRange(val), true
	case uint, uint64:
		if reflect.ValueOf(val).Uint() > MaxSafeInteger {
			return BigInt, true
		}
		return Int, true
	case float32, float64:
		return Number, true
	case *big.Int:
		return BigInt, true
	case decimal.Decimal:
		return Decimal, true
	case pgtype.Numeric:
		return Decimal, true
	case time.Time, pgtype.Timestamp, pgtype.Timestamptz:
		return DateTime, true
	case pgtype.Date:
		return Date, true
	case pgtype.Time:
		return Time, true
	case time.Duration, pgtype.Interval:
		return Duration, true
	case uuid.UUID:
		return UUID, true
	case json.RawMessage:
		return JSON, true
	case []byte:
		return Binary, true
	case json.Number:
		return InferString(string(val)), true
	case fmt.Stringer:
		return InferString(val.String()), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return Infer(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]Type, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if et, ok := Infer(rv.Index(i).Interface()); ok {
				elems = append(elems, et)
			}
		}
		return ArrayOf(narrowest(elems)), true
	case reflect.Map, reflect.Struct:
		return Object, true
	}

	return InferString(fmt.Sprint(v)), true
}

func intRange(n int64) Type {
	if n >= -MaxSafeInteger && n <= MaxSafeInteger {
		return Int
	}
	return BigInt
}

// narrowest keeps a shared subtype when every element agrees and widens
// otherwise.
func narrowest(ts []Type) Type {
	if len(ts) == 0 {
		return String
	}
	for _, t := range ts[1:] {
		if t != ts[0] {
			return Widen(ts...)
		}
	}
	return ts[0]
}
