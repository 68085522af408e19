package params

import (
	"strconv"

	"github.com/Konsultn-Engineering/sqlbind/scanner"
	"github.com/Konsultn-Engineering/sqlbind/types"
)

// TypedValue carries a value together with its interpretation. The JSON
// shape {"baseType": ..., "raw": ...} is shared with collaborators.
type TypedValue struct {
	BaseType types.Type `json:"baseType"`
	Raw      any        `json:"raw"`
}

// Typed wraps raw with its base type.
func Typed(t types.Type, raw any) TypedValue {
	return TypedValue{BaseType: types.ToBaseType(t), Raw: raw}
}

// Values is a value dictionary supplied by a parameter-entry surface. Keys
// are occurrence indices written in decimal, parameter names, "$n" for
// positional parameters, "?n" for individual bare marks, or "?" for every
// bare mark.
type Values map[string]any

// SetIndex stores v under the numeric occurrence index i.
func (v Values) SetIndex(i int, val any) Values {
	v[strconv.Itoa(i)] = val
	return v
}

// MapValues resolves one value per occurrence, in occurrence order. The
// result is the positional argument list for a driver that numbers every
// placeholder occurrence separately.
//
// Each occurrence takes the first hit of: its sequence index; its name
// (named); "$n" then "n" (positional); "?index" then "?" (bare). TypedValue
// wrappers are unwrapped. Nothing found means nil.
func MapValues(values Values, occurrences []scanner.Occurrence) []any {
	out := make([]any, len(occurrences))
	for i, o := range occurrences {
		out[i] = unwrap(resolve(values, o))
	}
	return out
}

func resolve(values Values, o scanner.Occurrence) any {
	if v, ok := values[strconv.Itoa(o.SequenceIndex)]; ok {
		return v
	}

	var keys []string
	switch o.Kind {
	case scanner.Named:
		keys = []string{o.Key}
	case scanner.Positional:
		keys = []string{"$" + o.Key, o.Key}
	case scanner.Bare:
		keys = []string{"?" + strconv.Itoa(o.SequenceIndex), "?"}
	}

	for _, k := range keys {
		if v, ok := values[k]; ok {
			return v
		}
	}
	return nil
}

func unwrap(v any) any {
	switch tv := v.(type) {
	case TypedValue:
		return tv.Raw
	case *TypedValue:
		if tv == nil {
			return nil
		}
		return tv.Raw
	default:
		return v
	}
}
