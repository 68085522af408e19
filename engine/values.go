package engine

import (
	"github.com/Konsultn-Engineering/sqlbind/types"
	"github.com/Konsultn-Engineering/sqlbind/value"
)

// Infer classifies a raw cell value; ok is false for nil.
func (e *Engine) Infer(v any) (types.Type, bool) {
	return types.Infer(v)
}

// Format renders v as t with display options and the engine's length limit.
func (e *Engine) Format(v any, t types.Type) string {
	opts := value.DefaultOptions()
	opts.MaxLength = e.maxLength
	return e.formatter.Format(v, t, opts)
}

// FormatWith renders v as t with explicit options.
func (e *Engine) FormatWith(v any, t types.Type, opts value.Options) string {
	return e.formatter.Format(v, t, opts)
}

// FormatInferred infers the type of v and renders it.
func (e *Engine) FormatInferred(v any) (string, types.Type) {
	t, ok := types.Infer(v)
	if !ok {
		return "", ""
	}
	return e.Format(v, t), t
}

// Compare orders a and b as type t.
func (e *Engine) Compare(a, b any, t types.Type) int {
	return e.comparator.Compare(a, b, t)
}
