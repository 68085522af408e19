// Package resolve models values that are either fixed or derived from a
// runtime context. Callers resolve them before handing plain data to the
// engine.
package resolve

// Value is a literal T or a function computing T from a context C.
type Value[C, T any] struct {
	literal  T
	compute  func(C) T
	computed bool
}

// Literal wraps a fixed value.
func Literal[C, T any](v T) Value[C, T] {
	return Value[C, T]{literal: v}
}

// Computed wraps a function of the context. A nil fn resolves to the zero T.
func Computed[C, T any](fn func(C) T) Value[C, T] {
	return Value[C, T]{compute: fn, computed: true}
}

// IsComputed reports whether v depends on the context.
func (v Value[C, T]) IsComputed() bool {
	return v.computed
}

// Resolve returns the value for ctx.
func (v Value[C, T]) Resolve(ctx C) T {
	if !v.computed {
		return v.literal
	}
	if v.compute == nil {
		var zero T
		return zero
	}
	return v.compute(ctx)
}

// All resolves every value in m against ctx.
func All[C, T any](ctx C, m map[string]Value[C, T]) map[string]T {
	out := make(map[string]T, len(m))
	for k, v := range m {
		out[k] = v.Resolve(ctx)
	}
	return out
}
