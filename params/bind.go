package params

import (
	"database/sql"

	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/scanner"
)

// Bound is SQL rewritten into a driver's placeholder style together with
// the argument list that goes with it.
type Bound struct {
	SQL  string
	Args []any

	// Names is parallel to Args: the parameter name bound at each index, or
	// empty when the argument is positional.
	Names   []string
	Skipped []scanner.Occurrence
}

// Bind rewrites occurrences for tpl and aligns values with the result.
//
// Under "?" there is one argument per occurrence. Under every other template
// there is one argument per rewrite index; when several occurrences share an
// index the first one supplies the value.
func Bind(sqlText string, occurrences []scanner.Occurrence, values Values, tpl dialect.Template) Bound {
	g := GroupForRewrite(occurrences)
	rw := Rewrite(sqlText, occurrences, g, tpl)
	mapped := MapValues(values, occurrences)

	b := Bound{SQL: rw.SQL, Skipped: rw.Skipped}

	if !tpl.Numbered() && !tpl.Named() {
		b.Args = mapped
		b.Names = make([]string, len(mapped))
		return b
	}

	b.Args = make([]any, g.Count)
	b.Names = make([]string, g.Count)
	seen := make([]bool, g.Count)
	for i, o := range occurrences {
		slot := g.Indexes[i] - 1
		if seen[slot] {
			continue
		}
		seen[slot] = true
		b.Args[slot] = mapped[i]
		if o.Kind == scanner.Named {
			b.Names[slot] = o.Key
		}
	}
	return b
}

// NamedArgs returns the arguments with sql.Named wrappers wherever a name is
// bound, for drivers that accept named parameters.
func (b Bound) NamedArgs() []any {
	out := make([]any, len(b.Args))
	for i, a := range b.Args {
		if i < len(b.Names) && b.Names[i] != "" {
			out[i] = sql.Named(b.Names[i], a)
			continue
		}
		out[i] = a
	}
	return out
}
