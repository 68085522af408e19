package params

import (
	"sort"
	"strings"

	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/scanner"
)

// Rewritten is the result of a placeholder rewrite.
type Rewritten struct {
	SQL string

	// Skipped lists occurrences whose literal text was no longer found at
	// their recorded offset. They are left as they were.
	Skipped []scanner.Occurrence
}

// Rewrite renders every occurrence in the target placeholder style.
// Occurrences are replaced from the highest position down so earlier offsets
// stay valid; each is re-checked against the text before it is replaced.
//
// With "?" every occurrence becomes "?". With "$n" each takes its rewrite
// index from g. Name templates rewrite only named occurrences and leave
// positional and bare ones untouched.
func Rewrite(sql string, occurrences []scanner.Occurrence, g Grouping, tpl dialect.Template) Rewritten {
	order := make([]int, len(occurrences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return occurrences[order[a]].Position > occurrences[order[b]].Position
	})

	out := sql
	var skipped []scanner.Occurrence

	for _, i := range order {
		o := occurrences[i]
		literal := o.Literal()
		if o.Position < 0 || o.End() > len(out) || out[o.Position:o.End()] != literal {
			skipped = append(skipped, o)
			continue
		}

		name := ""
		if o.Kind == scanner.Named {
			name = o.Key
		}
		index := 0
		if i < len(g.Indexes) {
			index = g.Indexes[i]
		}

		rendered, ok := tpl.Render(index, name)
		if !ok || rendered == literal {
			continue
		}

		var b strings.Builder
		b.Grow(len(out) - len(literal) + len(rendered))
		b.WriteString(out[:o.Position])
		b.WriteString(rendered)
		b.WriteString(out[o.End():])
		out = b.String()
	}

	// skipped was collected from the end of the text backwards
	for l, r := 0, len(skipped)-1; l < r; l, r = l+1, r-1 {
		skipped[l], skipped[r] = skipped[r], skipped[l]
	}

	return Rewritten{SQL: out, Skipped: skipped}
}
