package scanner

// Range is a half-open byte range [Start, End) of SQL text.
type Range struct {
	Start int
	End   int
}

// Contains reports whether p lies inside the range.
func (r Range) Contains(p int) bool {
	return r.Start <= p && p < r.End
}

// Ranges holds the string-literal and comment spans of a SQL text.
type Ranges struct {
	Strings  []Range
	Comments []Range
}

// Suppressed reports whether offset p falls inside a string literal or a
// comment. Both lists are sorted by Start.
func (r Ranges) Suppressed(p int) bool {
	for _, s := range r.Strings {
		if s.Start > p {
			break
		}
		if s.Contains(p) {
			return true
		}
	}
	for _, c := range r.Comments {
		if c.Start > p {
			break
		}
		if c.Contains(p) {
			return true
		}
	}
	return false
}

// Classify finds string literals and comments in sql.
//
// Strings are single- or double-quoted; a backslash escapes the next byte
// inside either. Doubled quotes ('') are not treated as an escape: they close
// one literal and open the next, which leaves the pair fully covered anyway.
// PostgreSQL dollar-quoted bodies ($tag$ ... $tag$) count as strings.
// Comments are -- to end of line and non-nested /* */ blocks.
//
// Unterminated quotes, dollar quotes and block comments produce no range; the
// scan resumes right after the opening delimiter.
func Classify(sql string) Ranges {
	var r Ranges
	n := len(sql)
	i := 0

	for i < n {
		switch c := sql[i]; c {
		case '\'', '"':
			end, ok := closeQuoted(sql, i, c)
			if !ok {
				i++
				continue
			}
			r.Strings = append(r.Strings, Range{Start: i, End: end})
			i = end

		case '-':
			if i+1 < n && sql[i+1] == '-' {
				end := i + 2
				for end < n && sql[end] != '\n' {
					end++
				}
				r.Comments = append(r.Comments, Range{Start: i, End: end})
				i = end
				continue
			}
			i++

		case '/':
			if i+1 < n && sql[i+1] == '*' {
				end, ok := closeBlockComment(sql, i)
				if !ok {
					i++
					continue
				}
				r.Comments = append(r.Comments, Range{Start: i, End: end})
				i = end
				continue
			}
			i++

		case '$':
			end, ok := closeDollarQuoted(sql, i)
			if !ok {
				i++
				continue
			}
			r.Strings = append(r.Strings, Range{Start: i, End: end})
			i = end

		default:
			i++
		}
	}

	return r
}

func closeQuoted(sql string, start int, quote byte) (end int, ok bool) {
	n := len(sql)
	i := start + 1
	for i < n {
		switch sql[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1, true
		default:
			i++
		}
	}
	return 0, false
}

func closeBlockComment(sql string, start int) (end int, ok bool) {
	n := len(sql)
	for i := start + 2; i+1 < n; i++ {
		if sql[i] == '*' && sql[i+1] == '/' {
			return i + 2, true
		}
	}
	return 0, false
}

// closeDollarQuoted matches $$...$$ and $tag$...$tag$ where tag is an
// identifier. $1 and $name (no closing $) are placeholders, not quotes.
func closeDollarQuoted(sql string, start int) (end int, ok bool) {
	n := len(sql)
	i := start + 1
	if i < n && isIdentStart(sql[i]) {
		i++
		for i < n && isIdentChar(sql[i]) {
			i++
		}
	}
	if i >= n || sql[i] != '$' {
		return 0, false
	}
	tag := sql[start : i+1]
	body := i + 1
	for j := body; j+len(tag) <= n; j++ {
		if sql[j] == '$' && sql[j:j+len(tag)] == tag {
			return j + len(tag), true
		}
	}
	return 0, false
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}
