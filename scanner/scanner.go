// Package scanner locates bind-parameter placeholders in raw SQL text.
//
// Six competing grammars are recognised:
//
//	:name   named, colon (Oracle, SQLite, most ORMs)
//	@name   named, at (SQL Server)
//	$name   named, dollar (SQLite)
//	{name}  named, brace (template style)
//	$1      positional (PostgreSQL)
//	?       bare (MySQL, SQLite, ODBC)
//
// Matches inside string literals and comments are ignored, and PostgreSQL
// casts (::type) and SQL Server system variables (@@name) are never
// parameters. Scanning never fails: text that does not form a placeholder is
// simply not reported.
package scanner

import (
	"regexp"
	"sort"
)

type grammar struct {
	syntax  Syntax
	pattern *regexp.Regexp
	// guard is the byte that, immediately preceding a match, disqualifies it.
	guard byte
}

var grammars = []grammar{
	{syntax: SyntaxColon, pattern: regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`), guard: ':'},
	{syntax: SyntaxAt, pattern: regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)`), guard: '@'},
	{syntax: SyntaxDollarName, pattern: regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)},
	{syntax: SyntaxBrace, pattern: regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)},
	{syntax: SyntaxDollarNumber, pattern: regexp.MustCompile(`\$([0-9]+)`)},
	{syntax: SyntaxQuestion, pattern: regexp.MustCompile(`\?`)},
}

// Scan classifies sql and returns its placeholder occurrences.
func Scan(sql string) []Occurrence {
	return ScanRanges(sql, Classify(sql))
}

// ScanRanges returns the placeholder occurrences of sql, skipping any whose
// first character lies inside ranges. The result is sorted by Position and
// SequenceIndex is assigned in that order.
func ScanRanges(sql string, ranges Ranges) []Occurrence {
	occurrences := make([]Occurrence, 0, 8)

	for _, g := range grammars {
		for _, m := range g.pattern.FindAllStringSubmatchIndex(sql, -1) {
			start := m[0]
			if ranges.Suppressed(start) {
				continue
			}
			if g.guard != 0 && guarded(sql, start, g.guard) {
				continue
			}

			key := "?"
			if len(m) >= 4 && m[2] >= 0 {
				key = sql[m[2]:m[3]]
			}
			occurrences = append(occurrences, Occurrence{
				Key:      key,
				Position: start,
				Kind:     g.syntax.Kind(),
				Syntax:   g.syntax,
			})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Position < occurrences[j].Position
	})
	for i := range occurrences {
		occurrences[i].SequenceIndex = i
	}

	return occurrences
}

// guarded reports a doubled prefix: "::" casts and "@@" system variables.
// Every grammar needs an identifier character after the prefix, so only the
// byte before a match can double it.
func guarded(sql string, start int, prefix byte) bool {
	return start > 0 && sql[start-1] == prefix
}
