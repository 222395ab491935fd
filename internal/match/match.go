// Package match provides the span-producing matchers used to filter and
// highlight completion candidates.
package match

import "strings"

// Span is one contiguous region of a candidate's display text. Matchers
// return spans that partition [0, len(display)) with no gaps or overlaps.
type Span struct {
	Match bool
	Start int
	End   int
}

// Substring matches query as a literal substring of text. It returns nil
// when query does not occur, otherwise three spans around the first
// occurrence: unmatched prefix, matched region, unmatched suffix.
func Substring(text, query string) []Span {
	idx := strings.Index(text, query)
	if idx < 0 {
		return nil
	}
	return []Span{
		{Match: false, Start: 0, End: idx},
		{Match: true, Start: idx, End: idx + len(query)},
		{Match: false, Start: idx + len(query), End: len(text)},
	}
}
