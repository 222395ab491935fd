package complete

import (
	"github.com/compline/compline/internal/match"
	"github.com/compline/compline/internal/word"
)

type concatState struct {
	left  State
	right State
}

// Concat treats the line as exactly two segments split at the first
// occurrence of sep, routing the call to left or right depending on which
// segment holds the cursor. The inactive branch's state is left untouched.
// Candidates from the active branch are reindexed so their insertion and
// matching apply within that segment only.
func Concat(sep string, left, right Source) Source {
	return New(concatState{left: left.Default(), right: right.Default()}, func(st concatState, q Query) (concatState, []Candidate) {
		r := word.Get(sep, q.Before, q.After, true)
		sub := Query{Before: r.BeforeInside, After: r.AfterInside}

		if r.Index == 0 {
			next, cands := left.Compute(st.left, sub)
			st.left = next
			return st, reindex(sep, true, cands)
		}

		next, cands := right.Compute(st.right, sub)
		st.right = next
		return st, reindex(sep, true, cands)
	})
}

// reindex rewraps candidates computed against an isolated segment so they
// operate on the full line: insertion edits only the cursor segment and
// matching sees only the segment's text.
func reindex(sep string, once bool, cands []Candidate) []Candidate {
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		inner := c
		c.Insert = func(before, after string) (string, string) {
			return word.CompleteIn(sep, inner.Insert, before, after, once, false)
		}
		c.Match = func(query string) []match.Span {
			return word.MatchIn(sep, inner.Match, query, "", once)
		}
		out[i] = c
	}
	return out
}
