package complete

import (
	"maps"

	"github.com/compline/compline/internal/word"
)

// kleeneState maps a segment index to that segment's inner state. Indices
// never seen use the inner source's default.
type kleeneState map[int]State

// Kleene completes an unbounded number of sep-delimited segments, each
// independently served by the same inner source. Only the cursor segment's
// state entry is replaced on a call; sibling segments keep theirs.
func Kleene(sep string, inner Source) Source {
	return New(kleeneState{}, func(st kleeneState, q Query) (kleeneState, []Candidate) {
		r := word.Get(sep, q.Before, q.After, false)

		segState, ok := st[r.Index]
		if !ok {
			segState = inner.Default()
		}

		segNext, cands := inner.Compute(segState, Query{Before: r.BeforeInside, After: r.AfterInside})

		next := maps.Clone(st)
		next[r.Index] = segNext
		return next, reindex(sep, false, cands)
	})
}
