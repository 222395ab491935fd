// Package complete implements the completion source algebra: candidates,
// stateful sources, leaf sources over lists and the filesystem, and the
// combinators that compose them.
package complete

import "github.com/compline/compline/internal/match"

// MatchFunc evaluates a candidate against the query text typed in the
// region the candidate's source is responsible for. It returns highlight
// spans partitioning the candidate's display text, or nil for no match.
type MatchFunc func(query string) []match.Span

// InsertFunc rewrites the two halves of the (sub-)line around the cursor to
// apply a completion.
type InsertFunc func(before, after string) (string, string)

// Candidate is one completion suggestion.
type Candidate struct {
	Display string // text shown to the user
	Real    string // text actually inserted, may differ from Display
	Doc     string // optional description
	Insert  InsertFunc
	Match   MatchFunc
}

// newCandidate builds a candidate whose insertion replaces the typed region
// with real and whose matcher runs a substring match over display.
func newCandidate(display, real, doc string) Candidate {
	return Candidate{
		Display: display,
		Real:    real,
		Doc:     doc,
		Insert: func(_, after string) (string, string) {
			return real, after
		},
		Match: func(query string) []match.Span {
			return match.Substring(display, query)
		},
	}
}
