package complete

import "github.com/compline/compline/internal/match"

// mapSource post-processes every candidate emitted by inner. State passes
// through untouched.
type mapSource struct {
	inner Source
	fn    func(Candidate) Candidate
}

func (m mapSource) Default() State {
	return m.inner.Default()
}

func (m mapSource) Compute(st State, q Query) (State, []Candidate) {
	next, cands := m.inner.Compute(st, q)
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		out[i] = m.fn(c)
	}
	return next, out
}

// MapCandidates wraps src so every candidate it emits is transformed by fn.
func MapCandidates(src Source, fn func(Candidate) Candidate) Source {
	return mapSource{inner: src, fn: fn}
}

// UpdateReal rewrites the insertion text of every candidate.
func UpdateReal(src Source, fn func(real string) string) Source {
	return MapCandidates(src, func(c Candidate) Candidate {
		real := fn(c.Real)
		c.Real = real
		c.Insert = func(_, after string) (string, string) {
			return real, after
		}
		return c
	})
}

// UpdateDisplay rewrites the display text of every candidate.
func UpdateDisplay(src Source, fn func(display string) string) Source {
	return MapCandidates(src, func(c Candidate) Candidate {
		c.Display = fn(c.Display)
		return c
	})
}

// UpdateDoc rewrites the description of every candidate.
func UpdateDoc(src Source, fn func(c Candidate) string) Source {
	return MapCandidates(src, func(c Candidate) Candidate {
		c.Doc = fn(c)
		return c
	})
}

// UpdateMatch replaces every candidate's matcher with matcher evaluated
// over its display text.
func UpdateMatch(src Source, matcher func(display, query string) []match.Span) Source {
	return MapCandidates(src, func(c Candidate) Candidate {
		display := c.Display
		c.Match = func(query string) []match.Span {
			return matcher(display, query)
		}
		return c
	})
}
