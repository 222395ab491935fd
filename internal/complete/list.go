package complete

import "sync"

// Entry is the raw material for list-backed sources.
type Entry struct {
	Display string
	Real    string
	Doc     string
}

func candidatesFrom(entries []Entry) []Candidate {
	cands := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		real := e.Real
		if real == "" {
			real = e.Display
		}
		cands = append(cands, newCandidate(e.Display, real, e.Doc))
	}
	return cands
}

// FromList builds a source that ignores the query and always returns the
// given entries. Filtering happens through each candidate's matcher.
func FromList(entries []Entry) Source {
	cands := candidatesFrom(entries)
	return Stateless(func(Query) []Candidate {
		return cands
	})
}

// FromListLazy is FromList with the entries computed on first use. The load
// function runs at most once for the lifetime of the source.
func FromListLazy(load func() []Entry) Source {
	force := sync.OnceValue(func() []Candidate {
		return candidatesFrom(load())
	})
	return Stateless(func(Query) []Candidate {
		return force()
	})
}
