package complete

import (
	"os"
	"strings"
)

// Branch pairs a predicate over the full query text with a lazily
// constructed source. Construction runs at most once per branch, giving
// each branch a stable identity for session tracking.
type Branch struct {
	When   func(query string) bool
	Source func() Source
}

// sessionState remembers which branch served the previous call and that
// branch's nested state. branch is -1 when no branch is active.
type sessionState struct {
	branch int
	nested State
}

// Switch routes each query to the first branch whose predicate accepts it.
// While consecutive queries stay on the same branch the nested state is
// carried over, preserving incremental caches; changing branch resets the
// nested state to the new source's default.
func Switch(branches []Branch) Source {
	built := make([]Source, len(branches))
	get := func(i int) Source {
		if built[i] == nil {
			built[i] = branches[i].Source()
		}
		return built[i]
	}

	return New(sessionState{branch: -1}, func(st sessionState, q Query) (sessionState, []Candidate) {
		for i, b := range branches {
			if !b.When(q.Line()) {
				continue
			}
			src := get(i)
			nested := st.nested
			if st.branch != i || nested == nil {
				nested = src.Default()
			}
			next, cands := src.Compute(nested, q)
			return sessionState{branch: i, nested: next}, cands
		}
		return sessionState{branch: -1}, nil
	})
}

// Paths completes filesystem paths, switching on the query's leading
// characters: "./" and the bare default complete relative to the working
// directory, "~/" relative to home, "/" from the root.
func Paths(filter func(path string) bool) Source {
	home, _ := os.UserHomeDir()
	return Switch([]Branch{
		{
			When:   func(q string) bool { return strings.HasPrefix(q, "./") },
			Source: func() Source { return Files(".", filter) },
		},
		{
			When:   func(q string) bool { return strings.HasPrefix(q, "~/") },
			Source: func() Source { return Files(home, filter) },
		},
		{
			When:   func(q string) bool { return strings.HasPrefix(q, "/") },
			Source: func() Source { return Files("/", filter) },
		},
		{
			When:   func(string) bool { return true },
			Source: func() Source { return Files(".", filter) },
		},
	})
}
