package complete

import "fmt"

// Query is the text of the line split at the cursor.
type Query struct {
	Before string
	After  string
}

// Line returns the full line text.
func (q Query) Line() string {
	return q.Before + q.After
}

// State is a source's private state. Callers obtain it from Default, thread
// it through Compute, and never inspect or mutate it.
type State any

// Source computes completion candidates for a query. Compute is pure with
// respect to state and query apart from filesystem and environment reads.
type Source interface {
	// Default returns the source's initial state.
	Default() State
	// Compute returns the updated state and the candidates for q.
	Compute(st State, q Query) (State, []Candidate)
}

// funcSource adapts a typed state S to the erased Source interface.
type funcSource[S any] struct {
	initial S
	fn      func(S, Query) (S, []Candidate)
}

// New builds a Source from an initial state and a compute function. The
// concrete state type stays private behind the Source interface.
func New[S any](initial S, fn func(S, Query) (S, []Candidate)) Source {
	return funcSource[S]{initial: initial, fn: fn}
}

func (s funcSource[S]) Default() State {
	return s.initial
}

func (s funcSource[S]) Compute(st State, q Query) (State, []Candidate) {
	typed, ok := st.(S)
	if !ok {
		// A state of the wrong shape means a caller broke the threading
		// contract. That is a bug, not a recoverable condition.
		panic(fmt.Sprintf("complete: state %T passed to source with state %T", st, s.initial))
	}
	next, cands := s.fn(typed, q)
	return next, cands
}

// Stateless builds a Source with no meaningful state.
func Stateless(fn func(Query) []Candidate) Source {
	return New(struct{}{}, func(st struct{}, q Query) (struct{}, []Candidate) {
		return st, fn(q)
	})
}
