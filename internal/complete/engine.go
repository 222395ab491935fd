package complete

import (
	"context"

	"github.com/compline/compline/internal/logger"
	"github.com/compline/compline/internal/match"
	"github.com/compline/compline/internal/timing"
	"github.com/compline/compline/internal/trace"
)

// Scored is one candidate evaluated against the live query.
type Scored struct {
	Candidate Candidate
	Spans     []match.Span
}

// Engine owns a source and its state for the duration of one completion
// session. It is not safe for concurrent use; a session belongs to a single
// line being edited.
type Engine struct {
	src Source
	st  State
	log *logger.Logger
}

// NewEngine creates an engine around src. A nil log disables output below
// warning level.
func NewEngine(src Source, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.New("warn", nil)
	}
	return &Engine{src: src, st: src.Default(), log: log}
}

// Reset discards the session state, as when the user starts a new line.
func (e *Engine) Reset() {
	e.st = e.src.Default()
}

// Complete computes candidates for the line split at the cursor into before
// and after, then keeps the ones whose matcher accepts the typed text.
func (e *Engine) Complete(before, after string) []Scored {
	ctx := context.Background()
	timer := timing.NewTimer()

	var cands []Candidate
	trace.WithRegion(ctx, "compute", func() {
		e.st, cands = e.src.Compute(e.st, Query{Before: before, After: after})
	})
	timer.Mark("compute")

	results := make([]Scored, 0, len(cands))
	trace.WithRegion(ctx, "match", func() {
		for _, c := range cands {
			spans := c.Match(before)
			if spans == nil {
				continue
			}
			results = append(results, Scored{Candidate: c, Spans: spans})
		}
	})
	timer.Mark("match")

	e.log.Debug().
		Int("candidates", len(cands)).
		Int("matched", len(results)).
		Str("timing", timer.Summary()).
		Msg("Completion computed")

	return results
}
