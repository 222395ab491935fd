// Package cli implements the compline command actions.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/compline/compline/internal/complete"
	"github.com/compline/compline/internal/config"
	"github.com/compline/compline/internal/logger"
	"github.com/compline/compline/internal/timing"
	"github.com/compline/compline/internal/trace"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	LogLevel string
	Dir      string // directory whose config drives completion; "" means cwd
	Line     string // the line being completed (COMP_LINE)
	Point    int    // byte offset of the cursor within Line (COMP_POINT)
	Output   io.Writer
}

// Complete computes completion candidates for a line and prints one per
// line as value<TAB>description, the description omitted when empty.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, nil)
	timer := timing.NewTimer()
	ctx := context.Background()

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	dir := params.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg := loadConfig(dir, log)
	timer.Mark("config")

	point := params.Point
	if point < 0 || point > len(params.Line) {
		point = len(params.Line)
	}
	before, after := params.Line[:point], params.Line[point:]

	engine := complete.NewEngine(cfg.Build(), log)

	var results []complete.Scored
	trace.WithRegion(ctx, "complete", func() {
		results = engine.Complete(before, after)
	})
	timer.Mark("complete")

	for _, r := range results {
		if r.Candidate.Doc != "" {
			fmt.Fprintf(out, "%s\t%s\n", r.Candidate.Real, r.Candidate.Doc)
		} else {
			fmt.Fprintln(out, r.Candidate.Real)
		}
	}

	log.Debug().
		Str("line", params.Line).
		Int("point", point).
		Int("results", len(results)).
		Str("timing", timer.Summary()).
		Msg("Completion done")

	return nil
}

// loadConfig loads the directory's config, falling back to the built-in
// defaults when no file exists or it fails to parse.
func loadConfig(dir string, log *logger.Logger) *config.Config {
	path := config.Find(dir)
	if path == "" {
		return config.Default()
	}

	cfg, err := config.New().Load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Falling back to default config")
		return config.Default()
	}
	return cfg
}
