package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Complete(t *testing.T) {
	src := FromList([]Entry{
		{Display: "apply", Doc: "Apply a configuration"},
		{Display: "annotate", Doc: "Update annotations"},
		{Display: "get", Doc: "Get resources"},
	})

	engine := NewEngine(src, nil)

	results := engine.Complete("ap", "")
	require.Len(t, results, 1)
	assert.Equal(t, "apply", results[0].Candidate.Display)
	require.Len(t, results[0].Spans, 3)
	assert.True(t, results[0].Spans[1].Match)
}

func TestEngine_EmptyQueryKeepsEverything(t *testing.T) {
	src := FromList([]Entry{{Display: "a"}, {Display: "b"}})
	engine := NewEngine(src, nil)

	results := engine.Complete("", "")
	assert.Len(t, results, 2)
}

func TestEngine_StatePersistsAcrossKeystrokes(t *testing.T) {
	engine := NewEngine(counting("x"), nil)

	engine.Complete("a", "")
	engine.Complete("ab", "")
	assert.Equal(t, 2, engine.st)
}

func TestEngine_Reset(t *testing.T) {
	engine := NewEngine(counting("x"), nil)

	engine.Complete("a", "")
	engine.Reset()
	assert.Equal(t, 0, engine.st)
}

func TestEngine_CommandLinePipeline(t *testing.T) {
	// a shell-style pipeline: first word from a command list, remaining
	// words from an argument list
	commands := FromList([]Entry{{Display: "git"}, {Display: "go"}})
	args := FromList([]Entry{{Display: "checkout"}, {Display: "cherry-pick"}, {Display: "status"}})

	engine := NewEngine(Concat(" ", commands, Kleene(" ", args)), nil)

	results := engine.Complete("g", "")
	assert.Len(t, results, 2)

	results = engine.Complete("git ch", "")
	require.Len(t, results, 2)
	assert.Equal(t, "checkout", results[0].Candidate.Display)
	assert.Equal(t, "cherry-pick", results[1].Candidate.Display)

	before, after := results[0].Candidate.Insert("git ch", "")
	assert.Equal(t, "git checkout", before)
	assert.Equal(t, "", after)
}
