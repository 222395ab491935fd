package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzy_Subsequence(t *testing.T) {
	spans := Fuzzy("readline.so", "rdl")
	require.NotNil(t, spans)

	// collect the matched characters in order
	var matched []byte
	for _, s := range spans {
		if s.Match {
			matched = append(matched, "readline.so"[s.Start:s.End]...)
		}
	}
	assert.Equal(t, "rdl", string(matched))
}

func TestFuzzy_NoMatch(t *testing.T) {
	assert.Nil(t, Fuzzy("readline.so", "xyz"))
}

func TestFuzzy_EmptyQuery(t *testing.T) {
	spans := Fuzzy("readline.so", "")
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Match: false, Start: 0, End: 11}, spans[0])
}

func TestFuzzy_SpansPartitionDisplay(t *testing.T) {
	for _, query := range []string{"rl", "readline", "so", "e"} {
		spans := Fuzzy("readline.so", query)
		require.NotNil(t, spans, "query %q", query)

		cursor := 0
		for _, s := range spans {
			require.Equal(t, cursor, s.Start)
			require.Less(t, s.Start, s.End)
			cursor = s.End
		}
		require.Equal(t, 11, cursor)
	}
}

func TestFuzzy_MultiByteRunes(t *testing.T) {
	// 'ï' is two bytes; spans must land on byte boundaries of the text
	text := "naïve.go"
	spans := Fuzzy(text, "ngo")
	require.NotNil(t, spans)

	var matched []byte
	cursor := 0
	for _, s := range spans {
		require.Equal(t, cursor, s.Start)
		require.Less(t, s.Start, s.End)
		cursor = s.End
		if s.Match {
			matched = append(matched, text[s.Start:s.End]...)
		}
	}
	require.Equal(t, len(text), cursor)
	assert.Equal(t, "ngo", string(matched))
}

func TestSpansFromPositions(t *testing.T) {
	spans := spansFromPositions(8, []int{1, 2, 5})

	assert.Equal(t, []Span{
		{Match: false, Start: 0, End: 1},
		{Match: true, Start: 1, End: 3},
		{Match: false, Start: 3, End: 5},
		{Match: true, Start: 5, End: 6},
		{Match: false, Start: 6, End: 8},
	}, spans)
}
