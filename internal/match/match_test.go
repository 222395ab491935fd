package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstring(t *testing.T) {
	spans := Substring("readline.so", "read")

	require.Len(t, spans, 3)
	assert.Equal(t, Span{Match: false, Start: 0, End: 0}, spans[0])
	assert.Equal(t, Span{Match: true, Start: 0, End: 4}, spans[1])
	assert.Equal(t, Span{Match: false, Start: 4, End: 11}, spans[2])
}

func TestSubstring_MiddleOccurrence(t *testing.T) {
	spans := Substring("libreadline.so", "read")

	require.Len(t, spans, 3)
	assert.Equal(t, Span{Match: false, Start: 0, End: 3}, spans[0])
	assert.Equal(t, Span{Match: true, Start: 3, End: 7}, spans[1])
	assert.Equal(t, Span{Match: false, Start: 7, End: 14}, spans[2])
}

func TestSubstring_FirstOccurrenceWins(t *testing.T) {
	spans := Substring("abcabc", "abc")

	require.Len(t, spans, 3)
	assert.Equal(t, Span{Match: true, Start: 0, End: 3}, spans[1])
}

func TestSubstring_NoMatch(t *testing.T) {
	assert.Nil(t, Substring("readline.so", "xyz"))
}

func TestSubstring_SpansPartitionDisplay(t *testing.T) {
	tests := []struct {
		text  string
		query string
	}{
		{"readline.so", "read"},
		{"readline.so", "line"},
		{"readline.so", ".so"},
		{"readline.so", ""},
		{"a", "a"},
	}

	for _, tt := range tests {
		spans := Substring(tt.text, tt.query)
		require.NotNil(t, spans, "%q in %q", tt.query, tt.text)

		cursor := 0
		for _, s := range spans {
			require.Equal(t, cursor, s.Start)
			require.LessOrEqual(t, s.Start, s.End)
			cursor = s.End
		}
		require.Equal(t, len(tt.text), cursor)
	}
}
