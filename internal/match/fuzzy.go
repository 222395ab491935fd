package match

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

var fuzzySlab = util.MakeSlab(100*1024, 2048)

// Fuzzy matches query as a subsequence of text using fzf's scoring
// algorithm. It returns nil when the query is not a subsequence, otherwise
// spans partitioning text with the matched character runs highlighted.
// Queries without uppercase letters match case-insensitively, like fzf.
func Fuzzy(text, query string) []Span {
	if query == "" {
		return []Span{{Match: false, Start: 0, End: len(text)}}
	}

	caseSensitive := strings.ToLower(query) != query
	pattern := []rune(query)
	if !caseSensitive {
		pattern = []rune(strings.ToLower(query))
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, true, fuzzySlab)
	if result.Start < 0 || positions == nil || len(*positions) == 0 {
		return nil
	}

	pos := make([]int, len(*positions))
	copy(pos, *positions)
	sort.Ints(pos)

	// fzf reports rune indices; spans address bytes of text
	runes := []rune(text)
	spans := spansFromPositions(len(runes), pos)
	if len(runes) != len(text) {
		offsets := runeOffsets(runes)
		for i := range spans {
			spans[i].Start = offsets[spans[i].Start]
			spans[i].End = offsets[spans[i].End]
		}
	}
	return spans
}

// runeOffsets returns the byte offset of each rune plus a final entry for
// the end of the text.
func runeOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += utf8.RuneLen(r)
	}
	offsets[len(runes)] = b
	return offsets
}

// spansFromPositions coalesces sorted matched character offsets into
// contiguous spans covering [0, length).
func spansFromPositions(length int, pos []int) []Span {
	spans := []Span{}
	cursor := 0
	for i := 0; i < len(pos); {
		start := pos[i]
		end := start + 1
		for i++; i < len(pos) && pos[i] == end; i++ {
			end++
		}
		if start > cursor {
			spans = append(spans, Span{Match: false, Start: cursor, End: start})
		}
		spans = append(spans, Span{Match: true, Start: start, End: end})
		cursor = end
	}
	if cursor < length {
		spans = append(spans, Span{Match: false, Start: cursor, End: length})
	}
	return spans
}
