// Package word models a line of text split into separator-delimited words
// around an edit cursor.
package word

import "strings"

// Result describes the word containing the cursor within a line.
type Result struct {
	// Word is the full text of the cursor word.
	Word string
	// Before and After hold the words strictly left and right of the cursor word.
	Before []string
	After  []string
	// Index is the position of the cursor word among all words.
	Index int
	// IndexInside is the cursor offset within Word.
	IndexInside int
	// BeforeInside and AfterInside are the two halves of Word at the cursor.
	BeforeInside string
	AfterInside  string

	sep string
}

// Split splits text on sep. When once is true only the first occurrence
// splits, yielding at most two segments. Absent separators fall back to a
// single segment.
func Split(sep, text string, once bool) []string {
	if once {
		return strings.SplitN(text, sep, 2)
	}
	return strings.Split(text, sep)
}

// Locate walks words accumulating consumed length (word plus one separator
// of sepLen bytes) until offset falls inside a word. A cursor sitting
// inside or right after a separator belongs to the start of the following
// word. An empty word list locates at (0, 0).
func Locate(words []string, sepLen, offset int) (index, inside int) {
	for i, w := range words {
		// a cursor inside the separator preceding this word belongs to
		// the word's start
		if offset < 0 {
			return i, 0
		}
		if offset <= len(w) {
			return i, offset
		}
		// consume the word and the separator after it
		offset -= len(w) + sepLen
	}
	return 0, 0
}

// Get splits the line before+after into words and materializes the Result
// for the word under the cursor, using len(before) as the cursor offset.
func Get(sep, before, after string, once bool) Result {
	if before == "" && after == "" {
		return Result{sep: sep, Before: []string{}, After: []string{}}
	}

	words := Split(sep, before+after, once)
	idx, inside := Locate(words, len(sep), len(before))

	w := words[idx]
	return Result{
		Word:         w,
		Before:       words[:idx],
		After:        words[idx+1:],
		Index:        idx,
		IndexInside:  inside,
		BeforeInside: w[:inside],
		AfterInside:  w[inside:],
		sep:          sep,
	}
}

// Rebuild reconstructs the whole line's before/after halves given a
// replacement for the cursor word's two halves. Rebuild(BeforeInside,
// AfterInside) reproduces the original pair exactly.
func (r Result) Rebuild(prefix, suffix string) (before, after string) {
	before = prefix
	if len(r.Before) > 0 {
		before = strings.Join(r.Before, r.sep) + r.sep + prefix
	}
	after = suffix
	if len(r.After) > 0 {
		after = suffix + r.sep + strings.Join(r.After, r.sep)
	}
	return before, after
}

// CompleteIn applies transform to the cursor word's halves and rebuilds the
// line. When drop is true the resulting after half is discarded, so the
// completion truncates instead of preserving trailing text.
func CompleteIn(sep string, transform func(pre, suf string) (string, string), before, after string, once, drop bool) (string, string) {
	r := Get(sep, before, after, once)
	pre, suf := transform(r.BeforeInside, r.AfterInside)
	nb, na := r.Rebuild(pre, suf)
	if drop {
		na = ""
	}
	return nb, na
}

// MatchIn isolates the cursor word and applies fn to it, ignoring the rest
// of the line.
func MatchIn[T any](sep string, fn func(word string) T, before, after string, once bool) T {
	r := Get(sep, before, after, once)
	return fn(r.Word)
}
