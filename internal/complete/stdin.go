package complete

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Lines reads every line available on r eagerly and serves them as a static
// list. When split is non-zero each line is cut at the first occurrence of
// split into (display, real); lines without the separator fall back to the
// whole line for both.
func Lines(r io.Reader, split byte) Source {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		entry := Entry{Display: line, Real: line}
		if split != 0 {
			if idx := strings.IndexByte(line, split); idx >= 0 {
				entry.Display = line[:idx]
				entry.Real = line[idx+1:]
			}
		}
		entries = append(entries, entry)
	}
	return FromList(entries)
}

// Stdin is Lines over standard input.
func Stdin(split byte) Source {
	return Lines(os.Stdin, split)
}
