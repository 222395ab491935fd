package complete

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/compline/compline/internal/match"
)

// ReadDirFunc lists a directory. Injectable so tests can count reads.
type ReadDirFunc func(dir string) ([]os.DirEntry, error)

// filesState caches the candidates for the last resolved directory so that
// editing the filename portion of a path does not re-read the directory.
type filesState struct {
	dir   string
	cands []Candidate
}

// Files builds a filesystem-listing source rooted at root. A leading ~ in
// the query expands to the home directory, absolute queries ignore root,
// and directory entries get a trailing separator so the next keystroke can
// descend. filter, when non-nil, keeps only entries whose full path it
// accepts. Unreadable directories yield no candidates.
func Files(root string, filter func(path string) bool) Source {
	return FilesWithReader(root, filter, os.ReadDir)
}

// FilesWithReader is Files with an explicit directory reader.
func FilesWithReader(root string, filter func(path string) bool, readDir ReadDirFunc) Source {
	return New(filesState{}, func(st filesState, q Query) (filesState, []Candidate) {
		dir := resolveDir(root, expandHome(q.Before))
		if dir == st.dir && len(st.cands) > 0 {
			return st, st.cands
		}

		entries, err := readDir(dir)
		if err != nil {
			return filesState{dir: dir}, nil
		}

		cands := make([]Candidate, 0, len(entries))
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if filter != nil && !filter(full) {
				continue
			}

			display := entry.Name()
			real := full
			if entry.IsDir() {
				display += string(filepath.Separator)
				real += string(filepath.Separator)
			}

			c := newCandidate(display, real, "")
			// match on the basename only: directory components already
			// typed are never re-matched
			c.Match = func(query string) []match.Span {
				return match.Substring(display, baseName(expandHome(query)))
			}
			cands = append(cands, c)
		}

		return filesState{dir: dir, cands: cands}, cands
	})
}

// expandHome replaces a leading ~ with the home directory. A missing home
// variable leaves the query untouched.
func expandHome(query string) string {
	if query != "~" && !strings.HasPrefix(query, "~/") {
		return query
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return query
	}
	return home + query[1:]
}

// baseName returns the text after the last path separator, empty when the
// query ends with one.
func baseName(query string) string {
	return query[strings.LastIndexByte(query, '/')+1:]
}

// resolveDir returns the directory portion of query, relative to root
// unless query is already absolute.
func resolveDir(root, query string) string {
	idx := strings.LastIndexByte(query, '/')
	if idx < 0 {
		return filepath.Clean(root)
	}
	dir := query[:idx+1]
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
