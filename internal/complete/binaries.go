package complete

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Binaries discovers executables on a PATH-like search path value. The scan
// runs once, lazily, when candidates are first requested; filtering against
// the query happens through each candidate's matcher, never in Compute.
// Unreadable directories and entries without the executable bit are skipped.
func Binaries(pathValue string) Source {
	return FromListLazy(func() []Entry {
		return scanPath(pathValue)
	})
}

func scanPath(pathValue string) []Entry {
	var entries []Entry
	for _, dir := range strings.Split(pathValue, ":") {
		if dir == "" {
			continue
		}
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, de := range dirEntries {
			full := filepath.Join(dir, de.Name())
			info, err := os.Stat(full)
			if err != nil {
				continue
			}
			if !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
				continue
			}
			entries = append(entries, Entry{Display: de.Name(), Real: de.Name(), Doc: dir})
		}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(strings.ToLower(a.Display), strings.ToLower(b.Display)); c != 0 {
			return c
		}
		return strings.Compare(a.Display, b.Display)
	})
	return entries
}
