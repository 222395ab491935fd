package config

import (
	"os"
	"strings"

	"github.com/compline/compline/internal/complete"
	"github.com/compline/compline/internal/match"
)

// Build compiles a configuration into a completion source: the first word
// of the line is served by the command segment, every following word by the
// arguments segment.
func (c *Config) Build() complete.Source {
	command := c.buildSegment(&c.Command)
	arguments := c.buildSegment(&c.Arguments)

	return complete.Concat(c.Separator, command, complete.Kleene(c.Separator, arguments))
}

// withMatcher applies the configured matcher to a list-backed source. File
// sources keep their own basename-scoped matching regardless.
func (c *Config) withMatcher(src complete.Source) complete.Source {
	if c.Matcher == MatcherFuzzy {
		return complete.UpdateMatch(src, match.Fuzzy)
	}
	return src
}

func (c *Config) buildSegment(seg *SegmentConfig) complete.Source {
	if words := seg.GetWords(); len(words) > 0 {
		entries := make([]complete.Entry, 0, len(words))
		for _, w := range words {
			entries = append(entries, complete.Entry{
				Display: c.expandTemplate(w.Value),
				Doc:     w.Doc,
			})
		}
		return c.withMatcher(complete.FromList(entries))
	}

	if seg.Binaries {
		pathValue := os.Getenv("PATH")
		if seg.Path != "" {
			pathValue = c.expandTemplate(seg.Path)
		}
		return c.withMatcher(complete.Binaries(pathValue))
	}

	if seg.Files {
		filter := extensionFilter(seg.Extensions)
		if seg.Root != "" {
			return complete.Files(c.expandTemplate(seg.Root), filter)
		}
		return complete.Paths(filter)
	}

	// nothing enabled: the segment completes to nothing
	return complete.FromList(nil)
}

// extensionFilter keeps directories (so path navigation still descends) and
// files carrying one of the given suffixes. A nil result means no filtering.
func extensionFilter(extensions []string) func(path string) bool {
	if len(extensions) == 0 {
		return nil
	}
	return func(path string) bool {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return true
		}
		for _, ext := range extensions {
			if strings.HasSuffix(path, ext) {
				return true
			}
		}
		return false
	}
}
