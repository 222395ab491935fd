// Package status collects and renders the current compline configuration.
package status

import (
	"fmt"
	"os"
	"strings"

	"github.com/compline/compline/internal/config"
	"github.com/compline/compline/pkg/version"
)

// CollectAll gathers status data for the given directory.
func CollectAll(dir string) (*Data, error) {
	data := &Data{
		WorkingDir: dir,
		Version:    version.Version,
		Valid:      true,
	}

	cfg := config.Default()
	if path := config.Find(dir); path != "" {
		data.ConfigPath = path

		result, err := config.Validate(path)
		if err == nil {
			data.Valid = result.Valid
			for _, e := range result.Errors {
				data.Errors = append(data.Errors, fmt.Sprintf("%s: %s", e.Field, e.Message))
			}
		}

		if loaded, err := config.New().Load(path); err == nil {
			cfg = loaded
		}
	}

	data.Separator = cfg.Separator
	data.Matcher = cfg.Matcher
	data.Command = summarize(&cfg.Command)
	data.Arguments = summarize(&cfg.Arguments)

	home, _ := os.UserHomeDir()
	data.Home = home
	if path := os.Getenv("PATH"); path != "" {
		data.PathDirs = len(strings.Split(path, ":"))
	}

	return data, nil
}

func summarize(seg *config.SegmentConfig) SegmentInfo {
	switch {
	case len(seg.Words) > 0:
		return SegmentInfo{Kind: "words", Detail: fmt.Sprintf("%d entries", len(seg.GetWords()))}
	case seg.Binaries:
		detail := "$PATH"
		if seg.Path != "" {
			detail = seg.Path
		}
		return SegmentInfo{Kind: "binaries", Detail: detail}
	case seg.Files:
		detail := "./ ~/ / prefixes"
		if seg.Root != "" {
			detail = seg.Root
		}
		if len(seg.Extensions) > 0 {
			detail += " (" + strings.Join(seg.Extensions, ", ") + ")"
		}
		return SegmentInfo{Kind: "files", Detail: detail}
	default:
		return SegmentInfo{Kind: "none"}
	}
}
