package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, ".compline.yml", `
separator: " "
matcher: fuzzy
command:
  binaries: true
arguments:
  files: true
  extensions: [".go", ".md"]
`)

	cfg, err := New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, " ", cfg.Separator)
	assert.Equal(t, MatcherFuzzy, cfg.Matcher)
	assert.True(t, cfg.Command.Binaries)
	assert.True(t, cfg.Arguments.Files)
	assert.Equal(t, []string{".go", ".md"}, cfg.Arguments.Extensions)
	assert.Equal(t, filepath.Dir(path), cfg.ConfigDir)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, ".compline.toml", `
separator = ":"

[command]
words = ["start", "stop"]
`)

	cfg, err := New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":", cfg.Separator)
	words := cfg.Command.GetWords()
	require.Len(t, words, 2)
	assert.Equal(t, "start", words[0].Value)
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, ".compline.json", `{"matcher": "substring", "arguments": {"files": true}}`)

	cfg, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, MatcherSubstring, cfg.Matcher)
	assert.True(t, cfg.Arguments.Files)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, ".compline.yml", `matcher: fuzzy`)

	cfg, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeparator, cfg.Separator)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.ini", `separator=" "`)

	_, err := New().Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, ".compline.yml", "separator: [unclosed")

	_, err := New().Load(path)
	assert.Error(t, err)
}

func TestGetWords_MixedShapes(t *testing.T) {
	seg := SegmentConfig{Words: []interface{}{
		"plain",
		map[string]interface{}{"value": "rich", "doc": "described"},
		map[string]interface{}{"doc": "no value, dropped"},
		42,
	}}

	words := seg.GetWords()
	require.Len(t, words, 2)
	assert.Equal(t, WordEntry{Value: "plain"}, words[0])
	assert.Equal(t, WordEntry{Value: "rich", Doc: "described"}, words[1])
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultSeparator, cfg.Separator)
	assert.Equal(t, MatcherSubstring, cfg.Matcher)
	assert.True(t, cfg.Command.Binaries)
	assert.True(t, cfg.Arguments.Files)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "", Find(dir))

	path := filepath.Join(dir, ".compline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matcher: fuzzy"), 0o644))
	assert.Equal(t, path, Find(dir))

	// .yml wins over .yaml, following the preference order
	preferred := filepath.Join(dir, ".compline.yml")
	require.NoError(t, os.WriteFile(preferred, []byte("matcher: fuzzy"), 0o644))
	assert.Equal(t, preferred, Find(dir))
}

func TestSegmentConfig_Empty(t *testing.T) {
	assert.True(t, (&SegmentConfig{}).Empty())
	assert.False(t, (&SegmentConfig{Binaries: true}).Empty())
	assert.False(t, (&SegmentConfig{Files: true}).Empty())
	assert.False(t, (&SegmentConfig{Words: []interface{}{"w"}}).Empty())
}
