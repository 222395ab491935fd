package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")

	require.NoError(t, Schema(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "$schema")
	assert.Contains(t, string(content), "separator")
}

func TestSchema_WriteToInvalidPath(t *testing.T) {
	err := Schema(filepath.Join(t.TempDir(), "missing", "schema.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write schema")
}

func TestSchema_Stdout(t *testing.T) {
	assert.NoError(t, Schema(""))
}
