package cerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := NewConfigurationError("/tmp/.compline.yml", "failed to parse config", cause)

	assert.Equal(t, "CONFIG_ERROR", err.Code())
	assert.Equal(t, "/tmp/.compline.yml", err.Path)
	assert.Contains(t, err.Error(), "failed to parse config")
	assert.Contains(t, err.Error(), "yaml: line 3")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError_NoCause(t *testing.T) {
	err := NewValidationError("separator", "separator must not be empty", nil)

	assert.Equal(t, "VALIDATION_ERROR", err.Code())
	assert.Equal(t, "separator", err.Field)
	assert.Equal(t, "separator must not be empty", err.Error())
}

func TestValidationError_AsInterface(t *testing.T) {
	var err error = NewValidationError("matcher", "unknown matcher", nil)

	var typed Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "VALIDATION_ERROR", typed.Code())
}
