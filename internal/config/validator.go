package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/compline/compline/internal/cerrors"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate validates a config file: schema first, then semantic checks the
// schema cannot express.
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.NewConfigurationError(path, "config file not found", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	loader := New()
	cfg, err := loader.Load(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse config: %v", err),
		})
		return result, nil
	}

	if len(cfg.Separator) != 1 {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "separator",
			Message: fmt.Sprintf("Separator must be a single character, got %q", cfg.Separator),
		})
	}

	for name, seg := range map[string]*SegmentConfig{"command": &cfg.Command, "arguments": &cfg.Arguments} {
		if seg.Path != "" && !seg.Binaries {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   name + "/path",
				Message: "path is only meaningful with binaries: true",
			})
		}
		if (seg.Root != "" || len(seg.Extensions) > 0) && !seg.Files {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   name + "/root",
				Message: "root and extensions are only meaningful with files: true",
			})
		}
		for i, ext := range seg.Extensions {
			if !strings.HasPrefix(ext, ".") {
				result.Valid = false
				result.Errors = append(result.Errors, ValidationError{
					Field:   fmt.Sprintf("%s/extensions/%d", name, i),
					Message: fmt.Sprintf("Extension %q must start with a dot", ext),
				})
			}
		}
	}

	return result, nil
}
