package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for compline configuration
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidateWithSchema validates config file content against the JSON Schema
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	// Determine file format and convert to a JSON-compatible structure
	var data interface{}

	switch {
	case strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".yaml"):
		if err := yaml.Unmarshal(content, &data); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid YAML syntax: %v", err),
			})
			return result, nil
		}
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(content, &data); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid JSON syntax: %v", err),
			})
			return result, nil
		}
	case strings.HasSuffix(path, ".toml"):
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(content), toml.Parser()); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, ValidationError{
				Field:   "syntax",
				Message: fmt.Sprintf("Invalid TOML syntax: %v", err),
			})
			return result, nil
		}
		data = k.Raw()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(data)

	schemaResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if !schemaResult.Valid() {
		result.Valid = false
		for _, desc := range schemaResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
	}

	return result, nil
}
