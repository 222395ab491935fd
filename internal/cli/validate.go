package cli

import (
	"fmt"
	"os"

	"github.com/compline/compline/internal/cerrors"
	"github.com/compline/compline/internal/config"
)

// Validate validates a compline configuration file
func Validate(configPath string) error {
	// If no path provided, look for config in current directory
	if configPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		configPath = config.Find(currentDir)
		if configPath == "" {
			return fmt.Errorf("no config file found in current directory")
		}
	}

	fmt.Printf("Validating: %s\n\n", configPath)

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Println("✅ Configuration is valid!")
		return nil
	}

	fmt.Println("❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		fmt.Printf("%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Printf("\nFound %d error(s)\n", len(result.Errors))

	return cerrors.NewValidationError(result.Errors[0].Field, "validation failed", nil)
}
