package cli

import (
	"fmt"
	"os"

	"github.com/compline/compline/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	Dir string // directory to inspect; "" means cwd
}

// Status displays the current compline configuration status
func Status(params StatusParams) error {
	dir := params.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	data, err := status.CollectAll(dir)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	fmt.Println(status.Render(data))
	return nil
}
