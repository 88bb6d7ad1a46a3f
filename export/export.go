package export

import (
	"fmt"
	"os"
)

// WriteTrajectory writes trajectory content to path, replacing any existing
// file. Exports are full rewrites, never appends.
func WriteTrajectory(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write trajectory file: %w", err)
	}
	return nil
}
