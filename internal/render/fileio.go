package render

import (
	"fmt"
	"os"
)

// writeFile writes data to the given path, replacing any existing file.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
