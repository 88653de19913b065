// Package validation guards the file path the generator writes to. It
// rejects traversal attempts and confirms the target directory exists and is
// writable before any rendering work starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeProbe is the throwaway file name used to test directory writability.
const writeProbe = ".meai_write_test"

// ValidateOutputPath checks that outputPath is safe to write a diagram to:
// not empty, free of traversal segments, and inside an existing writable
// directory.
func ValidateOutputPath(outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}

	cleanPath := filepath.Clean(outputPath)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal detected in output path: %s", outputPath)
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := filepath.Dir(absPath)
	dirInfo, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory does not exist: %s", dir)
		}
		return fmt.Errorf("failed to access output directory: %w", err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("output path parent is not a directory: %s", dir)
	}

	// Writability check: create and remove a throwaway file.
	probe := filepath.Join(dir, writeProbe)
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("output directory is not writable: %s: %w", dir, err)
	}
	f.Close()
	os.Remove(probe)

	return nil
}
