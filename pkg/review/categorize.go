// File: pkg/review/categorize.go
package review

import (
	"fmt"
	"path/filepath"
)

// RootCategory labels files that sit directly at the project root.
const RootCategory = "Root"

// Categorize derives the category of a source file from its folder position
// inside the project directory. Files at the project root map to
// RootCategory; deeper files map to their relative directory path with
// forward slashes, which may span several segments ("Sources/Utils").
func Categorize(projectDir, filePath string) (string, error) {
	rel, err := filepath.Rel(projectDir, filePath)
	if err != nil {
		return "", fmt.Errorf("categorize %s: %w", filePath, err)
	}

	dir := filepath.Dir(rel)
	if dir == "." {
		return RootCategory, nil
	}
	return filepath.ToSlash(dir), nil
}
