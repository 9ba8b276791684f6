// File: pkg/review/walk.go
package review

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// collectSourceFiles walks projectDir and returns the source files to
// extract, in traversal order. Paths that cannot be accessed are logged
// and skipped.
func (a *Analyzer) collectSourceFiles(projectDir string) ([]string, error) {
	var files []string
	a.logger.Debug("Starting source file collection",
		zap.String("projectDir", projectDir),
		zap.Strings("excludes", a.excludes.Patterns()))

	err := filepath.WalkDir(projectDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			a.logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip paths that cause errors
		}

		relPath, _ := filepath.Rel(projectDir, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath != "." && a.excludes.Match(relPath) {
				a.logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !hasSourceExtension(d.Name(), a.cfg.Extensions) {
			return nil
		}

		if a.excludes.Match(relPath) {
			a.logger.Debug("Skipping excluded file", zap.String("filePath", path))
			return nil
		}

		if a.cfg.MaxFileSizeKB > 0 {
			info, err := d.Info()
			if err != nil {
				a.logger.Warn("Failed to get file info during traversal", zap.String("filePath", path), zap.Error(err))
				return nil
			}
			if info.Size() > int64(a.cfg.MaxFileSizeKB)*1024 {
				a.logger.Debug("Skipping file due to size limit", zap.String("filePath", path), zap.Int64("sizeBytes", info.Size()))
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		a.logger.Error("Error during project traversal", zap.Error(err))
		return files, err
	}

	a.logger.Debug("Completed source file collection", zap.Int("sourceFiles", len(files)))
	return files, nil
}

// hasSourceExtension reports whether name ends in one of the configured
// source extensions. Matching is case sensitive: Foo.M is not Foo.m.
func hasSourceExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
