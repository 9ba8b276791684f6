// File: pkg/review/process.go
package review

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// processFile reads one source file, strips its comment lines, and appends
// the resulting record to the project's report. Failures are logged and
// returned; one bad file never aborts the batch.
func (a *Analyzer) processFile(path, project string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("Error processing file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	if !isTextContent(data) {
		err := fmt.Errorf("file is not valid UTF-8 text")
		a.logger.Error("Error processing file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := FilterComments(SplitLines(string(data)))

	projectDir := filepath.Join(a.cfg.BaseFolder, project)
	category, err := Categorize(projectDir, path)
	if err != nil {
		a.logger.Error("Error categorizing file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	record := Record{Category: category, FilePath: path, Lines: lines}
	if err := a.reporter.Append(project, record); err != nil {
		a.logger.Error("Error writing report record",
			zap.String("filePath", path),
			zap.String("reportPath", ReportPath(a.cfg.BaseFolder, project)),
			zap.Error(err))
		return err
	}

	a.logger.Debug("Extracted file",
		zap.String("filePath", path),
		zap.String("category", category),
		zap.Int("lines", len(lines)))
	return nil
}

// isTextContent reports whether data decodes as text. Null bytes or invalid
// UTF-8 sequences mark the file as undecodable.
func isTextContent(data []byte) bool {
	if bytes.IndexByte(data, 0) != -1 {
		return false
	}
	return utf8.Valid(data)
}
