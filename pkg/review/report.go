// File: pkg/review/report.go
package review

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReportPath returns the report file location for a project: the report
// lives inside the project directory and is named after it.
func ReportPath(baseFolder, project string) string {
	return filepath.Join(baseFolder, project, project+ReportSuffix)
}

// ReportWriter appends records to per-project report files. Each Append
// opens, writes, and closes the file independently; nothing is held open
// between records.
type ReportWriter struct {
	baseFolder string
}

// NewReportWriter returns a ReportWriter rooted at the base folder.
func NewReportWriter(baseFolder string) *ReportWriter {
	return &ReportWriter{baseFolder: baseFolder}
}

// Append writes one record to the project's report, creating the file on
// first use. The record is four parts: the category line, the file line,
// the content block (lines joined with their own terminators), and a blank
// separator line.
func (w *ReportWriter) Append(project string, rec Record) error {
	outputPath := ReportPath(w.baseFolder, project)

	outFile, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open report %s: %w", outputPath, err)
	}

	writer := bufio.NewWriter(outFile)
	_, err = fmt.Fprintf(writer, "Category: %s\nFile: %s\nContent:\n%s\n\n",
		rec.Category, rec.FilePath, strings.Join(rec.Lines, ""))
	if err == nil {
		err = writer.Flush()
	}

	if closeErr := outFile.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write report %s: %w", outputPath, err)
	}
	return nil
}

// CountRecords returns how many records the project's report currently
// holds, identified by their category header lines. A missing report counts
// as zero records.
func (w *ReportWriter) CountRecords(project string) (int, bool, error) {
	outputPath := ReportPath(w.baseFolder, project)

	content, err := os.ReadFile(outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read report %s: %w", outputPath, err)
	}

	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "Category: ") {
			count++
		}
	}
	return count, true, nil
}
