// File: pkg/review/report_test.go
package review

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/base", "Demo", "Demo_code_review.txt"),
		ReportPath("/base", "Demo"))
}

func TestReportWriterAppend(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "Demo"))

	writer := NewReportWriter(base)
	rec := Record{
		Category: "Root",
		FilePath: "/projects/Demo/Root.swift",
		Lines:    []string{"let x = 1\n"},
	}
	require.NoError(t, writer.Append("Demo", rec))

	content, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t,
		"Category: Root\nFile: /projects/Demo/Root.swift\nContent:\nlet x = 1\n\n\n",
		string(content))
}

func TestReportWriterAppendAccumulates(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "Demo"))

	writer := NewReportWriter(base)
	rec := Record{Category: "Sub", FilePath: "/p/Sub/a.h", Lines: []string{"int y;\n"}}
	require.NoError(t, writer.Append("Demo", rec))
	require.NoError(t, writer.Append("Demo", rec))

	content, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	one := "Category: Sub\nFile: /p/Sub/a.h\nContent:\nint y;\n\n\n"
	assert.Equal(t, one+one, string(content))
}

func TestReportWriterEmptyContent(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "Demo"))

	writer := NewReportWriter(base)
	rec := Record{Category: "Root", FilePath: "/p/empty.m", Lines: nil}
	require.NoError(t, writer.Append("Demo", rec))

	content, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, "Category: Root\nFile: /p/empty.m\nContent:\n\n\n", string(content))
}

func TestReportWriterMissingProjectDir(t *testing.T) {
	writer := NewReportWriter(t.TempDir())

	err := writer.Append("Ghost", Record{Category: "Root", FilePath: "x.swift"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open report")
}

func TestCountRecords(t *testing.T) {
	base := t.TempDir()
	mustMkdir(t, filepath.Join(base, "Demo"))
	writer := NewReportWriter(base)

	count, exists, err := writer.CountRecords("Demo")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, count)

	require.NoError(t, writer.Append("Demo", Record{Category: "Root", FilePath: "a.swift", Lines: []string{"let a = 1\n"}}))
	require.NoError(t, writer.Append("Demo", Record{Category: "Sub", FilePath: "b.swift", Lines: []string{"let b = 2\n"}}))

	count, exists, err = writer.CountRecords("Demo")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 2, count)

	// The report content itself never produces false header lines here:
	// indented or prefixed text does not start the line with the marker.
	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(report), "Category: "))
}
