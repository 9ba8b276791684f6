// File: pkg/review/review_test.go
package review

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fixedChooser returns a predetermined choice without any interaction.
type fixedChooser struct {
	choice string
	err    error
}

func (c fixedChooser) Choose(projects []string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.choice, nil
}

func newTestAnalyzer(t *testing.T, cfg Config, opts ...Option) (*Analyzer, *observer.ObservedLogs, *bytes.Buffer) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	progress := &bytes.Buffer{}
	opts = append(opts, WithProgress(progress))

	analyzer, err := New(cfg, zap.New(core), opts...)
	require.NoError(t, err)
	return analyzer, logs, progress
}

// writeDemoProject lays out the two-file fixture used by the end-to-end
// tests: one source at the project root, one in a subdirectory, both with a
// comment line to strip.
func writeDemoProject(t *testing.T, base string) string {
	t.Helper()

	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, filepath.Join(demoDir, "Sub"))
	writeTestFile(t, filepath.Join(demoDir, "Root.swift"), "// comment\nlet x = 1\n")
	writeTestFile(t, filepath.Join(demoDir, "Sub", "Nested.h"), "/* c */\nint y;\n")
	return demoDir
}

func TestAnalyzerRunEndToEnd(t *testing.T) {
	base := t.TempDir()
	demoDir := writeDemoProject(t, base)

	analyzer, logs, progress := newTestAnalyzer(t, Config{BaseFolder: base},
		WithChooser(fixedChooser{choice: "Demo"}))
	require.NoError(t, analyzer.Run())

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	expected := "Category: Root\nFile: " + filepath.Join(demoDir, "Root.swift") +
		"\nContent:\nlet x = 1\n\n\n" +
		"Category: Sub\nFile: " + filepath.Join(demoDir, "Sub", "Nested.h") +
		"\nContent:\nint y;\n\n\n"
	assert.Equal(t, expected, string(report))

	// One title-cased progress line per processed file, on the progress
	// stream rather than the logger.
	assert.Equal(t, "Root.Swift\nNested.H\n", progress.String())

	// The numbered project list goes to the logger.
	assert.Equal(t, 1, logs.FilterMessage("Available Projects:").Len())
	assert.Equal(t, 1, logs.FilterMessage("1. Demo").Len())
}

func TestAnalyzerRerunAppendsDuplicates(t *testing.T) {
	base := t.TempDir()
	writeDemoProject(t, base)

	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: base})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	first, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	second, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	// Re-running appends a full second copy of every record.
	assert.Equal(t, string(first)+string(first), string(second))
}

func TestAnalyzerSkipsFailedFiles(t *testing.T) {
	base := t.TempDir()
	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, demoDir)
	writeTestFile(t, filepath.Join(demoDir, "Alpha.swift"), "let a = 1\n")
	require.NoError(t, os.Symlink("does-not-exist", filepath.Join(demoDir, "Bad.swift")))
	writeTestFile(t, filepath.Join(demoDir, "Gamma.m"), "int g;\n")

	analyzer, logs, progress := newTestAnalyzer(t, Config{BaseFolder: base})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	// The unreadable file is logged and skipped; both healthy files land.
	assert.Equal(t, 2, strings.Count(string(report), "Category: "))
	assert.Contains(t, string(report), "Alpha.swift")
	assert.Contains(t, string(report), "Gamma.m")
	assert.NotContains(t, string(report), "Bad.swift")
	assert.Equal(t, 1, logs.FilterMessage("Error processing file").Len())

	// The progress line still announced the file before it failed.
	assert.Equal(t, "Alpha.Swift\nBad.Swift\nGamma.M\n", progress.String())
}

func TestAnalyzerSkipsUndecodableFiles(t *testing.T) {
	base := t.TempDir()
	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, demoDir)
	require.NoError(t, os.WriteFile(filepath.Join(demoDir, "Binary.swift"), []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))
	writeTestFile(t, filepath.Join(demoDir, "Clean.swift"), "let c = 1\n")

	analyzer, logs, _ := newTestAnalyzer(t, Config{BaseFolder: base})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(report), "Category: "))
	assert.Contains(t, string(report), "Clean.swift")
	assert.Equal(t, 1, logs.FilterMessage("Error processing file").Len())
}

func TestAnalyzerSelectsByExtension(t *testing.T) {
	base := t.TempDir()
	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, demoDir)
	writeTestFile(t, filepath.Join(demoDir, "App.swift"), "let a = 1\n")
	writeTestFile(t, filepath.Join(demoDir, "Header.h"), "int h;\n")
	writeTestFile(t, filepath.Join(demoDir, "Impl.m"), "int m;\n")
	writeTestFile(t, filepath.Join(demoDir, "Other.kt"), "val k = 1\n")
	writeTestFile(t, filepath.Join(demoDir, "Other.cpp"), "int c;\n")
	writeTestFile(t, filepath.Join(demoDir, "Upper.SWIFT"), "let u = 1\n")
	writeTestFile(t, filepath.Join(demoDir, "notes.txt"), "notes\n")

	analyzer, _, progress := newTestAnalyzer(t, Config{BaseFolder: base})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	// The suffix match is case sensitive: only .swift, .h, and .m count.
	assert.Equal(t, 3, strings.Count(string(report), "Category: "))
	assert.NotContains(t, string(report), "Other.kt")
	assert.NotContains(t, string(report), "Other.cpp")
	assert.NotContains(t, string(report), "Upper.SWIFT")
	assert.NotContains(t, string(report), "notes.txt")
	assert.Equal(t, "App.Swift\nHeader.H\nImpl.M\n", progress.String())
}

func TestAnalyzerExcludePruning(t *testing.T) {
	base := t.TempDir()
	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, filepath.Join(demoDir, "Pods", "Alamofire"))
	writeTestFile(t, filepath.Join(demoDir, "App.swift"), "let a = 1\n")
	writeTestFile(t, filepath.Join(demoDir, "Pods", "Alamofire", "Session.swift"), "let s = 1\n")

	analyzer, logs, _ := newTestAnalyzer(t, Config{BaseFolder: base, Exclude: []string{"Pods/**"}})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(report), "Category: "))
	assert.NotContains(t, string(report), "Session.swift")

	// The active exclude patterns ride along on the collection debug line.
	entries := logs.FilterMessage("Starting source file collection").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []interface{}{"Pods/**"}, entries[0].ContextMap()["excludes"])
}

func TestAnalyzerSizeGuard(t *testing.T) {
	base := t.TempDir()
	demoDir := filepath.Join(base, "Demo")
	mustMkdir(t, demoDir)
	writeTestFile(t, filepath.Join(demoDir, "Big.swift"), strings.Repeat("let xx = 1\n", 200))
	writeTestFile(t, filepath.Join(demoDir, "Small.swift"), "let s = 1\n")

	analyzer, logs, _ := newTestAnalyzer(t, Config{BaseFolder: base, MaxFileSizeKB: 1})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(report), "Category: "))
	assert.NotContains(t, string(report), "Big.swift")
	assert.Equal(t, 1, logs.FilterMessage("Skipping file due to size limit").Len())
}

func TestAnalyzerRunNoProjects(t *testing.T) {
	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "stray.txt"), "not a project\n")

	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: base})
	err := analyzer.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no projects found")
}

func TestAnalyzerRunChooserError(t *testing.T) {
	base := t.TempDir()
	writeDemoProject(t, base)

	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: base},
		WithChooser(fixedChooser{err: errors.New("boom")}))
	err := analyzer.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project selection failed")
}

func TestAnalyzerUnknownProject(t *testing.T) {
	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: t.TempDir()})

	err := analyzer.AnalyzeProject("Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAnalyzerProjectMustBeDirectory(t *testing.T) {
	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "Flat"), "just a file\n")

	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: base})
	err := analyzer.AnalyzeProject("Flat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestAnalyzerRerunIgnoresOwnReport(t *testing.T) {
	base := t.TempDir()
	writeDemoProject(t, base)

	analyzer, _, _ := newTestAnalyzer(t, Config{BaseFolder: base})
	require.NoError(t, analyzer.AnalyzeProject("Demo"))
	require.NoError(t, analyzer.AnalyzeProject("Demo"))

	report, err := os.ReadFile(ReportPath(base, "Demo"))
	require.NoError(t, err)

	// The report lives inside the project but is a .txt file, so a re-run
	// never feeds the report back into itself.
	assert.NotContains(t, string(report), "Demo_code_review.txt")
}

func TestNewRejectsBadExcludes(t *testing.T) {
	_, err := New(Config{BaseFolder: ".", Exclude: []string{"["}}, zap.NewNop())
	require.Error(t, err)
}
