// File: pkg/review/review.go

// Package review extracts reviewable source code from project trees. It
// lists the projects under a base folder, lets the caller pick one, walks
// that project's tree for source files, strips comment-style lines, and
// appends each file as a categorized record to the project's report file.
package review

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Analyzer runs the extraction pipeline for projects under one base folder.
type Analyzer struct {
	cfg      Config
	logger   *zap.Logger
	chooser  ProjectChooser
	progress io.Writer
	reporter *ReportWriter
	excludes *ExcludeSet
}

// Option adjusts an Analyzer at construction time.
type Option func(*Analyzer)

// WithChooser replaces the interactive project chooser.
func WithChooser(chooser ProjectChooser) Option {
	return func(a *Analyzer) {
		a.chooser = chooser
	}
}

// WithProgress redirects the per-file progress lines, which otherwise go to
// stdout. The progress stream never passes through the logger.
func WithProgress(w io.Writer) Option {
	return func(a *Analyzer) {
		a.progress = w
	}
}

// New builds an Analyzer for the given configuration. A nil logger falls
// back to a no-op logger. The exclude patterns are compiled once here, so
// an invalid pattern fails construction.
func New(cfg Config, logger *zap.Logger, opts ...Option) (*Analyzer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}

	excludes, err := CompileExcludes(cfg.Exclude)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:      cfg,
		logger:   logger,
		chooser:  NewPromptChooser(os.Stdin, os.Stdout),
		progress: os.Stdout,
		reporter: NewReportWriter(cfg.BaseFolder),
		excludes: excludes,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run executes the whole pipeline: list the projects, obtain a choice, and
// analyze the chosen project.
func (a *Analyzer) Run() error {
	project, err := a.SelectProject()
	if err != nil {
		return err
	}
	return a.AnalyzeProject(project)
}

// SelectProject lists the base folder's projects as a numbered list on the
// logger and asks the chooser for one of them.
func (a *Analyzer) SelectProject() (string, error) {
	projects, err := ListProjects(a.cfg.BaseFolder)
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", fmt.Errorf("no projects found in %s", a.cfg.BaseFolder)
	}

	a.logger.Info("Available Projects:")
	for i, project := range projects {
		a.logger.Info(fmt.Sprintf("%d. %s", i+1, project))
	}

	project, err := a.chooser.Choose(projects)
	if err != nil {
		return "", fmt.Errorf("project selection failed: %w", err)
	}
	return project, nil
}

// AnalyzeProject extracts every source file of the named project into its
// report. Files are processed sequentially in traversal order; a failing
// file is logged and skipped, never aborting the batch.
func (a *Analyzer) AnalyzeProject(project string) error {
	projectDir, err := a.projectDir(project)
	if err != nil {
		return err
	}

	startTime := time.Now()
	files, err := a.collectSourceFiles(projectDir)
	if err != nil {
		return fmt.Errorf("failed to scan project %s: %w", project, err)
	}

	failures := 0
	for _, file := range files {
		fmt.Fprintln(a.progress, titleCase(filepath.Base(file)))
		if err := a.processFile(file, project); err != nil {
			failures++
		}
	}

	a.logger.Info("Analysis complete",
		zap.String("project", project),
		zap.Int("files", len(files)),
		zap.Int("failures", failures),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// projectDir resolves and validates the project's directory under the base
// folder. A missing or non-directory project is a selection error: it ends
// the run before any record is written.
func (a *Analyzer) projectDir(project string) (string, error) {
	dir := filepath.Join(a.cfg.BaseFolder, project)
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("project %s not found under %s: %w", project, a.cfg.BaseFolder, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project %s is not a directory", dir)
	}
	return dir, nil
}
