// File: pkg/review/stats.go
package review

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Stats gathers per-project summary counts for every project under the
// base folder. Projects are scanned concurrently, up to workers at a time,
// and results come back in listing order.
func (a *Analyzer) Stats(workers int) ([]ProjectStat, error) {
	projects, err := ListProjects(a.cfg.BaseFolder)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	stats := make([]ProjectStat, len(projects))

	var group errgroup.Group
	group.SetLimit(workers)
	for i, project := range projects {
		group.Go(func() error {
			stat, err := a.projectStat(project)
			if err != nil {
				return fmt.Errorf("failed to gather stats for %s: %w", project, err)
			}
			stats[i] = stat
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// projectStat counts one project's source files and existing report records.
func (a *Analyzer) projectStat(project string) (ProjectStat, error) {
	files, err := a.collectSourceFiles(filepath.Join(a.cfg.BaseFolder, project))
	if err != nil {
		return ProjectStat{}, err
	}

	records, hasReport, err := a.reporter.CountRecords(project)
	if err != nil {
		return ProjectStat{}, err
	}

	return ProjectStat{
		Name:        project,
		SourceFiles: len(files),
		Records:     records,
		HasReport:   hasReport,
	}, nil
}
