// File: pkg/review/watch.go
package review

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher re-extracts a project's source files as they change on disk.
// Change events are debounced so an editor's save burst lands as a single
// batch of appended records.
type Watcher struct {
	analyzer   *Analyzer
	project    string
	projectDir string
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	closeOnce  sync.Once
}

// NewWatcher builds a Watcher for one project under the analyzer's base
// folder. The whole directory tree is registered up front; directories
// created while watching are added as their events arrive.
func NewWatcher(analyzer *Analyzer, project string) (*Watcher, error) {
	projectDir, err := analyzer.projectDir(project)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		analyzer:   analyzer,
		project:    project,
		projectDir: projectDir,
		watcher:    fsWatcher,
		debounce:   defaultDebounce,
	}

	if err := w.addDirectoriesRecursively(projectDir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Close releases the underlying file system watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

// Run watches until ctx is canceled, appending fresh records for each
// debounced batch of changed source files. Cancellation is the normal way
// to stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Close()

	logger := w.analyzer.logger
	logger.Info("Watching project for changes",
		zap.String("project", w.project),
		zap.String("projectDir", w.projectDir))

	var debounceTimer *time.Timer
	extractCh := make(chan struct{}, 1)
	changed := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.shouldWatchDirectory(event.Name) {
						if err := w.addDirectoriesRecursively(event.Name); err != nil {
							logger.Warn("Failed to watch new directory", zap.String("directory", event.Name), zap.Error(err))
						}
					}
					continue
				}
			}

			if !w.shouldProcessEvent(event) {
				continue
			}
			changed[event.Name] = true

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				select {
				case extractCh <- struct{}{}:
				default:
				}
			})

		case <-extractCh:
			w.extractBatch(changed)
			changed = make(map[string]bool)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("File watcher error", zap.Error(err))
		}
	}
}

// extractBatch appends records for every file in the batch, in path order.
// A file that vanished between its event and now falls through the usual
// per-file fault boundary.
func (w *Watcher) extractBatch(changed map[string]bool) {
	if len(changed) == 0 {
		return
	}

	files := make([]string, 0, len(changed))
	for file := range changed {
		files = append(files, file)
	}
	sort.Strings(files)

	logger := w.analyzer.logger
	logger.Info("Re-extracting changed files", zap.Int("files", len(files)))
	startTime := time.Now()

	failures := 0
	for _, file := range files {
		fmt.Fprintln(w.analyzer.progress, titleCase(filepath.Base(file)))
		if err := w.analyzer.processFile(file, w.project); err != nil {
			failures++
		}
	}

	logger.Info("Batch complete",
		zap.Int("files", len(files)),
		zap.Int("failures", failures),
		zap.Duration("elapsed", time.Since(startTime)))
}

// shouldProcessEvent reports whether the event names a source file whose
// change warrants re-extraction, applying the same extension, exclude, and
// size rules as the project walk. The project's own report file never
// qualifies, so report appends cannot retrigger the watcher.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}

	if event.Name == ReportPath(w.analyzer.cfg.BaseFolder, w.project) {
		return false
	}

	if !hasSourceExtension(filepath.Base(event.Name), w.analyzer.cfg.Extensions) {
		return false
	}

	relPath, err := filepath.Rel(w.projectDir, event.Name)
	if err != nil {
		return false
	}
	if w.analyzer.excludes.Match(filepath.ToSlash(relPath)) {
		return false
	}

	if w.analyzer.cfg.MaxFileSizeKB > 0 {
		info, err := os.Stat(event.Name)
		if err != nil {
			return false
		}
		if info.Size() > int64(w.analyzer.cfg.MaxFileSizeKB)*1024 {
			w.analyzer.logger.Debug("Skipping file due to size limit",
				zap.String("filePath", event.Name),
				zap.Int64("sizeBytes", info.Size()))
			return false
		}
	}
	return true
}

// shouldWatchDirectory reports whether a directory belongs under watch.
func (w *Watcher) shouldWatchDirectory(path string) bool {
	relPath, err := filepath.Rel(w.projectDir, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)
	if relPath == "." {
		return true
	}
	return !w.analyzer.excludes.Match(relPath)
}

// addDirectoriesRecursively registers every watchable directory under
// rootPath. Directories that cannot be accessed are logged and skipped.
func (w *Watcher) addDirectoriesRecursively(rootPath string) error {
	return filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.analyzer.logger.Warn("Error accessing path during watch setup", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if !w.shouldWatchDirectory(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.analyzer.logger.Warn("Failed to watch directory", zap.String("directory", path), zap.Error(err))
		}
		return nil
	})
}
