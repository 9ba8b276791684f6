// File: pkg/review/ignore.go
package review

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern pairs a pattern with its compiled form for error messages
// and debug logging.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// ExcludeSet holds compiled glob patterns matched against slash-separated
// paths relative to the project directory. An empty set excludes nothing.
type ExcludeSet struct {
	patterns []compiledPattern
}

// CompileExcludes compiles the given glob patterns into an ExcludeSet.
// Patterns use '/' as the separator regardless of platform.
func CompileExcludes(patterns []string) (*ExcludeSet, error) {
	es := &ExcludeSet{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		es.patterns = append(es.patterns, compiledPattern{pattern: pattern, glob: g})
	}
	return es, nil
}

// Match reports whether the relative path matches any exclude pattern.
// Directories also match patterns written with a trailing "/**", so
// "Pods/**" prunes the Pods directory itself.
func (es *ExcludeSet) Match(relPath string) bool {
	if es == nil || len(es.patterns) == 0 {
		return false
	}

	relPath = strings.TrimSuffix(relPath, "/")
	for _, cp := range es.patterns {
		if cp.glob.Match(relPath) {
			return true
		}
	}

	// A bare directory name should be pruned by its "dir/**" pattern even
	// though the directory path itself has no trailing segment.
	withSuffix := relPath + "/**"
	for _, cp := range es.patterns {
		if cp.glob.Match(withSuffix) {
			return true
		}
	}
	return false
}

// Patterns returns the source patterns in compile order.
func (es *ExcludeSet) Patterns() []string {
	if es == nil {
		return nil
	}
	out := make([]string, 0, len(es.patterns))
	for _, cp := range es.patterns {
		out = append(out, cp.pattern)
	}
	return out
}
