// File: pkg/review/tree.go
package review

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Tree renders the project's source layout as a tree(1)-style listing of
// its directories and matching source files. Directories with no matching
// files anywhere beneath them are pruned from the output.
func (a *Analyzer) Tree(project string) (string, error) {
	projectDir, err := a.projectDir(project)
	if err != nil {
		return "", err
	}

	lines, err := a.treeLines(projectDir, projectDir)
	if err != nil {
		return "", err
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(project + "/\n")
	for _, line := range lines {
		treeBuilder.WriteString(line)
		treeBuilder.WriteString("\n")
	}

	return treeBuilder.String(), nil
}

// treeLines renders the visible entries of one directory. Each returned
// line carries its own connector but not the parent prefix; the caller
// indents the block when splicing it under a directory line.
func (a *Analyzer) treeLines(directory, projectDir string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		a.logger.Warn("Failed to read directory for tree structure", zap.String("directory", directory), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	type node struct {
		name     string
		children []string
	}

	var nodes []node
	for _, entry := range entries {
		entryPath := filepath.Join(directory, entry.Name())
		relPath, _ := filepath.Rel(projectDir, entryPath)
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if a.excludes.Match(relPath) {
				a.logger.Debug("Skipping excluded directory in tree", zap.String("directory", entryPath))
				continue
			}
			children, err := a.treeLines(entryPath, projectDir)
			if err != nil {
				a.logger.Warn("Failed to render subtree", zap.String("directory", entryPath), zap.Error(err))
				continue
			}
			if len(children) == 0 {
				continue
			}
			nodes = append(nodes, node{name: entry.Name() + "/", children: children})
			continue
		}

		if !hasSourceExtension(entry.Name(), a.cfg.Extensions) || a.excludes.Match(relPath) {
			continue
		}
		nodes = append(nodes, node{name: entry.Name()})
	}

	var output []string
	for i, n := range nodes {
		connector := "├── "
		extension := "│   "
		if i == len(nodes)-1 {
			connector = "└── "
			extension = "    "
		}
		output = append(output, connector+n.name)
		for _, child := range n.children {
			output = append(output, extension+child)
		}
	}

	return output, nil
}
