// File: pkg/review/selector.go
package review

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ListProjects returns the names of the immediate subdirectories of the base
// folder, in the sorted order the directory listing yields. Non-directory
// entries are skipped.
func ListProjects(baseFolder string) ([]string, error) {
	entries, err := os.ReadDir(baseFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in %s: %w", baseFolder, err)
	}

	var projects []string
	for _, entry := range entries {
		if entry.IsDir() {
			projects = append(projects, entry.Name())
		}
	}
	return projects, nil
}

// ProjectChooser picks one project name from a listed set. Implementations
// cover the interactive prompt, the terminal picker, and fixed choices in
// tests.
type ProjectChooser interface {
	Choose(projects []string) (string, error)
}

// PromptChooser asks for a 1-based project number on a line-oriented input,
// the way the tool behaves when run in a plain shell.
type PromptChooser struct {
	In  io.Reader
	Out io.Writer
}

// NewPromptChooser returns a PromptChooser reading choices from in and
// writing the prompt to out.
func NewPromptChooser(in io.Reader, out io.Writer) *PromptChooser {
	return &PromptChooser{In: in, Out: out}
}

// Choose prompts for a project number and returns the matching name.
// Non-numeric and out-of-range input produce a descriptive error instead of
// a retry; the caller decides whether that ends the run.
func (c *PromptChooser) Choose(projects []string) (string, error) {
	if len(projects) == 0 {
		return "", errors.New("no projects to choose from")
	}

	fmt.Fprint(c.Out, "Select a project (number): ")

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read project selection: %w", err)
	}

	line = strings.TrimSpace(line)
	choice, err := strconv.Atoi(line)
	if err != nil {
		return "", fmt.Errorf("invalid project selection %q: expected a number", line)
	}
	if choice < 1 || choice > len(projects) {
		return "", fmt.Errorf("project selection %d out of range (1-%d)", choice, len(projects))
	}

	return projects[choice-1], nil
}
