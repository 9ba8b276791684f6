// File: pkg/review/filter.go
package review

import "strings"

// commentPrefixes are the literal markers that cause a line to be dropped
// when its trimmed content starts with one of them. The set is matched as
// plain prefixes, not parsed: block-comment interiors that do not start with
// a marker, and string literals that do, are treated exactly like comments
// of the same shape.
var commentPrefixes = []string{"//", "/*", "*", "*/", "///"}

// FilterComments returns the lines whose trimmed content does not start with
// a comment marker. Kept lines are returned verbatim, terminators included,
// in their original order. Filtering an already filtered sequence yields the
// same sequence.
func FilterComments(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if isCommentLine(line) {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}

// isCommentLine reports whether the line, stripped of surrounding
// whitespace, begins with one of the comment markers.
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range commentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// SplitLines splits content into lines that keep their own terminators, so
// joining them with no separator reproduces the input. A trailing newline
// does not produce an empty final line. Carriage returns stay attached to
// their line, so CRLF content survives a split/join round trip.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
