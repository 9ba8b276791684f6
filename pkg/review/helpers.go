// File: pkg/review/helpers.go
package review

import (
	"strings"
	"unicode"
)

// titleCase capitalizes the first letter of every letter run and lowercases
// the rest, so progress lines render "main.swift" as "Main.Swift" and
// "view_controller.h" as "View_Controller.H".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
