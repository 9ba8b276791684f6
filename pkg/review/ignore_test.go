// File: pkg/review/ignore_test.go
package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileExcludesInvalidPattern(t *testing.T) {
	_, err := CompileExcludes([]string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid exclude pattern "["`)
}

func TestExcludeSetMatch(t *testing.T) {
	es, err := CompileExcludes([]string{"Pods/**", "*.generated.swift", "Carthage"})
	require.NoError(t, err)

	tests := []struct {
		relPath string
		want    bool
	}{
		{"Pods", true},                      // the directory itself is pruned
		{"Pods/Alamofire/Session.swift", true},
		{"Model.generated.swift", true},
		{"Carthage", true},
		{"Sources/App.swift", false},
		{"PodsLike/App.swift", false},
		{"Sub/Model.generated.swift", false}, // '*' does not cross separators
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, es.Match(tt.relPath), "Match(%q)", tt.relPath)
	}
}

func TestExcludeSetEmpty(t *testing.T) {
	es, err := CompileExcludes(nil)
	require.NoError(t, err)

	assert.False(t, es.Match("anything/at/all.swift"))
	assert.False(t, (*ExcludeSet)(nil).Match("anything.swift"))
	assert.Nil(t, (*ExcludeSet)(nil).Patterns())
}

func TestExcludeSetPatterns(t *testing.T) {
	es, err := CompileExcludes([]string{"Pods/**", "build"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Pods/**", "build"}, es.Patterns())
}
