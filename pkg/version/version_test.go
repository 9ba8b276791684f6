package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.NotEmpty(t, v.GoVersion)
	assert.Contains(t, v.Platform, "/")
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2026-08-21T15:04:05Z",
		GoVersion: "go1.25.1",
		Platform:  "linux/amd64",
	}

	assert.Equal(t,
		"xcreview version 1.2.3 (commit: abcdefg) built at 2026-08-21T15:04:05Z with go1.25.1 on linux/amd64",
		info.String())
}
