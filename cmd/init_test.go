// File: cmd/init_test.go
package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitCommandWritesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Contains(t, output, configFileName)

	content, err := os.ReadFile(configFileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# xcreview configuration.")

	var tpl configTemplate
	require.NoError(t, yaml.Unmarshal(content, &tpl))
	assert.Equal(t, defaultBaseFolder, tpl.BaseFolder)
	assert.Equal(t, []string{".swift", ".h", ".m"}, tpl.Extensions)
	assert.Equal(t, defaultLogLevel, tpl.Log.Level)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeCommand(t, "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
