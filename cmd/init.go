// File: cmd/init.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fowenati/xcreview/pkg/review"
)

// configTemplate mirrors the keys viper reads, in file layout order.
type configTemplate struct {
	BaseFolder    string   `yaml:"base_folder"`
	Extensions    []string `yaml:"extensions"`
	Exclude       []string `yaml:"exclude"`
	MaxFileSizeKB int      `yaml:"max_file_size_kb"`
	Log           struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

const configHeader = `# xcreview configuration.
# Values here are overridden by XCREVIEW_* environment variables and flags.
`

// initCmd writes a starter config file with the current defaults.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + configFileName + " configuration file",
	Long: `Create a ` + configFileName + ` in the current working directory populated
with the CLI defaults so it can be edited manually. Refuses to overwrite
an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configFileName); err == nil {
			return fmt.Errorf("%s already exists", configFileName)
		}

		tpl := configTemplate{
			BaseFolder:    defaultBaseFolder,
			Extensions:    review.DefaultExtensions,
			Exclude:       []string{},
			MaxFileSizeKB: defaultMaxFileSizeKB,
		}
		tpl.Log.Level = defaultLogLevel
		tpl.Log.MaxSize = defaultLogMaxSize
		tpl.Log.MaxBackups = defaultLogMaxBackups
		tpl.Log.MaxAge = defaultLogMaxAge
		tpl.Log.Compress = defaultLogCompress

		body, err := yaml.Marshal(tpl)
		if err != nil {
			return fmt.Errorf("failed to render config template: %w", err)
		}

		if err := os.WriteFile(configFileName, append([]byte(configHeader), body...), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", configFileName, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFileName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
