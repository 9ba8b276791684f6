// File: cmd/root.go

// Package cmd provides the root command and CLI setup for xcreview.
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/fowenati/xcreview/pkg/logging"
)

var (
	verboseFlag bool

	// logger is shared by every subcommand once PersistentPreRunE ran.
	logger *zap.Logger
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "xcreview",
	Short: "xcreview prepares project sources for code review",
	Long: `xcreview walks the projects under a base folder, strips comment lines
from their Swift and Objective-C sources, and collects the remaining code
into one reviewable report per project.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.Setup(loggingOptions())
		if err != nil {
			return err
		}
		if configFileErr != nil {
			logger.Warn("Failed to read config file", zap.Error(configFileErr))
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringP(baseFlagName, "b", viper.GetString(baseFolderKey), "base folder containing the projects")
	bindFlagToConfig(RootCmd.PersistentFlags().Lookup(baseFlagName), baseFolderKey)

	RootCmd.PersistentFlags().StringSliceP(extensionsFlagName, "e", viper.GetStringSlice(extensionsKey), "source file extensions to extract")
	bindFlagToConfig(RootCmd.PersistentFlags().Lookup(extensionsFlagName), extensionsKey)

	RootCmd.PersistentFlags().StringSliceP(excludeFlagName, "x", viper.GetStringSlice(excludeKey), "glob patterns to skip during traversal (can be repeated)")
	bindFlagToConfig(RootCmd.PersistentFlags().Lookup(excludeFlagName), excludeKey)

	RootCmd.PersistentFlags().Int(maxFileSizeFlagName, viper.GetInt(maxFileSizeKey), "skip source files larger than this many KB (0 = no limit)")
	bindFlagToConfig(RootCmd.PersistentFlags().Lookup(maxFileSizeFlagName), maxFileSizeKey)

	RootCmd.PersistentFlags().String(logFileFlagName, viper.GetString(logFileKey), "also write JSON logs to this rotating file")
	bindFlagToConfig(RootCmd.PersistentFlags().Lookup(logFileFlagName), logFileKey)

	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a cobra flag to a viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := RootCmd.Execute()
	syncLogger()
	if err != nil {
		os.Exit(1)
	}
}

// syncLogger flushes buffered log entries on the way out. Syncing a
// terminal stderr returns "invalid argument" on several platforms, so the
// flush is only attempted for terminals and regular files and that error
// string is ignored.
func syncLogger() {
	if logger == nil {
		return
	}

	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
