// File: cmd/config.go
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/fowenati/xcreview/pkg/logging"
	"github.com/fowenati/xcreview/pkg/review"
)

const (
	configBaseName = ".xcreview"
	configFileName = configBaseName + ".yaml"

	envPrefix = "XCREVIEW"

	baseFlagName        = "base"
	extensionsFlagName  = "extensions"
	excludeFlagName     = "exclude"
	maxFileSizeFlagName = "max-file-size"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	baseFolderKey  = "base_folder"
	extensionsKey  = "extensions"
	excludeKey     = "exclude"
	maxFileSizeKey = "max_file_size_kb"

	logLevelKey      = "log.level"
	logFileKey       = "log.file"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultBaseFolder    = "."
	defaultMaxFileSizeKB = 0 // 0 disables the size guard

	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// configFileErr records a malformed config file so it can be logged once
// the logger exists. A missing file is not an error.
var configFileErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(baseFolderKey, defaultBaseFolder)
	viper.SetDefault(extensionsKey, review.DefaultExtensions)
	viper.SetDefault(excludeKey, []string{})
	viper.SetDefault(maxFileSizeKey, defaultMaxFileSizeKB)

	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logFileKey, "")
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configFileErr = err
		}
	}
}

// analyzerConfig assembles the analyzer configuration from the resolved
// viper state (flags, config file, environment).
func analyzerConfig() review.Config {
	return review.Config{
		BaseFolder:    viper.GetString(baseFolderKey),
		Extensions:    viper.GetStringSlice(extensionsKey),
		Exclude:       viper.GetStringSlice(excludeKey),
		MaxFileSizeKB: viper.GetInt(maxFileSizeKey),
	}
}

// loggingOptions assembles logger options. Verbose forces debug no matter
// what the configured level says.
func loggingOptions() logging.Options {
	level := viper.GetString(logLevelKey)
	if verboseFlag {
		level = "debug"
	}
	return logging.Options{
		Level:      level,
		FilePath:   viper.GetString(logFileKey),
		MaxSizeMB:  viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAgeDays: viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}
}

// newAnalyzer assembles an Analyzer from the resolved configuration.
func newAnalyzer(opts ...review.Option) (*review.Analyzer, error) {
	return review.New(analyzerConfig(), logger, opts...)
}
