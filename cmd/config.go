package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"zdex.dev/pkg/zdex/internal/controller"
	"zdex.dev/pkg/zdex/internal/domain"
	m "zdex.dev/pkg/zdex/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "zdex"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	directoryFlagName     = "directory"
	excludedPathsFlagName = "excludedPaths"
	ignoredPathsFlagName  = "ignoredPaths"
	sortFlagName          = "sort"
	honorIgnoredFlagName  = "honor-ignored"
	verboseFlagName       = "verbose"

	extensionsConfigKey         = "scan.extensions"
	variableExtensionsConfigKey = "scan.variable_extensions"
	excludeConfigKey            = "paths.exclude"
	sortConfigKey               = "list.sort"
	honorIgnoredConfigKey       = "resolve.honor_ignored"
	previewLengthConfigKey      = "report.preview_length"

	defaultSort         = string(m.SortByTotal)
	defaultHonorIgnored = false

	envPrefix = "ZDEX"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ""
	defaultLogLevel      = "warn"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// logOutput is where log records go when no log file is configured.
var logOutput io.Writer = os.Stderr

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(extensionsConfigKey, domain.DefaultExtensions)
	viper.SetDefault(variableExtensionsConfigKey, domain.DefaultVariableExtensions)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(sortConfigKey, defaultSort)
	viper.SetDefault(honorIgnoredConfigKey, defaultHonorIgnored)
	viper.SetDefault(previewLengthConfigKey, controller.DefaultPreviewLength)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the global slog logger.
//
// With a log file path records go to a rotating file, otherwise to stderr.
// verbose forces the debug level.
func configureLogger(logPath string, verbose bool) {
	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelWarn)
	}

	writer := logOutput
	if strings.TrimSpace(logPath) != "" {
		writer = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
