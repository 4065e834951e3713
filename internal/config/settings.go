package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// AppDirName is the directory under the user config dir holding app files
const AppDirName = "tubedl"

// Settings keys
const (
	KeyPreferencesFile = "preferences_file"
	KeyHistoryDB       = "history_db"
	KeyYtDlpPath       = "ytdlp_path"
	KeyMergeFormat     = "merge_format"
	KeyRequireCookies  = "require_cookies"
	KeyRequireFFmpeg   = "require_ffmpeg"
	KeyLogLevel        = "log.level"
)

// Default values
const (
	DefaultYtDlpPath      = "yt-dlp"
	DefaultMergeFormat    = "mp4"
	DefaultRequireCookies = true
	DefaultRequireFFmpeg  = true
	DefaultLogLevel       = "info"
	HistoryFileName       = "history.db"
	EnvPrefix             = "TUBEDL"
)

// SupportedMergeFormats lists the containers yt-dlp can merge into
var SupportedMergeFormats = []string{"mp4", "mkv", "webm", "mov", "flv"}

// Settings holds the application configuration read at startup
type Settings struct {
	PreferencesFile string      `mapstructure:"preferences_file"`
	HistoryDB       string      `mapstructure:"history_db"`
	YtDlpPath       string      `mapstructure:"ytdlp_path"`
	MergeFormat     string      `mapstructure:"merge_format"`
	RequireCookies  bool        `mapstructure:"require_cookies"`
	RequireFFmpeg   bool        `mapstructure:"require_ffmpeg"`
	Log             LogSettings `mapstructure:"log"`
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string `mapstructure:"level"`
}

// DefaultConfigDir returns <user config dir>/tubedl, or the working directory
// when the user config dir cannot be determined
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, AppDirName)
}

// Load reads settings from environment variables (TUBEDL_*) and an optional
// YAML file. An empty configPath looks for config.yaml in DefaultConfigDir and
// tolerates its absence.
func Load(configPath string) (*Settings, error) {
	v := viper.New()
	dir := DefaultConfigDir()

	v.SetDefault(KeyPreferencesFile, filepath.Join(dir, PreferencesFileName))
	v.SetDefault(KeyHistoryDB, filepath.Join(dir, HistoryFileName))
	v.SetDefault(KeyYtDlpPath, DefaultYtDlpPath)
	v.SetDefault(KeyMergeFormat, DefaultMergeFormat)
	v.SetDefault(KeyRequireCookies, DefaultRequireCookies)
	v.SetDefault(KeyRequireFFmpeg, DefaultRequireFFmpeg)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &settings, nil
}

// Validate checks the settings for values the downloader cannot use
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.YtDlpPath) == "" {
		return fmt.Errorf("%s must not be empty", KeyYtDlpPath)
	}
	if strings.TrimSpace(s.PreferencesFile) == "" {
		return fmt.Errorf("%s must not be empty", KeyPreferencesFile)
	}
	s.MergeFormat = strings.ToLower(strings.TrimSpace(s.MergeFormat))
	if !slices.Contains(SupportedMergeFormats, s.MergeFormat) {
		return fmt.Errorf("unsupported %s %q (supported: %s)", KeyMergeFormat, s.MergeFormat, strings.Join(SupportedMergeFormats, ", "))
	}
	return nil
}
