// Package config loads the global settings of the tool and parses the
// per-grid options users write.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"tableflip.dev/focuslog/pkg/glyph"
)

// EnvConfigPath names the environment variable with an extra directory to
// search for the settings file.
const EnvConfigPath = "FOCUS_CONFIG_PATH"

// Settings are the global defaults, read once per process.
type Settings struct {
	Vault            string `mapstructure:"vault"`
	DefaultRatingMap string `mapstructure:"defaultRatingMap"`
	DefaultFlagMap   string `mapstructure:"defaultFlagMap"`
	DaysInPast       int    `mapstructure:"daysInPast"`
	DaysInFuture     int    `mapstructure:"daysInFuture"`
	MinDaysInPast    int    `mapstructure:"minDaysInPast"`
	MinDaysInFuture  int    `mapstructure:"minDaysInFuture"`
	Locale           string `mapstructure:"locale"`
	ReadConcurrency  int    `mapstructure:"readConcurrency"`
	LogLevel         string `mapstructure:"logLevel"`
}

// DefaultSettings returns the built in settings.
func DefaultSettings() Settings {
	return Settings{
		Vault:            "~/notes",
		DefaultRatingMap: glyph.DefaultRatingMap,
		DefaultFlagMap:   glyph.DefaultFlagMap,
		DaysInPast:       7,
		DaysInFuture:     7,
		Locale:           "und",
		ReadConcurrency:  8,
		LogLevel:         "info",
	}
}

// BasePath is the expanded vault directory.
func (s Settings) BasePath() string {
	p, err := homedir.Expand(s.Vault)
	if err != nil {
		return s.Vault
	}
	return p
}

// Language is the collation language for sorting. Unknown locales fall back
// to the root locale.
func (s Settings) Language() language.Tag {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Level maps LogLevel to a slog level, defaulting to info.
func (s Settings) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// LoadSettings reads .focus.yaml from $FOCUS_CONFIG_PATH, the working
// directory or the home directory, with FOCUS_* environment overrides.
func LoadSettings() (Settings, error) {
	v := viper.New()
	def := DefaultSettings()
	v.SetDefault("vault", def.Vault)
	v.SetDefault("defaultRatingMap", def.DefaultRatingMap)
	v.SetDefault("defaultFlagMap", def.DefaultFlagMap)
	v.SetDefault("daysInPast", def.DaysInPast)
	v.SetDefault("daysInFuture", def.DaysInFuture)
	v.SetDefault("minDaysInPast", def.MinDaysInPast)
	v.SetDefault("minDaysInFuture", def.MinDaysInFuture)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("readConcurrency", def.ReadConcurrency)
	v.SetDefault("logLevel", def.LogLevel)

	v.SetEnvPrefix("FOCUS")
	v.AutomaticEnv()
	addConfigPaths(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return def, fmt.Errorf("config: read settings: %w", err)
		}
	}

	s := def
	if err := v.Unmarshal(&s); err != nil {
		return def, fmt.Errorf("config: decode settings: %w", err)
	}
	if s.ReadConcurrency < 1 {
		s.ReadConcurrency = 1
	}
	return s, nil
}

// ConfigFileUsed reports which settings file LoadSettings would read, or "".
func ConfigFileUsed() string {
	v := viper.New()
	addConfigPaths(v)
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return v.ConfigFileUsed()
}

func addConfigPaths(v *viper.Viper) {
	v.SetConfigName(".focus") // .yaml is implicit
	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
}
