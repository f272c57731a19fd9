package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultPollInterval = 250 * time.Millisecond

// Command describes an external program. Every "%p" in Args is replaced with
// the target path.
type Command struct {
	Program  string   `mapstructure:"program"`
	Args     []string `mapstructure:"args"`
	Terminal bool     `mapstructure:"terminal"`
}

// Settings is the user settings file. It is read once at startup and shared
// read-only afterwards.
type Settings struct {
	ExecCommand  *Command      `mapstructure:"exec_command"`
	EditCommand  *Command      `mapstructure:"edit_command"`
	Bookmarks    []string      `mapstructure:"bookmarks"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	s := &Settings{PollInterval: defaultPollInterval}
	if home, err := os.UserHomeDir(); err == nil {
		s.Bookmarks = []string{home}
	}
	return s
}

// LoadSettings reads path, or settings.{yaml,toml,json} under
// ~/.config/dualpane when path is empty. A missing default file yields
// DefaultSettings; a missing explicit file is an error. Environment variables
// prefixed DUALPANE_ override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("bookmarks", defaults.Bookmarks)
	v.SetDefault("poll_interval", defaults.PollInterval.String())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dualpane"))
		}
		v.SetConfigName("settings")
	}

	v.SetEnvPrefix("DUALPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if s.PollInterval <= 0 {
		s.PollInterval = defaultPollInterval
	}
	return &s, nil
}
