package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where its data lives.
type Config interface {
	BasePath() string
}

// Overrides are values given on the command line; non-empty fields win over
// the config file and the environment.
type Overrides struct {
	Path     string
	LogLevel string
}

// FileConfig is the resolved configuration.
type FileConfig struct {
	Path     string `json:"path"`
	LogLevel string `json:"log-level"`
	Left     string `json:"left"`
	// File is the config file that was read, if any.
	File string `json:"-"`
}

// BasePath implements Config.
func (f *FileConfig) BasePath() string {
	return f.Path
}

// LoadConfig resolves configuration from defaults, a .keepcmd config file,
// KEEPCMD_* environment variables, and finally the overrides.
func LoadConfig(o Overrides) (*FileConfig, error) {
	v := viper.New()
	v.SetDefault("path", "~/.keepcmd")
	v.SetDefault("log-level", "warn")
	v.SetDefault("left", "category")
	v.SetConfigName(".keepcmd") // .yaml is implicit
	v.SetEnvPrefix("KEEPCMD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("KEEPCMD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	cfg := &FileConfig{
		Path:     v.GetString("path"),
		LogLevel: v.GetString("log-level"),
		Left:     v.GetString("left"),
		File:     v.ConfigFileUsed(),
	}
	if o.Path != "" {
		cfg.Path = o.Path
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	expanded, err := homedir.Expand(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path %q: %w", cfg.Path, err)
	}
	cfg.Path = expanded
	return cfg, nil
}
