// Package config layers mdhtml settings from flags, MDHTML_* environment
// variables, an optional YAML file and defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MDHTML"

// Config holds the settings the CLI resolves before converting.
type Config struct {
	Format      string `mapstructure:"format"`
	Output      string `mapstructure:"output"`
	Theme       string `mapstructure:"theme"`
	Width       int    `mapstructure:"width"`
	EscapeHTML  bool   `mapstructure:"escape-html"`
	Highlight   string `mapstructure:"highlight"`
	SourceMap   bool   `mapstructure:"source-map"`
	FrontMatter bool   `mapstructure:"front-matter"`
	Check       bool   `mapstructure:"check"`
	Watch       bool   `mapstructure:"watch"`
	Verbose     bool   `mapstructure:"verbose"`
}

// LoadRequest configures Load.
type LoadRequest struct {
	// Flags are bound so that flags set on the command line win.
	Flags *pflag.FlagSet
	// Path names the config file; empty looks for config.yaml in Dir.
	Path string
}

// Load resolves the configuration. A missing default config file is not an
// error; a missing explicit Path is.
func Load(req LoadRequest) (*Config, error) {
	v := viper.New()
	// every key needs a default so Unmarshal sees its environment value
	v.SetDefault("format", "html")
	v.SetDefault("output", "")
	v.SetDefault("theme", "default")
	v.SetDefault("width", 0)
	v.SetDefault("escape-html", false)
	v.SetDefault("highlight", "")
	v.SetDefault("source-map", false)
	v.SetDefault("front-matter", true)
	v.SetDefault("check", false)
	v.SetDefault("watch", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if req.Flags != nil {
		if err := v.BindPFlags(req.Flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	if req.Path != "" {
		v.SetConfigFile(req.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", req.Path, err)
		}
	} else if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// Dir returns the mdhtml config directory, $XDG_CONFIG_HOME/mdhtml when set.
func Dir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "mdhtml"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "mdhtml"), nil
}
