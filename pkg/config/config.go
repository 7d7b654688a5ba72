// Package config loads pic settings from defaults, a discovered config file,
// PIC_* environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/imports"
	"github.com/siyuan-infoblox/py-imports-check/pkg/utils"
)

const (
	// EnvPrefix is the prefix of environment variables overriding settings
	EnvPrefix = "PIC"

	KeyCheck       = "check"
	KeyDiff        = "diff"
	KeySplitDirect = "split_direct"
	KeyExtensions  = "extensions"
	KeyExcludeDirs = "exclude_dirs"
	KeyVerbose     = "verbose"
)

// FileNames is the ordered list of config file names searched for
var FileNames = []string{".pic.yaml", ".pic.yml"}

// Config holds every pic setting
type Config struct {
	Check       bool     `mapstructure:"check" yaml:"check"`               // only report issues, never rewrite
	Diff        bool     `mapstructure:"diff" yaml:"diff"`                 // print a unified diff instead of rewriting
	SplitDirect bool     `mapstructure:"split_direct" yaml:"split_direct"` // split `import a, b` lines
	Extensions  []string `mapstructure:"extensions" yaml:"extensions"`     // source file extensions when walking directories
	ExcludeDirs []string `mapstructure:"exclude_dirs" yaml:"exclude_dirs"` // directory names skipped when walking directories
	Verbose     bool     `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		SplitDirect: imports.DefaultOptions().SplitDirect,
		Extensions:  append([]string(nil), utils.DefaultExtensions...),
		ExcludeDirs: []string{"venv", "__pycache__", "node_modules", "build", "dist"},
	}
}

// CheckerOptions converts the settings into options for the import checker
func (c *Config) CheckerOptions() imports.Options {
	return imports.Options{SplitDirect: c.SplitDirect}
}

// YAML renders the config as a YAML document
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// New returns a viper instance holding the defaults and reading PIC_* variables
func New() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyCheck, defaults.Check)
	v.SetDefault(KeyDiff, defaults.Diff)
	v.SetDefault(KeySplitDirect, defaults.SplitDirect)
	v.SetDefault(KeyExtensions, defaults.Extensions)
	v.SetDefault(KeyExcludeDirs, defaults.ExcludeDirs)
	v.SetDefault(KeyVerbose, defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and decodes the result. When configPath
// is empty, the config file is searched from target upwards. It returns the
// path of the config file used, empty when none was found.
func Load(v *viper.Viper, configPath, target string) (*Config, string, error) {
	if configPath == "" && target != "" {
		configPath = utils.FindConfigFile(target, FileNames)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToReadConfig, configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("%s: %w", errors.ErrMsgFailedToDecodeConfig, err)
	}
	return cfg, configPath, nil
}
