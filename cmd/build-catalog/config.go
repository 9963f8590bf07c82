// Config loading for the build-catalog CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyContentDir      = "content_dir"
	cfgKeyOut             = "out"
	cfgKeyDB              = "db"
	cfgKeyStrict          = "strict"
	cfgKeyExtraLanguages  = "extra_languages"
	cfgKeyLinkEnabled     = "link_check.enabled"
	cfgKeyLinkConcurrency = "link_check.concurrency"
	cfgKeyLinkTimeout     = "link_check.timeout"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# build-catalog configuration

# Topic content directory (overridable by --content-dir)
# content_dir:

# Snapshot destination (overridable by --out)
# out:

# Optional SQLite snapshot destination (overridable by --db)
# db:

# Treat audit findings as build failures
strict: false

# Extra code-example language tags beyond the tracked set
# extra_languages: [kotlin, scala]

# Live resource URL checks
link_check:
  enabled: false
  concurrency: 8
  timeout: 5s
`

// buildConfig is the resolved config.yaml content.
type buildConfig struct {
	ContentDir      string
	Out             string
	DB              string
	Strict          bool
	ExtraLanguages  []string
	LinkEnabled     bool
	LinkConcurrency int
	LinkTimeout     time.Duration
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (*buildConfig, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyStrict, false)
	v.SetDefault(cfgKeyLinkEnabled, false)
	v.SetDefault(cfgKeyLinkConcurrency, 8)
	v.SetDefault(cfgKeyLinkTimeout, "5s")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &buildConfig{
		ContentDir:      v.GetString(cfgKeyContentDir),
		Out:             v.GetString(cfgKeyOut),
		DB:              v.GetString(cfgKeyDB),
		Strict:          v.GetBool(cfgKeyStrict),
		ExtraLanguages:  v.GetStringSlice(cfgKeyExtraLanguages),
		LinkEnabled:     v.GetBool(cfgKeyLinkEnabled),
		LinkConcurrency: v.GetInt(cfgKeyLinkConcurrency),
		LinkTimeout:     v.GetDuration(cfgKeyLinkTimeout),
	}, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
