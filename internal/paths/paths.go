// Package paths resolves the configuration, content, and output locations
// for a catalog build. Each resolver follows the same precedence chain:
// flag > config.yaml value > environment variable > default.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative defaults.
const (
	DefaultConfigDirName  = ".catalog"
	DefaultContentDirName = "content"
	DefaultOutName        = "catalog.json"
)

// Environment variable overrides.
const (
	EnvConfigDir  = "CATALOG_CONFIG_DIR"
	EnvContentDir = "CATALOG_CONTENT_DIR"
	EnvOut        = "CATALOG_OUT"
)

// ResolveConfigDir returns the configuration directory:
// flag > CATALOG_CONFIG_DIR env > $(CWD)/.catalog.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultConfigDirName)
}

// ResolveContentDir returns the content directory:
// flag > config.yaml content_dir > CATALOG_CONTENT_DIR env > $(CWD)/content.
func ResolveContentDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvContentDir); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultContentDirName)
}

// ResolveOut returns the snapshot destination:
// flag > config.yaml out > CATALOG_OUT env > $(CWD)/catalog.json.
func ResolveOut(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvOut); env != "" {
		return filepath.Abs(env)
	}
	return cwdJoin(DefaultOutName)
}

func cwdJoin(name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, name), nil
}
