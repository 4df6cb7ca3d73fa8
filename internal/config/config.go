// Package config holds the process-level file configuration and the
// per-request session settings applied to the analysis engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v2"
)

var ErrNotFoundConfig = errors.New("config file not found")

// YamlConfigPath is the default per-user configuration file.
var YamlConfigPath = filepath.Join(getXDGConfigPath(runtime.GOOS), "config.yml")

const AppName = "autocomplete-python"

// Config is the optional file configuration loaded once at startup.
// SearchPaths is the baseline module search path every request resets
// the engine to before applying its own extraPaths.
type Config struct {
	SearchPaths []string `json:"searchPaths" yaml:"searchPaths"`
	LogFile     string   `json:"logFile" yaml:"logFile"`
}

func GetDefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.load(YamlConfigPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

func GetConfig(fp string) (*Config, error) {
	cfg := &Config{}
	expand, err := expandPath(fp)
	if err != nil {
		return nil, err
	}
	if err := cfg.load(expand); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load(fp string) error {
	if !IsFileExist(fp) {
		return ErrNotFoundConfig
	}

	b, err := os.ReadFile(fp)
	if err != nil {
		return fmt.Errorf("cannot read config, %w", err)
	}

	if err = yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("failed unmarshal yaml, %w", err)
	}
	return nil
}

func IsFileExist(fPath string) bool {
	_, err := os.Stat(fPath)
	return err == nil || !os.IsNotExist(err)
}

func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return filepath.Abs(path)
}

func getXDGConfigPath(goos string) string {
	var dir string
	if goos == "windows" {
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "Application Data")
		}
		dir = filepath.Join(dir, AppName)
	} else {
		dir = filepath.Join(os.Getenv("HOME"), ".config", AppName)
	}
	return dir
}
