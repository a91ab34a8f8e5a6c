package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPathEnvVar overrides the default config file search locations.
const ConfigPathEnvVar = "TRUFFLEHUB_CONFIG_PATH"

// GetConfigPath determines the configuration file path.
// Priority:
// 1. -config command-line flag (passed as argument)
// 2. TRUFFLEHUB_CONFIG_PATH environment variable
// 3. config.yaml / config.json in the current working directory
// Returns "" when no config file is found; the caller then runs on defaults.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if _, err := os.Stat(configFilePathFlag); err == nil {
			return configFilePathFlag
		}
	}

	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, file := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(cwd, file)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// LoadGlobalConfig reads the configuration file at path into a GlobalConfig
// pre-populated with defaults, so partial files are valid. An empty path
// returns the defaults unchanged. YAML is a superset of JSON, so .json config
// files parse through the same decoder.
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	return cfg, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
