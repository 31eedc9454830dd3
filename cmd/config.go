package cmd

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".natded.yaml"

// Config controls how the CLI renders derivations. It never encodes
// proof terms themselves.
type Config struct {
	Name   string `yaml:"name"`
	Color  bool   `yaml:"color"`
	Output string `yaml:"output,omitempty"`
}

func defaultConfig() Config {
	return Config{Name: "natded", Color: true}
}

// loadConfig reads the configuration file. A missing file is only an
// error when a path was given explicitly; otherwise defaults apply.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
