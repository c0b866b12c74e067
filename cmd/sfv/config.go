package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings cmd/sfv loads from a YAML file via -config.
// Flags passed on the command line override the corresponding fields.
type Config struct {
	EnableDate bool   `yaml:"enableDate"`
	As         string `yaml:"as"`
}

func getConfig(filename string) (Config, error) {
	var config Config
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}
