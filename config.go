package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type appConfig struct {
	Server     serverConfig     `yaml:"server"`
	AI         aiConfig         `yaml:"ai"`
	Monitoring monitoringConfig `yaml:"monitoring"`
}

type serverConfig struct {
	Addr string `yaml:"addr"`
}

type aiConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	Temperature    float64 `yaml:"temperature"`
}

type monitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
}

// defaultConfig returns the configuration the service runs with when no
// config file is present. Only OPENAI_API_KEY is strictly required to serve.
func defaultConfig() appConfig {
	return appConfig{
		Server: serverConfig{Addr: "localhost:3000"},
		AI: aiConfig{
			BaseURL:        "https://api.openai.com",
			Model:          "gpt-4o-mini",
			TimeoutSeconds: 30,
			Temperature:    0.4,
		},
		Monitoring: monitoringConfig{PrometheusEnabled: true},
	}
}

// loadConfig reads the YAML config at path, expanding ${VAR} references from
// the environment before parsing. A missing file is not an error — defaults
// apply. Fields omitted from the file keep their default values.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables in the raw YAML before unmarshalling
	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.AI.TimeoutSeconds <= 0 {
		return cfg, fmt.Errorf("ai.timeout_seconds must be positive, got %d", cfg.AI.TimeoutSeconds)
	}

	return cfg, nil
}
