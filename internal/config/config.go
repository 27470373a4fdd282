package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProblem = "exponential"
	DefaultMethod  = "rk4"
	DefaultSteps   = 100
	DefaultXi      = 1.0
	DefaultTi      = 0.0
	DefaultTf      = 10.0
)

type Config struct {
	Problem string             `yaml:"problem"`
	Method  string             `yaml:"method"`
	Steps   int                `yaml:"steps"`
	Xi      float64            `yaml:"xi"`
	Ti      float64            `yaml:"ti"`
	Tf      float64            `yaml:"tf"`
	Params  map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Method:  DefaultMethod,
		Steps:   DefaultSteps,
		Xi:      DefaultXi,
		Ti:      DefaultTi,
		Tf:      DefaultTf,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
