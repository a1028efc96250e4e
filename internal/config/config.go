// Package config declares the YAML scene/run configuration and its presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDt is one 60fps frame of simulated time. Scene positions are in
	// world units, well above the solver's coincidence guard.
	DefaultDt      = 1.0 / 60.0
	DefaultSteps   = 500
	DefaultWorkers = 1
	DefaultAddr    = ":8089"
)

// AtomSpec places one atom in the scene.
type AtomSpec struct {
	AtomicNumber int        `yaml:"z"`
	MassNumber   int        `yaml:"a"`
	Position     [3]float64 `yaml:"position"`
}

// BondSpec bonds two atoms of a molecule by index into its atom list. The
// bond type and energy are classified by the bond calculator.
type BondSpec struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// MoleculeSpec groups atoms and index-pair bonds.
type MoleculeSpec struct {
	Name  string     `yaml:"name"`
	Atoms []AtomSpec `yaml:"atoms"`
	Bonds []BondSpec `yaml:"bonds"`
}

// StreamConfig configures the websocket snapshot broadcaster.
type StreamConfig struct {
	Addr string `yaml:"addr"`
}

// Config is a full scene/run description.
type Config struct {
	Scene     string         `yaml:"scene"`
	Dt        float64        `yaml:"dt"`
	Steps     int            `yaml:"steps"`
	Workers   int            `yaml:"workers"`
	Seed      int64          `yaml:"seed"`
	LogLevel  string         `yaml:"log_level"`
	Atoms     []AtomSpec     `yaml:"atoms"`
	Molecules []MoleculeSpec `yaml:"molecules"`
	Stream    StreamConfig   `yaml:"stream"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:    "hydrogen",
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Workers:  DefaultWorkers,
		LogLevel: "info",
		Atoms: []AtomSpec{
			{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{-1, 0, 0}},
			{AtomicNumber: 1, MassNumber: 1, Position: [3]float64{1, 0, 0}},
		},
		Stream: StreamConfig{Addr: DefaultAddr},
	}
}

// Load reads a config file on top of the defaults.
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

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
