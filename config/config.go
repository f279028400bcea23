// Package config loads and validates pricing run configuration from
// YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/pricer/pricing"
)

// Config describes a complete pricing run: the contract, the Monte
// Carlo settings, the dataset grid, and where output goes.
type Config struct {
	Option     OptionConfig     `json:"option" yaml:"option"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Dataset    DatasetConfig    `json:"dataset" yaml:"dataset"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

// OptionConfig holds the contract parameters.
type OptionConfig struct {
	Spot       float64 `json:"spot" yaml:"spot"`
	Strike     float64 `json:"strike" yaml:"strike"`
	Maturity   float64 `json:"maturity" yaml:"maturity"` // years
	Rate       float64 `json:"rate" yaml:"rate"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// Params converts the contract section to pricing parameters.
func (o OptionConfig) Params() pricing.Params {
	return pricing.Params{
		S:     o.Spot,
		K:     o.Strike,
		T:     o.Maturity,
		R:     o.Rate,
		Sigma: o.Volatility,
	}
}

// SimulationConfig holds Monte Carlo settings.
type SimulationConfig struct {
	Paths   int    `json:"paths" yaml:"paths"`
	Steps   int    `json:"steps" yaml:"steps"`
	Seed    uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`       // 0 means fresh entropy
	Workers int    `json:"workers,omitempty" yaml:"workers,omitempty"` // 0 means GOMAXPROCS
}

// DatasetConfig holds the grid axes for dataset generation.
type DatasetConfig struct {
	Spots        []float64 `json:"spots" yaml:"spots"`
	Strikes      []float64 `json:"strikes" yaml:"strikes"`
	Maturities   []float64 `json:"maturities" yaml:"maturities"`
	Rates        []float64 `json:"rates" yaml:"rates"`
	Volatilities []float64 `json:"volatilities" yaml:"volatilities"`
}

// Grid converts the dataset section to a pricing grid.
func (d DatasetConfig) Grid() pricing.Grid {
	return pricing.Grid{
		S:     d.Spots,
		K:     d.Strikes,
		T:     d.Maturities,
		R:     d.Rates,
		Sigma: d.Volatilities,
	}
}

// OutputConfig selects where generated datasets land.
type OutputConfig struct {
	Type    string `json:"type" yaml:"type"` // "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Option.Params().Validate(); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	if c.Simulation.Paths < 1 {
		return fmt.Errorf("simulation.paths must be at least 1")
	}
	if c.Simulation.Steps < 1 {
		return fmt.Errorf("simulation.steps must be at least 1")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative")
	}
	if err := c.Dataset.Grid().Validate(); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	switch c.Output.Type {
	case "csv":
		if c.Output.CSVFile == "" {
			return fmt.Errorf("output.csv_file required for CSV type")
		}
	case "sqlite":
		if c.Output.DBPath == "" {
			return fmt.Errorf("output.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("output.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Option: OptionConfig{
			Spot:       100,
			Strike:     100,
			Maturity:   1,
			Rate:       0.05,
			Volatility: 0.12,
		},
		Simulation: SimulationConfig{
			Paths: 10_000,
			Steps: 252,
		},
		Dataset: DatasetConfig{
			Spots:        []float64{80, 90, 100, 110, 120},
			Strikes:      []float64{90, 100, 110},
			Maturities:   []float64{0.25, 0.5, 1},
			Rates:        []float64{0.01, 0.05},
			Volatilities: []float64{0.1, 0.2, 0.3},
		},
		Output: OutputConfig{
			Type:    "csv",
			CSVFile: "./prices.csv",
		},
	}
}
