package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete advisory server configuration
type Config struct {
	Server     ServerSettings     `hcl:"server,block"`
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// SimulationSettings bounds what a single request may ask of the
// engine.
type SimulationSettings struct {
	MaxTrials int   `hcl:"max_trials,optional"`
	MaxDecks  int   `hcl:"max_decks,optional"`
	Workers   int   `hcl:"workers,optional"`
	Seed      int64 `hcl:"seed,optional"`
}

// DefaultConfig returns the default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Simulation: SimulationSettings{
			MaxTrials: 1_000_000,
			MaxDecks:  16,
			Workers:   1,
		},
	}
}

// LoadConfig loads server configuration from an HCL file, returning
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Simulation.MaxTrials == 0 {
		config.Simulation.MaxTrials = defaults.Simulation.MaxTrials
	}
	if config.Simulation.MaxDecks == 0 {
		config.Simulation.MaxDecks = defaults.Simulation.MaxDecks
	}
	if config.Simulation.Workers == 0 {
		config.Simulation.Workers = defaults.Simulation.Workers
	}

	return &config, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
