package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
)

// defaultsFilePath is where the CLI looks for defaults.yaml unless --config is given.
const defaultsFilePath = "defaults.yaml"

// CabinConfig describes the cabin geometry section of defaults.yaml.
type CabinConfig struct {
	Rows        int `yaml:"rows"`
	SeatsPerRow int `yaml:"seats_per_row"`
}

// EvaluationConfig describes the comparison section of defaults.yaml.
type EvaluationConfig struct {
	Runs        int      `yaml:"runs"`
	Seed        int64    `yaml:"seed"`
	Parallelism int      `yaml:"parallelism"`
	Strategies  []string `yaml:"strategies"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version    string           `yaml:"version"`
	Cabin      CabinConfig      `yaml:"cabin"`
	Rules      sim.Rules        `yaml:"rules"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
}

// builtinDefaults matches the shipped defaults.yaml and is used when the file is absent.
func builtinDefaults() Config {
	return Config{
		Version: "1",
		Cabin:   CabinConfig{Rows: 10, SeatsPerRow: 5},
		Rules:   sim.Rules{Advance: sim.AdvanceSnapshot, TailTrim: sim.TrimTrailing},
		Evaluation: EvaluationConfig{
			Runs:        20,
			Seed:        42,
			Parallelism: 4,
			Strategies:  []string{"random", "back-to-front", "front-to-back", "wilma"},
		},
	}
}

// loadDefaultsConfig parses path into a Config.
// Uses strict field checking: typos in defaults.yaml are errors.
func loadDefaultsConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading defaults file: %w", err)
	}
	cfg := builtinDefaults()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	return cfg, nil
}

// resolveDefaults loads the --config file. A missing file is only an error when
// --config was set explicitly; otherwise the built-in defaults apply.
func resolveDefaults(cmd *cobra.Command, path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return builtinDefaults(), nil
	}
	return loadDefaultsConfig(path)
}

// boardingConfig builds the simulator configuration from cfg, overridden by any
// geometry or rule flag the user set explicitly.
func boardingConfig(cmd *cobra.Command, cfg Config) sim.BoardingConfig {
	bc := sim.BoardingConfig{Rows: cfg.Cabin.Rows, SeatsPerRow: cfg.Cabin.SeatsPerRow, Rules: cfg.Rules}
	if cmd.Flags().Changed("rows") {
		bc.Rows = rows
	}
	if cmd.Flags().Changed("seats") {
		bc.SeatsPerRow = seatsPerRow
	}
	if cmd.Flags().Changed("advance") {
		bc.Rules.Advance = advanceMode
	}
	if cmd.Flags().Changed("tail-trim") {
		bc.Rules.TailTrim = tailTrim
	}
	return bc
}
